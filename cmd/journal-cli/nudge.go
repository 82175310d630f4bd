package main

import "math/rand"

var quotes = []string{
	"What you repeat becomes what you believe.",
	"A small honest line is still a whole truth.",
	"Write it gently. Keep it anyway.",
	"One quiet line from today.",
	"Something today wants remembering.",
	"A single thought worth keeping.",
	"Remember the little things.",
	"Pay attention to what you're drawn to.",
	"Most things don't need fixing.",
	"It's allowed to be unfinished.",
	"Some days are for maintenance.",
	"You can move slowly and still arrive.",
	"This is enough for today.",
	"Nothing is wasted if you noticed it.",
	"Small things count more often than big ones.",
	"Some things only make sense later.",
	"What you notice says more than what you plan.",
	"You become what you pay attention to.",
	"Attention is a form of care.",
	"Time reveals patterns.",
	"Worth keeping.",
	"Carried forward.",
	"Notice what you return to.",
	"Consistency outperforms intensity.",
}

var facts = []string{
	"Sharks existed before trees.",
	"Crows remember faces for years.",
	"A group of flamingos is called a flamboyance.",
	"Octopuses can taste with their arms.",
	"Bees can recognise human faces.",
	"Wombat poop is cube-shaped.",
	"Rats laugh when tickled.",
	"Saturn could float in water if you had a big enough ocean.",
	"You are made of atoms formed in dying stars.",
	"Venus flytraps can count.",
	"Oxford University is older than the Aztec Empire.",
	"The Eiffel Tower grows in summer.",
	"Humans glow faintly in the dark.",
	"Bananas are radioactive.",
	"Music can reduce the sensation of pain.",
	"Noticing is a skill.",
}

// pickNudge returns a prompt for today's line: half the time a quote,
// half the time a fact.
func pickNudge() string {
	if rand.Intn(2) == 0 {
		return quotes[rand.Intn(len(quotes))]
	}
	return facts[rand.Intn(len(facts))]
}
