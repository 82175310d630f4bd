package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// idStampFormat is fixed-width so ids sort lexicographically by creation time.
const idStampFormat = "20060102150405.000000000"

// NewID returns a new entry identifier: a UTC nanosecond timestamp plus a
// short random suffix. Two entries created within the same clock tick still
// get distinct ids, and sorting ids sorts by creation order.
func NewID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return now.UTC().Format(idStampFormat) + "-" + suffix
}
