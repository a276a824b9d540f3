// Package id generates record identifiers.
//
// Records are keyed by their creation time in Unix milliseconds. When two records are created
// within the same millisecond, or the clock steps backwards, the next id is bumped past the
// largest one already issued so ids stay unique and ordered by creation.
package id

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// NextInt returns max(now in ms, latest+1).
func NextInt(now time.Time, latest int64) int64 {
	candidate := now.UnixMilli()
	if candidate <= latest {
		return latest + 1
	}
	return candidate
}

// Next is NextInt over decimal string ids. Ids that do not parse are ignored.
func Next(now time.Time, existing []string) string {
	var latest int64
	for _, s := range existing {
		if v, err := strconv.ParseInt(s, 10, 64); err == nil && v > latest {
			latest = v
		}
	}
	return strconv.FormatInt(NextInt(now, latest), 10)
}

// Less orders decimal string ids numerically, falling back to string order for foreign ids.
func Less(a, b string) bool {
	va, errA := strconv.ParseInt(a, 10, 64)
	vb, errB := strconv.ParseInt(b, 10, 64)
	if errA == nil && errB == nil {
		return va < vb
	}
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

// NewEventID returns a random identifier for append-only records.
func NewEventID() string {
	return uuid.NewString()
}
