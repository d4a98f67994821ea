// Package timeid generates and parses the time-ordered identifiers used as
// clustering keys throughout the Cassandra tables. An identifier is a V1
// TimeUUID: unique process-wide, it embeds its creation timestamp and sorts
// consistently with generation order under the store's timeuuid comparator.
package timeid

import (
	"bytes"
	"errors"
	"time"

	"github.com/gocql/gocql"
)

// ErrMalformedID indicates an externally-supplied identifier string could not
// be parsed as a time-ordered identifier
var ErrMalformedID = errors.New("malformed time-ordered identifier")

// New generates a fresh identifier for the current time.
// Identifiers generated in sequence on the same process are strictly ordered.
func New() gocql.UUID {
	return gocql.TimeUUID()
}

// Parse converts an external string representation (e.g. a request parameter
// carrying a parent comment id) back into an identifier. Inputs that are not
// valid time-based UUIDs in the canonical 8-4-4-4-12 form fail with
// ErrMalformedID. The canonical-form check matters: the driver's parser only
// collects hex digits and would accept strings with misplaced separators.
func Parse(s string) (gocql.UUID, error) {
	if !isCanonicalForm(s) {
		return gocql.UUID{}, ErrMalformedID
	}
	id, err := gocql.ParseUUID(s)
	if err != nil {
		return gocql.UUID{}, ErrMalformedID
	}
	if id.Version() != 1 {
		return gocql.UUID{}, ErrMalformedID
	}
	return id, nil
}

// isCanonicalForm reports whether s has dashes at offsets 8, 13, 18, and 23
// with hex digits everywhere else
func isCanonicalForm(s string) bool {
	if len(s) != 36 {
		return false
	}
	for i := 0; i < 36; i++ {
		c := s[i]
		if i == 8 || i == 13 || i == 18 || i == 23 {
			if c != '-' {
				return false
			}
			continue
		}
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// Timestamp recovers the creation time embedded in an identifier.
// Callers use this instead of storing a separate created_at column.
func Timestamp(id gocql.UUID) time.Time {
	return id.Time()
}

// Compare orders two identifiers the way the store's timeuuid comparator
// does: by embedded timestamp first, then by raw bytes as a tiebreaker.
// Returns -1, 0, or 1.
func Compare(a, b gocql.UUID) int {
	at, bt := a.Time(), b.Time()
	if at.Before(bt) {
		return -1
	}
	if at.After(bt) {
		return 1
	}
	return bytes.Compare(a[:], b[:])
}
