package database

import (
	"errors"

	"github.com/lib/pq"
)

// ErrDuplicate is returned when a write hits a uniqueness constraint,
// e.g. a duplicate admission number or a second settings row.
var ErrDuplicate = errors.New("duplicate record")

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// failure.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
