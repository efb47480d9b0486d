package database

import (
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

var (
	// ErrNotFound means no row matched both the id and the owning user.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate means a unique constraint rejected the write.
	ErrDuplicate = errors.New("record already exists")
)

// uniqueViolation is the Postgres error code for unique_violation.
const uniqueViolation = "23505"

// IsUniqueViolation reports whether err is a Postgres unique-index conflict.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolation
	}
	return false
}

// ValidID reports whether id is a well-formed document id. Handlers reject
// malformed ids with 400 before any lookup so a bad id never reaches the
// ownership query.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
