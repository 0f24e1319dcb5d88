package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Common service errors
var (
	// ErrNotFound is returned when a resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict is returned when there's a conflict (e.g., duplicate)
	ErrConflict = errors.New("resource conflict")

	// ErrCompanyNotFound is returned when the issuing company is missing
	ErrCompanyNotFound = errors.New("company not found")

	// ErrClientNotFound is returned when the addressed client is missing
	ErrClientNotFound = errors.New("client not found")

	// ErrEmployeeNotFound is returned when the handling employee is missing
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrNoItems is returned when a quotation carries no line items
	ErrNoItems = errors.New("quotation requires at least one item")

	// ErrSealTooLarge is returned when a seal upload exceeds the size cap
	ErrSealTooLarge = errors.New("seal image exceeds maximum size")

	// ErrInvalidSealImage is returned when the seal payload is not an image data URI
	ErrInvalidSealImage = errors.New("seal image must be an image data URI")
)

// isDuplicateKey reports whether err is a unique constraint violation.
// Not every driver translates these into gorm.ErrDuplicatedKey, so the
// message is checked for the postgres and sqlite phrasings as well.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}
