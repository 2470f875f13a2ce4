package store

import "errors"

// Failure taxonomy shared by both stores. Callers match with errors.Is;
// the concrete messages carry the offending value via wrapping.
var (
	// ErrValidation marks form input that could not be parsed into the
	// column type (non-numeric quantidade/preco/categoria_id, blank nome).
	ErrValidation = errors.New("invalid input")

	// ErrConflict marks a unique-constraint violation (duplicate nome).
	ErrConflict = errors.New("already exists")

	// ErrCategoriaNotFound marks a produto insert whose categoria_id does
	// not reference an existing categoria.
	ErrCategoriaNotFound = errors.New("categoria not found")

	// ErrUserNotFound marks a credential lookup for an unknown username.
	ErrUserNotFound = errors.New("user not found")
)
