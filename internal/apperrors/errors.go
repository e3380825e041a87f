package apperrors

import "errors"

// Error categories used across all services. Services wrap these with
// fmt.Errorf("%w: detail", ...) and controllers map them to HTTP codes
// with errors.Is.
var (
	// ErrUnauthorized covers every credential failure: missing token,
	// invalid encoding, unknown secret. Callers must never be able to
	// tell those apart.
	ErrUnauthorized = errors.New("forbidden")

	// ErrForbidden means the identity is valid but its permission level
	// is insufficient for the operation.
	ErrForbidden = errors.New("insufficient permissions")

	// ErrValidation marks a request rejected before any mutation, e.g.
	// a message with both or neither recipient.
	ErrValidation = errors.New("not acceptable")

	// ErrConflict marks a duplicate unique key: email, project title,
	// membership pair.
	ErrConflict = errors.New("conflict")

	ErrNotFound = errors.New("not found")
)
