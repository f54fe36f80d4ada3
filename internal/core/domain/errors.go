package domain

import "errors"

// Error taxonomy. Every error returned by the services wraps one of these so the
// HTTP layer can map it with errors.Is.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("access forbidden")
	ErrNotFound        = errors.New("not found")
	ErrInvalidInput    = errors.New("invalid input")
)

var (
	ErrInvalidSession = wrap(ErrUnauthenticated, "invalid session")
	ErrAdminRequired  = wrap(ErrForbidden, "admin role required")
	ErrOrderForbidden = wrap(ErrForbidden, "order belongs to another user")

	ErrUserNotFound    = wrap(ErrNotFound, "user not found")
	ErrOrderNotFound   = wrap(ErrNotFound, "order not found")
	ErrProductNotFound = wrap(ErrNotFound, "product not found")
	ErrImageNotFound   = wrap(ErrNotFound, "image not found")

	ErrMissingSessionID = wrap(ErrInvalidInput, "session_id required")
	ErrEmptyUpdate      = wrap(ErrInvalidInput, "nothing to update")
	ErrOwnRoleChange    = wrap(ErrInvalidInput, "cannot change own role")
	ErrInvalidRole      = wrap(ErrInvalidInput, "invalid role")
	ErrNotAnImage       = wrap(ErrInvalidInput, "only images are allowed")
	ErrImageTooLarge    = wrap(ErrInvalidInput, "image exceeds size limit")
	ErrEmptyCart        = wrap(ErrInvalidInput, "order has no items")
)

// kindError keeps a specific message while matching its category via errors.Is.
type kindError struct {
	kind error
	msg  string
}

func wrap(kind error, msg string) error { return &kindError{kind: kind, msg: msg} }

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }
