package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrInvalidVersion is returned when an entry update carries a version that
// is not exactly the stored version plus one (optimistic concurrency).
// Handlers should map this to HTTP 409 Conflict.
var ErrInvalidVersion = errors.New("invalid version")

// ErrValidation is the umbrella for all caller-supplied parameter errors.
// Every specific parameter error below wraps it, so a single
// errors.Is(err, domain.ErrValidation) catches them all.
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

var (
	// ErrBBox flags a malformed bounding box. ParseBBox returns it for a
	// wrong field count or non-numeric fields; the subscription validator
	// returns it for non-finite or out-of-order corners.
	ErrBBox = fmt.Errorf("%w: invalid bounding box", ErrValidation)

	// ErrEmptyComment flags a rating submitted without comment text.
	ErrEmptyComment = fmt.Errorf("%w: comment must not be empty", ErrValidation)

	// ErrRatingValue flags a rating value outside [-1, 2].
	ErrRatingValue = fmt.Errorf("%w: rating value out of range", ErrValidation)

	// ErrUserExists flags an attempt to register an already-taken username.
	ErrUserExists = fmt.Errorf("%w: user already exists", ErrValidation)

	// ErrCredentials flags a login with an unknown username or wrong password.
	// Handlers should map this to HTTP 401.
	ErrCredentials = fmt.Errorf("%w: invalid credentials", ErrValidation)

	// ErrEmailNotConfirmed flags a login before the email address was confirmed.
	ErrEmailNotConfirmed = fmt.Errorf("%w: email not confirmed", ErrValidation)

	// ErrForbidden flags an attempt to act on another user's resource.
	// Handlers should map this to HTTP 403.
	ErrForbidden = fmt.Errorf("%w: forbidden", ErrValidation)
)
