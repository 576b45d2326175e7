// Package fault defines the error taxonomy shared by orchestrators and
// projections. The HTTP adapter matches these with errors.Is and maps them
// to status codes; the application layer never formats user-facing text.
package fault

import "errors"

var (
	// ErrValidation marks malformed or out-of-domain write input.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a reference that does not resolve under the
	// caller's tenant. Cross-tenant existence is never revealed.
	ErrNotFound = errors.New("not found")

	// ErrForbidden marks an authenticated caller without access to an
	// existing resource the caller is allowed to know exists.
	ErrForbidden = errors.New("forbidden")
)
