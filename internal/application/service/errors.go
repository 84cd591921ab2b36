package service

import "errors"

// Failure taxonomy returned by the services. NotFound, Forbidden and
// Validation are deterministic outcomes of the current state and must not be
// retried unchanged; Conflict is retryable after the caller refetches state;
// Internal is logged with full context and surfaced opaquely.
// Invalid edges surface as workflow.ErrInvalidTransition.
var (
	ErrNotFound   = errors.New("document not found")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("concurrent modification")
	ErrValidation = errors.New("validation failed")
	ErrInternal   = errors.New("internal error")
)
