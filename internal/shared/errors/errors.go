package errors

import "errors"

// Domain errors
var (
	// Target errors
	ErrEmptyTarget   = errors.New("target URL cannot be empty")
	ErrInvalidTarget = errors.New("invalid target URL")
	ErrInvalidScheme = errors.New("scheme must be http or https")

	// Catalog errors
	ErrEmptyCatalog      = errors.New("checks file declares no checks")
	ErrDuplicateCheckID  = errors.New("duplicate check id")
	ErrUnknownCheckType  = errors.New("unknown check type")
	ErrMissingCheckField = errors.New("missing required check field")
	ErrInvalidSeverity   = errors.New("invalid severity")
	ErrInvalidSameSite   = errors.New("samesite value must be Strict, Lax, or None")

	// Output errors
	ErrInvalidOutputFormat = errors.New("output format must be table, json, or pdf")
)
