package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTitle         = errors.New("title is required")
	ErrEmptyFlag          = errors.New("flag is required")
	ErrInvalidPoints      = errors.New("points must be positive")
	ErrInvalidMaxAttempts = errors.New("max attempts must be -1 (unlimited) or positive")
)
