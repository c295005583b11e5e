package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an unusable DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
