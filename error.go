// FILE: lixenwraith/getarg/error.go
package getarg

import "errors"

var (
	// ErrMissingRequired is returned by Validate when a required key never occurred
	ErrMissingRequired = errors.New("missing required argument")

	// ErrUnknownFormat is returned by Dump for an unsupported output format
	ErrUnknownFormat = errors.New("unknown output format")

	// ErrInvalidTarget is returned by Scan when the target is not a non-nil pointer
	ErrInvalidTarget = errors.New("invalid scan target")

	// ErrInvalidPrefix is returned by the builder for an unusable negation prefix
	ErrInvalidPrefix = errors.New("invalid negation prefix")
)
