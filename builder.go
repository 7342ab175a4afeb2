// File: lixenwraith/getarg/builder.go
package getarg

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

// ValidatorFunc defines the signature for a function that can validate an Args instance.
// It receives the fully parsed *Args object and should return an error if validation fails.
type ValidatorFunc func(a *Args) error

// Builder provides a fluent interface for building an argument store
type Builder struct {
	opts       Options
	args       []string
	required   []string
	validators []ValidatorFunc
}

// NewBuilder creates a new builder reading os.Args[1:] by default
func NewBuilder() *Builder {
	return &Builder{
		opts:       DefaultOptions(),
		args:       os.Args[1:],
		validators: make([]ValidatorFunc, 0),
	}
}

// WithArgs sets the command-line arguments
func (b *Builder) WithArgs(args []string) *Builder {
	b.args = args
	return b
}

// WithNegationPrefix sets the prefix that turns -<prefix>X into a negation of -X.
// An empty prefix disables negation markers.
func (b *Builder) WithNegationPrefix(prefix string) *Builder {
	b.opts.NegationPrefix = prefix
	return b
}

// WithLogger sets the logger receiving parse diagnostics
func (b *Builder) WithLogger(logger *zap.Logger) *Builder {
	b.opts.Logger = logger
	return b
}

// WithRequired lists keys that must occur on the command line
func (b *Builder) WithRequired(keys ...string) *Builder {
	b.required = append(b.required, keys...)
	return b
}

// WithValidator adds a validation function that runs at the end of the build process
// Multiple validators can be added and are executed in the order they are added
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build parses the arguments and runs validation
func (b *Builder) Build() (*Args, error) {
	if !isValidPrefix(b.opts.NegationPrefix) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPrefix, b.opts.NegationPrefix)
	}

	a := NewWithOptions(b.opts)
	a.Parse(b.args)

	if len(b.required) > 0 {
		if err := a.Validate(b.required...); err != nil {
			return nil, err
		}
	}

	for _, validator := range b.validators {
		if err := validator(a); err != nil {
			return nil, fmt.Errorf("argument validation failed: %w", err)
		}
	}

	return a, nil
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Args {
	a, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("argument build failed: %v", err))
	}
	return a
}

// BuildAndScan builds and decodes the parsed arguments into the provided target struct pointer
func (b *Builder) BuildAndScan(target any) (*Args, error) {
	a, err := b.Build()
	if err != nil {
		return nil, err
	}

	if err := a.Scan("", target); err != nil {
		return nil, fmt.Errorf("failed to scan arguments into target: %w", err)
	}

	return a, nil
}
