// File: lixenwraith/getarg/convenience.go
package getarg

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
)

// defaultArgs is the process-wide store behind the package-level functions.
// It is meant to be filled once during single-threaded startup.
var defaultArgs = New()

// Default returns the process-wide store
func Default() *Args {
	return defaultArgs
}

// Quick parses os.Args[1:] into the process-wide store and returns it
func Quick() *Args {
	defaultArgs.Parse(os.Args[1:])
	return defaultArgs
}

// ParseParameters replaces the process-wide store contents with args
func ParseParameters(args []string) {
	defaultArgs.Parse(args)
}

// GetBool reads a boolean from the process-wide store
func GetBool(key string, def bool) bool {
	return defaultArgs.GetBool(key, def)
}

// GetString reads a string from the process-wide store
func GetString(key string, def string) string {
	return defaultArgs.GetString(key, def)
}

// GetInt reads an integer from the process-wide store
func GetInt(key string, def int64) int64 {
	return defaultArgs.GetInt(key, def)
}

// Has reports whether key occurred in the process-wide store
func Has(key string) bool {
	return defaultArgs.Has(key)
}

// GetAll returns every value of key in the process-wide store
func GetAll(key string) []string {
	return defaultArgs.GetAll(key)
}

// Validate checks that every required key occurred in its positive form
// or through a negation marker
func (a *Args) Validate(required ...string) error {
	a.mutex.RLock()
	defer a.mutex.RUnlock()

	var missing []error
	for _, key := range required {
		key = normalizeKey(key)
		if _, ok := a.lastLocked(key); ok {
			continue
		}
		if _, ok := a.negatedLocked(key); ok {
			continue
		}
		missing = append(missing, fmt.Errorf("%w: %s", ErrMissingRequired, key))
	}

	return errors.Join(missing...)
}

// Debug returns a formatted string showing all recorded keys with every value
func (a *Args) Debug() string {
	var b strings.Builder
	b.WriteString("Argument Debug Info:\n")

	a.mutex.RLock()
	defer a.mutex.RUnlock()

	keys := make([]string, 0, len(a.values))
	for key := range a.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		vals := a.values[key]
		fmt.Fprintf(&b, "  %s:\n", key)
		fmt.Fprintf(&b, "    Current: %q\n", vals[len(vals)-1])
		if len(vals) > 1 {
			fmt.Fprintf(&b, "    All: %q\n", vals)
		}
		if neg, ok := a.negatedLocked(key); ok {
			fmt.Fprintf(&b, "    Negation: %q\n", neg)
		}
	}

	var negatedOnly []string
	for key := range a.negations {
		if _, positive := a.values[key]; !positive {
			negatedOnly = append(negatedOnly, key)
		}
	}
	sort.Strings(negatedOnly)

	for _, key := range negatedOnly {
		neg, _ := a.negatedLocked(key)
		fmt.Fprintf(&b, "  %s (negated only):\n", key)
		fmt.Fprintf(&b, "    Negation: %q\n", neg)
	}

	return b.String()
}
