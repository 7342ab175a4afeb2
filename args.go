// FILE: lixenwraith/getarg/args.go
package getarg

import (
	"sort"
	"sync"

	"go.uber.org/zap"
)

// DefaultNegationPrefix marks a token as the negation of the option named by the rest, e.g. -noFoo negates -Foo
const DefaultNegationPrefix = "no"

// Options configures how an Args store tokenizes its input
type Options struct {
	// NegationPrefix is matched right after the dash. Empty disables negation markers.
	NegationPrefix string

	// Logger receives parse diagnostics. Nil means no logging.
	Logger *zap.Logger
}

// DefaultOptions returns the standard options
func DefaultOptions() Options {
	return Options{
		NegationPrefix: DefaultNegationPrefix,
	}
}

// Args holds the result of parsing a command line: every occurrence of every
// option in encounter order, plus the negation markers derived from -noX tokens.
type Args struct {
	values    map[string][]string // key -> raw values, encounter order
	negations map[string][]string // negated key -> raw values of its -noX markers
	options   Options
	logger    *zap.Logger
	mutex     sync.RWMutex
}

// New creates an empty Args store with default options
func New() *Args {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions creates an empty Args store with the given options
func NewWithOptions(opts Options) *Args {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Args{
		values:    make(map[string][]string),
		negations: make(map[string][]string),
		options:   opts,
		logger:    logger,
	}
}

// Parse replaces the store contents with the options found in args.
// Previous state is discarded, never merged.
func (a *Args) Parse(args []string) {
	values, negations := tokenize(args, a.options.NegationPrefix, a.logger)

	a.mutex.Lock()
	a.values = values
	a.negations = negations
	a.mutex.Unlock()

	a.logger.Debug("arguments parsed",
		zap.Int("tokens", len(args)),
		zap.Int("keys", len(values)),
		zap.Int("negations", len(negations)),
	)
}

// Reload is Parse under the name used when re-initializing an existing store
func (a *Args) Reload(args []string) {
	a.Parse(args)
}

// Reset discards all parsed state
func (a *Args) Reset() {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	a.values = make(map[string][]string)
	a.negations = make(map[string][]string)
}

// Has reports whether key occurred at least once in its positive form
func (a *Args) Has(key string) bool {
	_, ok := a.last(normalizeKey(key))
	return ok
}

// GetAll returns every raw value recorded for key, in command-line order.
// Returns nil if key never occurred.
func (a *Args) GetAll(key string) []string {
	a.mutex.RLock()
	defer a.mutex.RUnlock()

	vals, ok := a.values[normalizeKey(key)]
	if !ok {
		return nil
	}
	out := make([]string, len(vals))
	copy(out, vals)
	return out
}

// Negated returns the last raw value of the negation marker for key
func (a *Args) Negated(key string) (string, bool) {
	a.mutex.RLock()
	defer a.mutex.RUnlock()
	return a.negatedLocked(normalizeKey(key))
}

// Keys returns all recorded keys, sorted
func (a *Args) Keys() []string {
	a.mutex.RLock()
	defer a.mutex.RUnlock()

	keys := make([]string, 0, len(a.values))
	for k := range a.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of distinct recorded keys
func (a *Args) Len() int {
	a.mutex.RLock()
	defer a.mutex.RUnlock()
	return len(a.values)
}

// Snapshot returns the resolved view of the store keyed by option name without
// the dash. Repeated keys resolve to their last value. Keys known only through a
// negation marker appear as "1" or "0" so the view agrees with GetBool.
func (a *Args) Snapshot() map[string]string {
	a.mutex.RLock()
	defer a.mutex.RUnlock()

	snap := make(map[string]string, len(a.values)+len(a.negations))
	for key, neg := range a.negations {
		if len(neg) == 0 {
			continue
		}
		if negationValue(neg[len(neg)-1]) {
			snap[optionName(key)] = "1"
		} else {
			snap[optionName(key)] = "0"
		}
	}
	for key, vals := range a.values {
		snap[optionName(key)] = vals[len(vals)-1]
	}
	return snap
}

// Clone creates a deep copy of the store
func (a *Args) Clone() *Args {
	a.mutex.RLock()
	defer a.mutex.RUnlock()

	clone := &Args{
		values:    make(map[string][]string, len(a.values)),
		negations: make(map[string][]string, len(a.negations)),
		options:   a.options,
		logger:    a.logger,
	}
	for k, v := range a.values {
		clone.values[k] = append([]string(nil), v...)
	}
	for k, v := range a.negations {
		clone.negations[k] = append([]string(nil), v...)
	}
	return clone
}

// last returns the last positive raw value for an already normalized key
func (a *Args) last(key string) (string, bool) {
	a.mutex.RLock()
	defer a.mutex.RUnlock()
	return a.lastLocked(key)
}

// lastLocked is last for callers already holding the mutex
func (a *Args) lastLocked(key string) (string, bool) {
	vals := a.values[key]
	if len(vals) == 0 {
		return "", false
	}
	return vals[len(vals)-1], true
}

// negatedLocked returns the last negation marker value; caller holds the mutex
func (a *Args) negatedLocked(key string) (string, bool) {
	vals := a.negations[key]
	if len(vals) == 0 {
		return "", false
	}
	return vals[len(vals)-1], true
}
