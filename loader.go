// FILE: lixenwraith/getarg/loader.go
package getarg

import (
	"strings"

	"go.uber.org/zap"
)

// tokenize processes command-line arguments into the option and negation maps.
// Expects arguments in the form "-key", "-key=value", "--key" or "--key=value".
func tokenize(args []string, negationPrefix string, logger *zap.Logger) (map[string][]string, map[string][]string) {
	values := make(map[string][]string)
	negations := make(map[string][]string)

	for _, arg := range args {
		if !strings.HasPrefix(arg, "-") {
			// Positional arguments, including a leading program name, are not modeled
			logger.Debug("skipping positional argument", zap.String("arg", arg))
			continue
		}

		key, value := splitToken(arg)
		values[key] = append(values[key], value)

		if negated, ok := negatedKey(key, negationPrefix); ok {
			negations[negated] = append(negations[negated], value)
		}
	}

	return values, negations
}

// splitToken normalizes the dash form and splits on the first '='.
// A token without '=' has an empty raw value.
func splitToken(arg string) (key, value string) {
	arg = collapseDash(arg)
	if k, v, found := strings.Cut(arg, "="); found {
		return k, v
	}
	return arg, ""
}

// negatedKey reports the key negated by a -<prefix>X token, matched lexically.
// The bare prefix ("-no") negates nothing.
func negatedKey(key, prefix string) (string, bool) {
	if prefix == "" {
		return "", false
	}
	name := strings.TrimPrefix(key, "-")
	if len(name) <= len(prefix) || !strings.HasPrefix(name, prefix) {
		return "", false
	}
	return "-" + name[len(prefix):], true
}
