// FILE: lixenwraith/getarg/helper.go
package getarg

import "strings"

// collapseDash turns a leading "--" into "-". Only one dash is removed.
func collapseDash(s string) string {
	if strings.HasPrefix(s, "--") {
		return s[1:]
	}
	return s
}

// normalizeKey maps a queried key onto the stored form: "--K" and "K" both become "-K"
func normalizeKey(key string) string {
	if !strings.HasPrefix(key, "-") {
		return "-" + key
	}
	return collapseDash(key)
}

// optionName strips the single leading dash of a stored key
func optionName(key string) string {
	return strings.TrimPrefix(key, "-")
}

// truthy is the boolean reading of a positive occurrence: only "0" is false
func truthy(raw string) bool {
	return raw != "0"
}

// negationValue is the boolean reading of a negation marker: only "0" yields true
func negationValue(raw string) bool {
	return raw == "0"
}

// isValidPrefix checks that a negation prefix can be matched right after the dash
func isValidPrefix(prefix string) bool {
	return !strings.HasPrefix(prefix, "-") && !strings.ContainsAny(prefix, "= \t")
}

// setNestedValue sets a value in a nested map using a dot-notation path.
// It creates intermediate maps if they don't exist.
// If a segment exists but is not a map, it will be overwritten by a new map.
func setNestedValue(nested map[string]any, path string, value any) {
	segments := strings.Split(path, ".")
	current := nested

	for i := 0; i < len(segments)-1; i++ {
		segment := segments[i]

		if nextMap, isMap := current[segment].(map[string]any); isMap {
			current = nextMap
			continue
		}
		newMap := make(map[string]any)
		current[segment] = newMap
		current = newMap
	}

	last := segments[len(segments)-1]
	if _, isMap := current[last].(map[string]any); isMap {
		// Sections win over leaves, independent of insertion order
		return
	}
	current[last] = value
}
