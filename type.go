// File: lixenwraith/getarg/type.go
package getarg

import (
	"strconv"
)

// GetBool retrieves a boolean argument.
// A positive occurrence of key always wins over a negation marker, regardless of
// order: its last value reads false only when it is exactly "0". Without one, a
// -noKEY marker yields true only for "-noKEY=0". Otherwise def is returned.
func (a *Args) GetBool(key string, def bool) bool {
	key = normalizeKey(key)

	a.mutex.RLock()
	defer a.mutex.RUnlock()

	if raw, found := a.lastLocked(key); found {
		return truthy(raw)
	}
	if raw, found := a.negatedLocked(key); found {
		return negationValue(raw)
	}

	return def
}

// GetString retrieves the last raw value recorded for key, or def if key never occurred
func (a *Args) GetString(key string, def string) string {
	if raw, found := a.last(normalizeKey(key)); found {
		return raw
	}
	return def
}

// GetInt retrieves the last value recorded for key as a base-10 integer.
// A present value that does not parse yields 0, not def. def is returned only
// when key never occurred.
func (a *Args) GetInt(key string, def int64) int64 {
	raw, found := a.last(normalizeKey(key))
	if !found {
		return def
	}
	return parseInt(raw)
}

// parseInt parses a signed base-10 integer, collapsing any failure to 0
func parseInt(raw string) int64 {
	i, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return i
}
