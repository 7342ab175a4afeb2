// FILE: lixenwraith/getarg/decode.go
package getarg

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
)

// TagName is the struct tag consulted by Scan
const TagName = "arg"

// Scan decodes the resolved arguments under basePath into target, which must be a
// non-nil pointer to a struct or map. Dotted option names ("-server.port=80")
// address nested sections. Booleans and integers follow the accessor rules:
// only "0" is false, and an unparseable integer becomes 0.
func (a *Args) Scan(basePath string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("%w: must be a non-nil pointer, got %T", ErrInvalidTarget, target)
	}

	sectionData := navigateToPath(a.nested(), basePath)

	sectionMap, ok := sectionData.(map[string]any)
	if !ok {
		if sectionData == nil {
			sectionMap = make(map[string]any)
		} else {
			return fmt.Errorf("path %q refers to non-section value (type %T)", basePath, sectionData)
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          TagName,
		WeaklyTypedInput: true,
		DecodeHook:       decodeHook(),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(sectionMap); err != nil {
		return fmt.Errorf("decode failed for path %q: %w", basePath, err)
	}

	return nil
}

// decodeHook returns the composite hook applied to every raw string value.
// Durations must run before the integer hook since time.Duration is an int64 kind.
func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		stringToBoolHookFunc(),
		stringToIntHookFunc(),
	)
}

// stringToBoolHookFunc applies the argument truthiness rule instead of strconv.ParseBool
func stringToBoolHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Bool {
			return data, nil
		}
		return truthy(reflect.ValueOf(data).String()), nil
	}
}

// stringToIntHookFunc parses integers at the width of the target field.
// Unparseable and out-of-range values collapse to 0.
func stringToIntHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		if t == reflect.TypeOf(time.Duration(0)) {
			return data, nil
		}
		raw := reflect.ValueOf(data).String()

		switch t.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			i, err := strconv.ParseInt(raw, 10, t.Bits())
			if err != nil {
				i = 0
			}
			return reflect.ValueOf(i).Convert(t).Interface(), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			u, err := strconv.ParseUint(raw, 10, t.Bits())
			if err != nil {
				u = 0
			}
			return reflect.ValueOf(u).Convert(t).Interface(), nil
		}
		return data, nil
	}
}

// navigateToPath traverses nested map to reach the specified path
func navigateToPath(nested map[string]any, path string) any {
	path = strings.TrimSuffix(path, ".")
	if path == "" {
		return nested
	}

	current := any(nested)
	for _, segment := range strings.Split(path, ".") {
		currentMap, ok := current.(map[string]any)
		if !ok {
			return nil
		}

		value, exists := currentMap[segment]
		if !exists {
			return nil
		}
		current = value
	}

	return current
}
