package validate

import (
	"fmt"
	"reflect"
)

// stringify returns the comparison/display form of a raw value. All set and
// record membership checks compare values by their string form, so mixed
// numeric widths (int vs int64 ids) compare as expected.
func stringify(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// isEmptyValue reports whether a submitted value counts as an empty
// selection: nil, an empty string, or an empty slice.
func isEmptyValue(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		return rv.Len() == 0
	}
	return false
}

// normalizeValues coerces a submitted value into a list: nil and empty
// strings become an empty list, slices are expanded, and any other scalar
// becomes a singleton.
func normalizeValues(value any) []any {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		if v == "" {
			return nil
		}
		return []any{v}
	case []any:
		return v
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out
	}
	return []any{value}
}
