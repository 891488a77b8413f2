// Package format renders values as text the parser reads back into an equal
// value.
package format

import (
	"encoding"
	"fmt"
	"reflect"
	"slices"
	"time"

	"type-parser/container"
	"type-parser/split"
)

// Text renders v using the delimiters of s. Elements that themselves contain
// a delimiter do not survive a round trip.
func Text(v any, s *split.Splitter) string {
	return TextWithNull(v, s, "")
}

// TextWithNull is Text with nil values, typed nil pointers included, rendered
// as null. Pass the engine's null string to read them back as nil.
func TextWithNull(v any, s *split.Splitter, null string) string {
	if s == nil {
		s = split.Default()
	}

	if v == nil {
		return null
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return null
	}

	switch x := v.(type) {
	case string:
		return x
	case time.Time:
		return x.Format(time.RFC3339Nano)
	case time.Duration:
		return x.String()
	case reflect.Type:
		return x.String()
	case container.Collection:
		return s.Join(texts(x.Values(), s, null))
	case container.Map:
		return joinEntries(x.Keys(), x.Get, s, null)
	case encoding.TextMarshaler:
		if b, err := x.MarshalText(); err == nil {
			return string(b)
		}
	case fmt.Stringer:
		return x.String()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		elems := make([]any, rv.Len())
		for i := range elems {
			elems[i] = rv.Index(i).Interface()
		}
		return s.Join(texts(elems, s, null))

	case reflect.Map:
		keys := make([]any, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.Interface())
		}
		slices.SortFunc(keys, container.Compare)
		return joinEntries(keys, func(k any) (any, bool) {
			return rv.MapIndex(reflect.ValueOf(k)).Interface(), true
		}, s, null)

	case reflect.Pointer:
		return TextWithNull(rv.Elem().Interface(), s, null)
	}

	return fmt.Sprint(v)
}

func texts(values []any, s *split.Splitter, null string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = TextWithNull(v, s, null)
	}

	return out
}

func joinEntries(keys []any, get func(any) (any, bool), s *split.Splitter, null string) string {
	entries := make([]string, 0, len(keys))
	for _, k := range keys {
		v, _ := get(k)
		entries = append(entries, s.JoinKeyValue(TextWithNull(k, s, null), TextWithNull(v, s, null)))
	}

	return s.Join(entries)
}
