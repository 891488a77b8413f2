package primitive

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"type-parser/options"
)

var (
	ErrInvalidKind      = errors.New("invalid primitive kind")
	ErrCategoryDisabled = errors.New("textual form is not enabled")
)

// Parse converts text into a value whose dynamic type is exactly k.Type().
//
// Strings are returned verbatim; every other kind is parsed from the
// whitespace-trimmed text. The allowed categories decide which textual forms
// are accepted, e.g.:
//   - CategoryTextNumber: "42", "-1.5", "(1+2i)"
//   - CategoryPrefixedNumber: "0x2a", "1_000"
//   - CategoryTextualBool: "yes", "off"
//   - CategoryDatetime / CategoryTimestamp: "2024-01-02T03:04:05Z" / "1704164645"
//   - CategoryDuration / CategoryNanoseconds / CategorySeconds: "2h45m" / "1500" / "1.5"
func Parse(k KindEnum, text string, allowed options.CategoryEnum) (any, error) {
	if k == KindString {
		return text, nil
	}

	s := strings.TrimSpace(text)

	switch {
	case k.IsInteger() || k.IsFloat() || k.IsComplex():
		if !allowed.Has(options.CategoryTextNumber) {
			return nil, fmt.Errorf("%s from %q: %w", k, text, ErrCategoryDisabled)
		}
		return parseNumber(k, s, allowed)
	case k == KindBool:
		return parseBool(s, allowed)
	case k == KindTime:
		return parseTime(s, allowed)
	case k == KindDuration:
		return parseDuration(s, allowed)
	}

	return nil, fmt.Errorf("%s: %w", k, ErrInvalidKind)
}

func parseNumber(k KindEnum, s string, allowed options.CategoryEnum) (any, error) {
	base := 10
	if allowed.Has(options.CategoryPrefixedNumber) {
		base = 0
	}

	switch {
	case k.IsSigned():
		bits := k.Type().Bits()
		i, err := strconv.ParseInt(s, base, bits)
		if err != nil {
			return nil, err
		}
		switch k {
		case KindInt8:
			return int8(i), nil
		case KindInt16:
			return int16(i), nil
		case KindInt32:
			return int32(i), nil
		case KindInt64:
			return i, nil
		}
		return int(i), nil

	case k.IsUnsigned():
		bits := k.Type().Bits()
		u, err := strconv.ParseUint(s, base, bits)
		if err != nil {
			return nil, err
		}
		switch k {
		case KindUint8:
			return uint8(u), nil
		case KindUint16:
			return uint16(u), nil
		case KindUint32:
			return uint32(u), nil
		case KindUint64:
			return u, nil
		}
		return uint(u), nil

	case k == KindFloat32:
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return nil, err
		}
		return float32(f), nil

	case k == KindFloat64:
		return strconv.ParseFloat(s, 64)

	case k == KindComplex64:
		c, err := strconv.ParseComplex(s, 64)
		if err != nil {
			return nil, err
		}
		return complex64(c), nil
	}

	return strconv.ParseComplex(s, 128)
}

func parseBool(s string, allowed options.CategoryEnum) (any, error) {
	switch {
	case strings.EqualFold(s, "true"):
		return true, nil
	case strings.EqualFold(s, "false"):
		return false, nil
	}

	if allowed.Has(options.CategoryTextualBool) {
		switch strings.ToLower(s) {
		case "yes", "y", "on", "1":
			return true, nil
		case "no", "n", "off", "0":
			return false, nil
		}
	}

	return nil, fmt.Errorf("invalid bool %q", s)
}

func parseTime(s string, allowed options.CategoryEnum) (any, error) {
	if allowed.Has(options.CategoryTimestamp) {
		if sec, err := strconv.ParseInt(s, 10, 64); err == nil {
			return time.Unix(sec, 0).UTC(), nil
		}
	}

	if allowed.Has(options.CategoryDatetime) {
		return time.Parse(time.RFC3339Nano, s)
	}

	return nil, fmt.Errorf("time from %q: %w", s, ErrCategoryDisabled)
}

func parseDuration(s string, allowed options.CategoryEnum) (any, error) {
	if allowed.Has(options.CategoryNanoseconds) {
		if ns, err := strconv.ParseInt(s, 10, 64); err == nil {
			return time.Duration(ns), nil
		}
	}

	if allowed.Has(options.CategorySeconds) {
		if sec, err := strconv.ParseFloat(s, 64); err == nil {
			return time.Duration(sec * float64(time.Second)), nil
		}
	}

	if allowed.Has(options.CategoryDuration) {
		return time.ParseDuration(s)
	}

	return nil, fmt.Errorf("duration from %q: %w", s, ErrCategoryDisabled)
}
