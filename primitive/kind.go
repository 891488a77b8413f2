package primitive

import (
	"reflect"
	"time"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindComplex64
	KindComplex128
	KindBool
	KindString
	KindTime
	KindDuration

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

var kindTypes = [...]reflect.Type{
	KindInt:        reflect.TypeFor[int](),
	KindInt8:       reflect.TypeFor[int8](),
	KindInt16:      reflect.TypeFor[int16](),
	KindInt32:      reflect.TypeFor[int32](),
	KindInt64:      reflect.TypeFor[int64](),
	KindUint:       reflect.TypeFor[uint](),
	KindUint8:      reflect.TypeFor[uint8](),
	KindUint16:     reflect.TypeFor[uint16](),
	KindUint32:     reflect.TypeFor[uint32](),
	KindUint64:     reflect.TypeFor[uint64](),
	KindFloat32:    reflect.TypeFor[float32](),
	KindFloat64:    reflect.TypeFor[float64](),
	KindComplex64:  reflect.TypeFor[complex64](),
	KindComplex128: reflect.TypeFor[complex128](),
	KindBool:       reflect.TypeFor[bool](),
	KindString:     reflect.TypeFor[string](),
	KindTime:       reflect.TypeFor[time.Time](),
	KindDuration:   reflect.TypeFor[time.Duration](),
}

func (k KindEnum) IsNumber() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64,
		KindFloat32, KindFloat64, KindComplex64, KindComplex128:
		return true
	}
}

func (k KindEnum) IsInteger() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

func (k KindEnum) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat32, KindFloat64:
		return true
	}
}

func (k KindEnum) IsComplex() bool {
	return k == KindComplex64 || k == KindComplex128
}

func (k KindEnum) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
}

func (k KindEnum) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

// Type returns the exact reflect type for the kind, or nil for the invalid kind.
func (k KindEnum) Type() reflect.Type {
	if k <= 0 || int(k) >= KindTotal {
		return nil
	}

	return kindTypes[k]
}

// FromReflectType maps an exact predeclared type (or time.Time, time.Duration)
// to its kind. Named types built on top of them are not primitives and return 0.
func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	for k := KindInt; int(k) < KindTotal; k++ {
		if kindTypes[k] == rtype {
			return k
		}
	}

	return 0
}

// Kinds returns every valid kind in declaration order.
func Kinds() []KindEnum {
	kinds := make([]KindEnum, 0, KindTotal-1)
	for k := KindInt; int(k) < KindTotal; k++ {
		kinds = append(kinds, k)
	}

	return kinds
}

// FromReflectKind maps a basic reflect kind to the kind of its predeclared
// type. It is used for named types whose underlying type is basic.
func FromReflectKind(k reflect.Kind) (KindEnum, bool) {
	switch k {
	case reflect.Int:
		return KindInt, true
	case reflect.Int8:
		return KindInt8, true
	case reflect.Int16:
		return KindInt16, true
	case reflect.Int32:
		return KindInt32, true
	case reflect.Int64:
		return KindInt64, true
	case reflect.Uint:
		return KindUint, true
	case reflect.Uint8:
		return KindUint8, true
	case reflect.Uint16:
		return KindUint16, true
	case reflect.Uint32:
		return KindUint32, true
	case reflect.Uint64:
		return KindUint64, true
	case reflect.Float32:
		return KindFloat32, true
	case reflect.Float64:
		return KindFloat64, true
	case reflect.Complex64:
		return KindComplex64, true
	case reflect.Complex128:
		return KindComplex128, true
	case reflect.Bool:
		return KindBool, true
	case reflect.String:
		return KindString, true
	}

	return 0, false
}
