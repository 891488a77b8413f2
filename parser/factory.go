package parser

import (
	"errors"
	"fmt"
	"path"
	"reflect"
	"runtime"
	"strings"
)

var (
	ErrIsNotAFactory         = errors.New("provided function is not a recognizable factory")
	ErrFactoryIsNotAFunction = errors.New("provided factory is not a function")
	ErrFactoryDeclined       = errors.New("factory reported no result")
)

var errorType = reflect.TypeFor[error]()

// Factory is a registered single-argument function producing a value of
// Result from a value of Param.
type Factory struct {
	Fn            reflect.Value
	Param, Result reflect.Type
	PackageAlias  string
	Name          string
	HasBool       bool
	HasErr        bool
}

// ParseFactory inspects fn and returns a Factory if it has one of the forms
//
//   - func(A) R
//   - func(A) (R, bool)
//   - func(A) (R, error)
//   - func(A) (R, bool, error)
//
// A false bool result means the factory declined the argument.
func ParseFactory(fn any) (*Factory, error) {
	if fn == nil {
		return nil, ErrFactoryIsNotAFunction
	}

	fnVal := reflect.ValueOf(fn)
	fnType := fnVal.Type()
	if fnType.Kind() != reflect.Func || fnVal.IsNil() {
		return nil, ErrFactoryIsNotAFunction
	}

	if fnType.NumIn() != 1 || fnType.IsVariadic() || fnType.NumOut() == 0 {
		return nil, ErrIsNotAFactory
	}

	f := &Factory{
		Fn:     fnVal,
		Param:  fnType.In(0),
		Result: fnType.Out(0),
	}

	if fnPC := runtime.FuncForPC(fnVal.Pointer()); fnPC != nil {
		alias, name, found := strings.Cut(path.Base(fnPC.Name()), ".")
		if found {
			f.PackageAlias, f.Name = alias, name
		} else {
			f.Name = alias
		}
	}

	switch fnType.NumOut() {
	default:
		return nil, ErrIsNotAFactory

	case 1:
		return f, nil

	case 2:
		last := fnType.Out(1)

		switch {
		default:
			return nil, ErrIsNotAFactory
		case last.Kind() == reflect.Bool:
			f.HasBool = true
		case last.Implements(errorType):
			f.HasErr = true
		}
		return f, nil

	case 3:
		tbool, terr := fnType.Out(1), fnType.Out(2)
		if tbool.Kind() != reflect.Bool || !terr.Implements(errorType) {
			return nil, ErrIsNotAFactory
		}

		f.HasBool = true
		f.HasErr = true
		return f, nil
	}
}

// String names the factory as pkg.Func.
func (f *Factory) String() string {
	if f.PackageAlias == "" {
		return f.Name
	}

	return f.PackageAlias + "." + f.Name
}

// Call invokes the factory with arg, which must be assignable to Param.
// Panics inside the factory are returned as errors.
func (f *Factory) Call(arg any) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	out := f.Fn.Call([]reflect.Value{assign(arg, f.Param)})

	if f.HasErr {
		if e, _ := out[len(out)-1].Interface().(error); e != nil {
			return nil, e
		}
	}

	if f.HasBool && !out[1].Bool() {
		return nil, ErrFactoryDeclined
	}

	return out[0].Interface(), nil
}
