package descriptor

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"reflect"
	"strconv"
)

var (
	ErrSyntax          = errors.New("invalid type expression")
	ErrUnknownTypeName = errors.New("unknown type name")
)

// UnknownNameError reports a type name the lookup could not resolve.
// It matches ErrUnknownTypeName with errors.Is.
type UnknownNameError struct {
	Name string
}

func (e *UnknownNameError) Error() string {
	return fmt.Sprintf("%v %q", ErrUnknownTypeName, e.Name)
}

func (e *UnknownNameError) Is(target error) bool { return target == ErrUnknownTypeName }

// LookupFunc resolves a type name ("int", "time.Duration",
// "container.List") to its reflect type.
type LookupFunc func(name string) (reflect.Type, bool)

// Parse builds a descriptor from a Go type expression such as
// "map[string][]int", "*pkg.Point" or "container.List[time.Duration]".
// Type arguments written in brackets become descriptor args.
func Parse(expr string, lookup LookupFunc) (Type, error) {
	node, err := parser.ParseExpr(expr)
	if err != nil {
		return Type{}, fmt.Errorf("%w %q: %w", ErrSyntax, expr, err)
	}

	return fromAST(node, lookup)
}

func fromAST(node ast.Expr, lookup LookupFunc) (Type, error) {
	switch n := node.(type) {
	case *ast.ParenExpr:
		return fromAST(n.X, lookup)

	case *ast.Ident:
		return named(n.Name, lookup)

	case *ast.SelectorExpr:
		pkg, ok := n.X.(*ast.Ident)
		if !ok {
			return Type{}, fmt.Errorf("%w: nested selector", ErrSyntax)
		}
		return named(pkg.Name+"."+n.Sel.Name, lookup)

	case *ast.StarExpr:
		elem, err := fromAST(n.X, lookup)
		if err != nil {
			return Type{}, err
		}
		d := Of(reflect.PointerTo(elem.raw))
		d.args = elem.args
		return d, nil

	case *ast.ArrayType:
		elem, err := fromAST(n.Elt, lookup)
		if err != nil {
			return Type{}, err
		}
		var raw reflect.Type
		if n.Len == nil {
			raw = reflect.SliceOf(elem.raw)
		} else {
			size, err := arrayLen(n.Len)
			if err != nil {
				return Type{}, err
			}
			raw = reflect.ArrayOf(size, elem.raw)
		}
		return Type{raw: raw, component: &elem}, nil

	case *ast.MapType:
		key, err := fromAST(n.Key, lookup)
		if err != nil {
			return Type{}, err
		}
		if !key.raw.Comparable() {
			return Type{}, fmt.Errorf("%w: map key %s is not comparable", ErrSyntax, key)
		}
		value, err := fromAST(n.Value, lookup)
		if err != nil {
			return Type{}, err
		}
		return Type{raw: reflect.MapOf(key.raw, value.raw), args: []Type{key, value}}, nil

	case *ast.IndexExpr:
		return parameterized(n.X, []ast.Expr{n.Index}, lookup)

	case *ast.IndexListExpr:
		return parameterized(n.X, n.Indices, lookup)

	case *ast.InterfaceType:
		if n.Methods == nil || len(n.Methods.List) == 0 {
			return For[any](), nil
		}
	}

	return Type{}, fmt.Errorf("%w: unsupported %T", ErrSyntax, node)
}

func named(name string, lookup LookupFunc) (Type, error) {
	if lookup != nil {
		if t, ok := lookup(name); ok {
			return Of(t), nil
		}
	}

	return Type{}, &UnknownNameError{Name: name}
}

func parameterized(base ast.Expr, indices []ast.Expr, lookup LookupFunc) (Type, error) {
	raw, err := fromAST(base, lookup)
	if err != nil {
		return Type{}, err
	}

	args := make([]Type, 0, len(indices))
	for _, idx := range indices {
		a, err := fromAST(idx, lookup)
		if err != nil {
			return Type{}, err
		}
		args = append(args, a)
	}

	return New(raw.raw, args...), nil
}

func arrayLen(expr ast.Expr) (int, error) {
	lit, ok := expr.(*ast.BasicLit)
	if !ok || lit.Kind != token.INT {
		return 0, fmt.Errorf("%w: array length must be an integer literal", ErrSyntax)
	}

	n, err := strconv.Atoi(lit.Value)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: array length %s", ErrSyntax, lit.Value)
	}

	return n, nil
}
