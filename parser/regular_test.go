package parser_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"type-parser/container"
	"type-parser/parser"
)

func TestEnumByName(t *testing.T) {
	t.Parallel()

	e := newEngine(t)

	for _, c := range []Color{Red, Green, Blue} {
		for _, input := range []string{c.String(), " " + c.String(), c.String() + "\t\n"} {
			v, err := parser.Parse[Color](e, input)
			require.NoError(t, err)
			assert.Equal(t, c, v)
		}
	}

	_, err := parser.Parse[Color](e, "green")
	pe := requireKind(t, err, parser.ErrUnknownEnumConstant)
	assert.Equal(t, "green", pe.Input)
	assert.Equal(t, []string{"RED", "GREEN", "BLUE"}, pe.Names)
	assert.EqualError(t, pe, `unknown enum constant "green" for parser_test.Color, valid names: [RED, GREEN, BLUE]`)
}

func TestEnumNamed(t *testing.T) {
	t.Parallel()

	e, err := parser.NewBuilder().
		RegisterEnum(parser.EnumNamed([]any{time.Monday, time.Friday}, []string{"mon", "fri"})).
		Build()
	require.NoError(t, err)

	v, err := parser.Parse[time.Weekday](e, "fri")
	require.NoError(t, err)
	assert.Equal(t, time.Friday, v)
}

func TestTypeByName(t *testing.T) {
	t.Parallel()

	e := newEngine(t)

	tests := []struct {
		input    string
		expected reflect.Type
	}{
		{"int", reflect.TypeFor[int]()},
		{" time.Duration ", reflect.TypeFor[time.Duration]()},
		{"parser_test.Celsius", reflect.TypeFor[Celsius]()},
		{"type-parser/parser_test.Celsius", reflect.TypeFor[Celsius]()},
		{"[]map[string]parser_test.Color", reflect.TypeFor[[]map[string]Color]()},
		{"container.List", container.ListType},
		{"*container.TreeMap", reflect.TypeFor[*container.TreeMap]()},
		{"any", reflect.TypeFor[any]()},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			v, err := parser.Parse[reflect.Type](e, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}

	_, err := parser.Parse[reflect.Type](e, "parser_test.Unknown")
	pe := requireKind(t, err, parser.ErrUnresolvableTypeName)
	assert.Equal(t, "parser_test.Unknown", pe.Input)

	types, err := parser.Parse[[]reflect.Type](e, "int,string")
	require.NoError(t, err)
	assert.Equal(t, []reflect.Type{reflect.TypeFor[int](), reflect.TypeFor[string]()}, types)
}

func TestFactory(t *testing.T) {
	t.Parallel()

	e := newEngine(t)

	// versionFromOpaque comes first but its argument has no parser.
	v, err := parser.Parse[Version](e, " 1.2 ")
	require.NoError(t, err)
	assert.Equal(t, Version{1, 2}, v)

	_, err = parser.Parse[Version](e, "one")
	pe := requireKind(t, err, parser.ErrFactoryInvocationFailed)
	assert.Equal(t, "factory parser_test.ParseVersion", pe.Member)

	even, err := parser.Parse[Even](e, "4")
	require.NoError(t, err)
	assert.Equal(t, Even(4), even)

	_, err = parser.Parse[Even](e, "3")
	requireKind(t, err, parser.ErrFactoryInvocationFailed)
	require.ErrorIs(t, err, parser.ErrFactoryDeclined)

	// A parse failure of the argument is fatal, not a reason to skip.
	_, err = parser.Parse[Even](e, "three")
	requireKind(t, err, parser.ErrParseFailed)

	_, err = parser.Parse[Boom](e, "x")
	pe = requireKind(t, err, parser.ErrFactoryInvocationFailed)
	assert.ErrorContains(t, pe.Cause, "panic: boom")
}

func TestFactoriesAreTriedInRegistrationOrder(t *testing.T) {
	t.Parallel()

	fromInt := func(n int) Version { return Version{Major: n} }
	fromString := func(s string) Version { return Version{Minor: len(s)} }

	e, err := parser.NewBuilder().RegisterFactory(fromInt, fromString).Build()
	require.NoError(t, err)

	v, err := parser.Parse[Version](e, "7")
	require.NoError(t, err)
	assert.Equal(t, Version{Major: 7}, v)

	e, err = parser.NewBuilder().RegisterFactory(fromString, fromInt).Build()
	require.NoError(t, err)

	v, err = parser.Parse[Version](e, "7")
	require.NoError(t, err)
	assert.Equal(t, Version{Minor: 1}, v)
}

func TestTextUnmarshaler(t *testing.T) {
	t.Parallel()

	e := newEngine(t)

	l, err := parser.Parse[Level](e, "high")
	require.NoError(t, err)
	assert.Equal(t, Level{n: 9}, l)

	p, err := parser.Parse[*Level](e, "low")
	require.NoError(t, err)
	assert.Equal(t, &Level{n: 1}, p)

	_, err = parser.Parse[Level](e, "medium")
	pe := requireKind(t, err, parser.ErrFactoryInvocationFailed)
	assert.Equal(t, "factory (*parser_test.Level).UnmarshalText", pe.Member)
}

func TestConstructors(t *testing.T) {
	t.Parallel()

	e := newEngine(t)

	c, err := parser.Parse[Celsius](e, "-40")
	require.NoError(t, err)
	assert.Equal(t, Celsius(-40), c)

	n, err := parser.Parse[*int](e, "5")
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, 5, *n)

	mail, err := parser.Parse[Email](e, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, Email{Addr: "ada@example.com"}, mail)

	ptr, err := parser.Parse[**Email](e, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", (**ptr).Addr)

	_, err = parser.Parse[Celsius](e, "warm")
	requireKind(t, err, parser.ErrParseFailed)
}
