package parser_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"type-parser/descriptor"
	"type-parser/options"
	"type-parser/parser"
)

func TestBuildRejectsInvalidRegistrations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		b    *parser.Builder
	}{
		{"nil type", parser.NewBuilder().RegisterParser(nil, parser.Func(ParseVersion))},
		{"nil strategy", parser.NewBuilder().RegisterParser(reflect.TypeFor[int](), nil)},
		{"nil strategy func", parser.NewBuilder().RegisterParser(reflect.TypeFor[int](), parser.StrategyFunc(nil))},
		{"nil assignable func", parser.NewBuilder().RegisterAssignable(reflect.TypeFor[int](), parser.StrategyFunc(nil))},
		{"nil base", parser.NewBuilder().RegisterAssignable(nil, parser.Func(ParseVersion))},
		{"not a function", parser.NewBuilder().RegisterFactory(42)},
		{"two arguments", parser.NewBuilder().RegisterFactory(func(a, b int) int { return a + b })},
		{"empty enum", parser.NewBuilder().RegisterEnum(parser.EnumNamed(nil, nil))},
		{"enum twice", parser.NewBuilder().RegisterEnum(parser.Enum(Red)).RegisterEnum(parser.Enum(Blue))},
		{"duplicate names", parser.NewBuilder().RegisterEnum(parser.EnumNamed([]any{Red, Blue}, []string{"x", "x"}))},
		{"mixed enum", parser.NewBuilder().RegisterEnum(parser.EnumNamed([]any{Red, 1}, []string{"a", "b"}))},
		{"zero depth", parser.NewBuilder().WithMaxDepth(0)},
		{"nil splitter", parser.NewBuilder().WithSplitter(nil)},
		{"nil table", parser.NewBuilder().WithTable(nil)},
		{"nil type name", parser.NewBuilder().RegisterTypeName(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, err := tt.b.Build()
			require.ErrorIs(t, err, parser.ErrInvalidRegistration)
			assert.Nil(t, e)
		})
	}
}

func TestBuildJoinsErrors(t *testing.T) {
	t.Parallel()

	_, err := parser.NewBuilder().
		RegisterParser(nil, nil).
		WithMaxDepth(-1).
		Build()
	require.Error(t, err)

	joined, ok := err.(interface{ Unwrap() []error })
	require.True(t, ok)
	assert.Len(t, joined.Unwrap(), 2)
}

func TestWithoutDefaults(t *testing.T) {
	t.Parallel()

	e, err := parser.NewBuilder().WithoutDefaults().Build()
	require.NoError(t, err)

	assert.False(t, e.IsTargetTypeSupported(descriptor.For[int]()))
	assert.False(t, e.IsTargetTypeSupported(descriptor.For[string]()))

	_, err = parser.Parse[string](e, "x")
	requireKind(t, err, parser.ErrNoApplicableParser)

	// Containers still work over the remaining parsers.
	e, err = parser.NewBuilder().
		WithoutDefaults().
		RegisterEnum(parser.Enum(Red, Green, Blue)).
		Build()
	require.NoError(t, err)

	colors, err := parser.Parse[[]Color](e, "GREEN")
	require.NoError(t, err)
	assert.Equal(t, []Color{Green}, colors)
}

func TestWithCategories(t *testing.T) {
	t.Parallel()

	e, err := parser.NewBuilder().
		WithCategories(options.CategoryDefault | options.CategoryTextualBool | options.CategoryPrefixedNumber).
		Build()
	require.NoError(t, err)

	b, err := parser.Parse[bool](e, "yes")
	require.NoError(t, err)
	assert.True(t, b)

	n, err := parser.Parse[int](e, "0x1f")
	require.NoError(t, err)
	assert.Equal(t, 31, n)

	e, err = parser.NewBuilder().WithCategories(options.CategoryNone).Build()
	require.NoError(t, err)

	_, err = parser.Parse[int](e, "1")
	requireKind(t, err, parser.ErrParseFailed)
}
