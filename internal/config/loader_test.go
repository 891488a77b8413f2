package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"type-parser/parser"
)

func TestParse(t *testing.T) {
	t.Parallel()

	yaml := `
version: "1"
split:
  element: ";"
  key_value: ":"
max_depth: 8
categories: [default, textual-bool]
null_string: "null"
`

	c, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, c)

	assert.Equal(t, "1", c.Version)
	assert.Equal(t, Split{Element: ";", KeyValue: ":"}, c.Split)
	assert.Equal(t, 8, c.MaxDepth)
	assert.Equal(t, []string{"default", "textual-bool"}, c.Categories)
	require.NotNil(t, c.NullString)
	assert.Equal(t, "null", *c.NullString)
}

func TestParseAppliesDefaults(t *testing.T) {
	t.Parallel()

	for _, yaml := range []string{"", "{}", "split: {}"} {
		c, err := Parse([]byte(yaml))
		require.NoError(t, err)

		assert.Equal(t, Default(), c)
		assert.Equal(t, ",", c.Split.Element)
		assert.Equal(t, "=", c.Split.KeyValue)
		assert.Equal(t, parser.DefaultMaxDepth, c.MaxDepth)
		assert.Nil(t, c.NullString)
	}

	c, err := Parse([]byte(`null_string: ""`))
	require.NoError(t, err)
	require.NotNil(t, c.NullString)
	assert.Empty(t, *c.NullString)
}

func TestParseRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		yaml     string
		expected []string
	}{
		{"malformed", "split: [", []string{"failed to parse config YAML"}},
		{"version", `version: "2"`, []string{"version must be one of [1], got 2"}},
		{"depth", "max_depth: -1", []string{"max_depth failed gte=1, got -1"}},
		{"same delimiters", "split: {element: '|', key_value: '|'}", []string{"split.key_value must differ from element"}},
		{"category", "categories: [duration, hex]", []string{`categories[1]: unknown category "hex"`}},
		{"all at once", "version: x\nmax_depth: 10000\ncategories: [nope]", []string{
			"version must be one of",
			"max_depth failed lte=4096",
			`categories[0]: unknown category "nope"`,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)

			for _, msg := range tt.expected {
				assert.ErrorContains(t, err, msg)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "parser.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_depth: 3\n"), 0o600))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, c.MaxDepth)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestMarshalRoundTrip(t *testing.T) {
	t.Parallel()

	null := "-"
	c := Default()
	c.NullString = &null
	c.Categories = []string{"all"}

	data, err := Marshal(c)
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, c, back)
}

func TestApply(t *testing.T) {
	t.Parallel()

	c, err := Parse([]byte(`
split: {element: ";", key_value: ":"}
categories: [default, textual-bool]
null_string: "nil"
`))
	require.NoError(t, err)

	b := parser.NewBuilder()
	require.NoError(t, c.Apply(b))

	e, err := b.Build()
	require.NoError(t, err)

	m, err := parser.Parse[map[string][]bool](e, "a:yes;b:nil")
	require.NoError(t, err)
	assert.Equal(t, map[string][]bool{"a": {true}, "b": nil}, m)
}

func TestApplyRejectsUnvalidatedConfig(t *testing.T) {
	t.Parallel()

	c := Default()
	c.Split.KeyValue = c.Split.Element
	assert.ErrorContains(t, c.Apply(parser.NewBuilder()), "split:")

	c = Default()
	c.Categories = []string{"nope"}
	assert.ErrorContains(t, c.Apply(parser.NewBuilder()), "categories:")
}
