package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"type-parser/descriptor"
	"type-parser/parser"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)

	return stdout.String(), err
}

func TestParseCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		typ      string
		expected string
	}{
		{"3, 1 ,2", "[]int", "3,1,2\n"},
		{"a=1", "map[string]int", "a=1\n"},
		{"March", "time.Month", "March\n"},
		{"Monday,Friday", "container.SortedSet[time.Weekday]", "Monday,Friday\n"},
		{"https://example.com/x", "*url.URL", "https://example.com/x\n"},
		{"10.0.0.1", "netip.Addr", "10.0.0.1\n"},
		{"90s", "time.Duration", "1m30s\n"},
	}

	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			t.Parallel()

			out, err := runCLI(t, "parse", tt.input, "--type", tt.typ)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestParseCommandDump(t *testing.T) {
	t.Parallel()

	out, err := runCLI(t, "parse", "1", "-t", "[]int", "--dump")
	require.NoError(t, err)
	assert.Contains(t, out, "(int) 1")
}

func TestParseCommandErrors(t *testing.T) {
	t.Parallel()

	_, err := runCLI(t, "parse", "1", "-t", "nope")
	require.ErrorIs(t, err, descriptor.ErrUnknownTypeName)

	_, err = runCLI(t, "parse", "x", "-t", "netip.Addr")
	require.ErrorIs(t, err, parser.ErrFactoryInvocationFailed)

	_, err = runCLI(t, "parse", "1")
	require.Error(t, err)
}

func TestCheckCommand(t *testing.T) {
	t.Parallel()

	out, err := runCLI(t, "check", "int", "container.Map", "time.Mnth")
	require.Error(t, err)
	assert.EqualError(t, err, "2 of 3 type expressions cannot be parsed")

	assert.Contains(t, out, "info: [int] [supported]")
	assert.Contains(t, out, "error: [container.Map] [missing-type-args]")
	assert.Contains(t, out, "did you mean time.Month")

	out, err = runCLI(t, "check", "[]time.Weekday")
	require.NoError(t, err)
	assert.Contains(t, out, "[supported]")
}

func TestTypesCommand(t *testing.T) {
	t.Parallel()

	out, err := runCLI(t, "types")
	require.NoError(t, err)

	for _, name := range []string{"int", "time.Month", "url.URL", "netip.Addr", "container.List"} {
		assert.Contains(t, out, name+"\n")
	}
}

func TestConfigFlag(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "parser.yaml")
	require.NoError(t, os.WriteFile(path, []byte("split: {element: ';', key_value: ':'}\nmax_depth: 5\n"), 0o600))

	out, err := runCLI(t, "show-config", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "max_depth: 5")

	out, err = runCLI(t, "parse", "a:1;b:2", "-t", "map[string]int", "-c", path)
	require.NoError(t, err)
	assert.Equal(t, "a:1;b:2\n", out)

	_, err = runCLI(t, "show-config", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestParseCommandNullElements(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "parser.yaml")
	require.NoError(t, os.WriteFile(path, []byte("null_string: nil\n"), 0o600))

	out, err := runCLI(t, "parse", "https://a.example,nil", "-t", "[]*url.URL", "-c", path)
	require.NoError(t, err)
	assert.Equal(t, "https://a.example,nil\n", out)
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
