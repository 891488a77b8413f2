// Package split turns delimited input into element and key-value substrings
// for the container strategies of the parser.
package split

import (
	"errors"
	"fmt"
	"strings"
)

const (
	DefaultElementDelimiter  = ","
	DefaultKeyValueDelimiter = "="
)

// ErrMalformedEntry is returned by KeyValue when an entry does not hold
// exactly one key-value delimiter.
var ErrMalformedEntry = errors.New("malformed key-value entry")

// Splitter holds the delimiters. The zero value is not usable, use New.
type Splitter struct {
	element  string
	keyValue string
}

// Option configures a Splitter.
type Option func(*Splitter)

// WithElementDelimiter sets the delimiter between elements.
func WithElementDelimiter(d string) Option {
	return func(s *Splitter) { s.element = d }
}

// WithKeyValueDelimiter sets the delimiter between a key and its value.
func WithKeyValueDelimiter(d string) Option {
	return func(s *Splitter) { s.keyValue = d }
}

// New returns a splitter using "," and "=" unless overridden.
func New(opts ...Option) (*Splitter, error) {
	s := &Splitter{
		element:  DefaultElementDelimiter,
		keyValue: DefaultKeyValueDelimiter,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.element == "" || s.keyValue == "" {
		return nil, errors.New("delimiters must not be empty")
	}

	if s.element == s.keyValue {
		return nil, fmt.Errorf("element and key-value delimiters are both %q", s.element)
	}

	return s, nil
}

// Default returns the splitter with "," and "=".
func Default() *Splitter {
	return &Splitter{element: DefaultElementDelimiter, keyValue: DefaultKeyValueDelimiter}
}

// ElementDelimiter returns the configured element delimiter.
func (s *Splitter) ElementDelimiter() string { return s.element }

// KeyValueDelimiter returns the configured key-value delimiter.
func (s *Splitter) KeyValueDelimiter() string { return s.keyValue }

// Elements splits input into trimmed elements in input order. Blank input
// yields no elements.
func (s *Splitter) Elements(input string) []string {
	if strings.TrimSpace(input) == "" {
		return nil
	}

	parts := strings.Split(input, s.element)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}

	return parts
}

// KeyValue splits one entry into its trimmed key and value.
func (s *Splitter) KeyValue(entry string) (key, value string, err error) {
	parts := strings.Split(entry, s.keyValue)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("%w %q: want exactly one %q, got %d", ErrMalformedEntry, entry, s.keyValue, len(parts)-1)
	}

	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), nil
}

// Join is the inverse of Elements.
func (s *Splitter) Join(elements []string) string {
	return strings.Join(elements, s.element)
}

// JoinKeyValue is the inverse of KeyValue.
func (s *Splitter) JoinKeyValue(key, value string) string {
	return key + s.keyValue + value
}
