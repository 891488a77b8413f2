package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"type-parser/options"
	"type-parser/parser"
	"type-parser/split"
)

const CurrentVersion = "1"

// Default returns the configuration an empty file produces.
func Default() *Config {
	var c Config
	applyDefaults(&c)

	return &c
}

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config, fills in defaults and validates it.
func Parse(data []byte) (*Config, error) {
	var c Config

	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&c)

	if err := Validate(&c); err != nil {
		return nil, err
	}

	return &c, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(c *Config) {
	if c.Version == "" {
		c.Version = CurrentVersion
	}

	if c.Split.Element == "" {
		c.Split.Element = split.DefaultElementDelimiter
	}

	if c.Split.KeyValue == "" {
		c.Split.KeyValue = split.DefaultKeyValueDelimiter
	}

	if c.MaxDepth == 0 {
		c.MaxDepth = parser.DefaultMaxDepth
	}

	if len(c.Categories) == 0 {
		c.Categories = []string{"default"}
	}
}

// Marshal serializes a Config to YAML.
func Marshal(c *Config) ([]byte, error) {
	return yaml.Marshal(c)
}

// Apply configures b from c. It fails only if c does not validate.
func (c *Config) Apply(b *parser.Builder) error {
	s, err := split.New(
		split.WithElementDelimiter(c.Split.Element),
		split.WithKeyValueDelimiter(c.Split.KeyValue),
	)
	if err != nil {
		return fmt.Errorf("split: %w", err)
	}

	cats, err := options.ParseCategories(c.Categories...)
	if err != nil {
		return fmt.Errorf("categories: %w", err)
	}

	b.WithSplitter(s).WithMaxDepth(c.MaxDepth).WithCategories(cats)

	if c.NullString != nil {
		b.WithNullString(*c.NullString)
	}

	return nil
}
