package config

// Config is the root of a configuration file.
type Config struct {
	Version    string   `yaml:"version" validate:"oneof=1"`
	Split      Split    `yaml:"split"`
	MaxDepth   int      `yaml:"max_depth" validate:"gte=1,lte=4096"`
	Categories []string `yaml:"categories" validate:"dive,category"`
	// NullString is unset unless present in the file; an empty string is a
	// valid null marker.
	NullString *string `yaml:"null_string,omitempty"`
}

// Split holds the container delimiters.
type Split struct {
	Element  string `yaml:"element" validate:"required"`
	KeyValue string `yaml:"key_value" validate:"required,nefield=Element"`
}
