// Package config loads engine settings from YAML.
//
//	version: "1"
//	split:
//	  element: ";"
//	  key_value: ":"
//	max_depth: 32
//	categories: [default, textual-bool]
//	null_string: "null"
//
// Every field is optional. Missing ones take the parser defaults.
package config
