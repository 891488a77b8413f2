// Package match ranks known type names against a mistyped one.
//
// Names are compared after normalization (case folding, separator
// stripping), both as a whole and by their unqualified part, so
// "color" finds "parser_test.Color" and "LinkedHashmap" finds
// "container.LinkedHashMap".
package match
