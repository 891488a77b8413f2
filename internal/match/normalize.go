package match

import (
	"strings"
	"unicode"
)

// Normalize folds a type name for fuzzy comparison: lower case, without
// separators, pointer stars or whitespace.
func Normalize(name string) string {
	var sb strings.Builder

	sb.Grow(len(name))

	for _, r := range name {
		switch {
		case r == '_' || r == '-' || r == '*' || unicode.IsSpace(r):
		default:
			sb.WriteRune(unicode.ToLower(r))
		}
	}

	return sb.String()
}

// Unqualified drops the import path and package qualifier of a type name.
// Generic arguments are kept untouched.
//
//	Unqualified("type-parser/container.List[int]") == "List[int]"
func Unqualified(name string) string {
	head, args, _ := strings.Cut(name, "[")
	if i := strings.LastIndexByte(head, '.'); i >= 0 {
		head = head[i+1:]
	}

	if args == "" {
		return head
	}

	return head + "[" + args
}
