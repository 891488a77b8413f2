package options

import (
	"fmt"
	"strings"
)

// CategoryEnum selects the textual forms the default scalar parsers accept.
type CategoryEnum int

const (
	CategoryTextNumber     CategoryEnum = 1 << iota // int, uint, float, complex: decimal textual number representation
	CategoryPrefixedNumber                          // int, uint: 0x, 0o, 0b prefixes and underscores
	CategoryTextualBool                             // bool: yes, no, on, off, y, n, 1, 0 besides true and false
	CategoryDatetime                                // time.Time: RFC3339Nano textual date and time representation
	CategoryTimestamp                               // time.Time: Unix seconds representation
	CategoryDuration                                // time.Duration: textual duration representation (2h45m)
	CategoryNanoseconds                             // time.Duration: integer nanoseconds representation
	CategorySeconds                                 // time.Duration: floating-point seconds representation

	CategoryAll  CategoryEnum = (1 << iota) - 1 // all categories combined
	CategoryNone CategoryEnum = 0               // no categories selected

	// CategoryDefault is what a builder enables unless told otherwise.
	CategoryDefault = CategoryTextNumber | CategoryDatetime | CategoryDuration
)

var categoryNames = []struct {
	name string
	cat  CategoryEnum
}{
	{"text-number", CategoryTextNumber},
	{"prefixed-number", CategoryPrefixedNumber},
	{"textual-bool", CategoryTextualBool},
	{"datetime", CategoryDatetime},
	{"timestamp", CategoryTimestamp},
	{"duration", CategoryDuration},
	{"nanoseconds", CategoryNanoseconds},
	{"seconds", CategorySeconds},
}

// Has reports whether every category of other is enabled in c.
func (c CategoryEnum) Has(other CategoryEnum) bool {
	return c&other == other
}

// String lists enabled category names joined by "|".
func (c CategoryEnum) String() string {
	if c == CategoryNone {
		return "none"
	}

	var parts []string
	for _, n := range categoryNames {
		if c.Has(n.cat) {
			parts = append(parts, n.name)
		}
	}

	return strings.Join(parts, "|")
}

// ParseCategories combines named categories. The names "all", "none" and
// "default" are accepted as well.
func ParseCategories(names ...string) (CategoryEnum, error) {
	var c CategoryEnum

next:
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		switch name {
		case "all":
			c |= CategoryAll
			continue
		case "none", "":
			continue
		case "default":
			c |= CategoryDefault
			continue
		}

		for _, n := range categoryNames {
			if n.name == name {
				c |= n.cat
				continue next
			}
		}

		return CategoryNone, fmt.Errorf("unknown category %q", name)
	}

	return c, nil
}
