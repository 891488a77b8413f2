package container

import (
	"fmt"

	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/emirpasic/gods/sets/treeset"

	"type-parser/descriptor"
)

// LinkedHashSet is the default Set. It keeps insertion order; elements must
// be comparable.
type LinkedHashSet struct {
	s *linkedhashset.Set
}

func NewLinkedHashSet(values ...any) *LinkedHashSet {
	return &LinkedHashSet{s: linkedhashset.New(values...)}
}

func (h *LinkedHashSet) set() *linkedhashset.Set {
	if h.s == nil {
		h.s = linkedhashset.New()
	}

	return h.s
}

func (h *LinkedHashSet) Add(v any)           { h.set().Add(v) }
func (h *LinkedHashSet) Len() int            { return h.set().Size() }
func (h *LinkedHashSet) Values() []any       { return h.set().Values() }
func (h *LinkedHashSet) Contains(v any) bool { return h.set().Contains(v) }
func (*LinkedHashSet) HashesElements()       {}

// TreeSet is the default SortedSet, ordered by Compare.
type TreeSet struct {
	s *treeset.Set
}

func NewTreeSet(values ...any) *TreeSet {
	return &TreeSet{s: treeset.NewWith(Compare, values...)}
}

func (t *TreeSet) set() *treeset.Set {
	if t.s == nil {
		t.s = treeset.NewWith(Compare)
	}

	return t.s
}

func (t *TreeSet) Add(v any)           { t.set().Add(v) }
func (t *TreeSet) Len() int            { return t.set().Size() }
func (t *TreeSet) Values() []any       { return t.set().Values() }
func (t *TreeSet) Contains(v any) bool { return t.set().Contains(v) }

func (t *TreeSet) First() (any, bool) {
	values := t.set().Values()
	if len(values) == 0 {
		return nil, false
	}

	return values[0], true
}

func (t *TreeSet) Last() (any, bool) {
	values := t.set().Values()
	if len(values) == 0 {
		return nil, false
	}

	return values[len(values)-1], true
}

// EnumSet holds constants of one enum and iterates them in declaration order.
type EnumSet struct {
	enum    *descriptor.Enum
	present []bool
	size    int
}

// NewEnumSet returns an empty set over the constants of e.
func NewEnumSet(e *descriptor.Enum) *EnumSet {
	return &EnumSet{enum: e, present: make([]bool, e.Len())}
}

// Enum returns the enum the set ranges over.
func (s *EnumSet) Enum() *descriptor.Enum { return s.enum }

// Add panics if v is not a constant of the set's enum.
func (s *EnumSet) Add(v any) {
	i := -1
	if s.enum != nil {
		i = s.enum.Ordinal(v)
	}
	if i < 0 {
		panic(fmt.Sprintf("container: %v (%T) is not a constant of the enum set", v, v))
	}

	if !s.present[i] {
		s.present[i] = true
		s.size++
	}
}

func (s *EnumSet) Len() int { return s.size }

func (s *EnumSet) Contains(v any) bool {
	if s.enum == nil {
		return false
	}

	i := s.enum.Ordinal(v)
	return i >= 0 && s.present[i]
}

func (s *EnumSet) Values() []any {
	values := make([]any, 0, s.size)
	for i, ok := range s.present {
		if ok {
			values = append(values, s.enum.Value(i).Interface())
		}
	}

	return values
}
