package container

import (
	"fmt"
	"reflect"
)

// CollectionRow maps every interface matched by Match to a default
// implementation built by New.
type CollectionRow struct {
	Name  string
	Match func(reflect.Type) bool
	New   func() Collection
}

// MapRow is the map counterpart of CollectionRow.
type MapRow struct {
	Name  string
	Match func(reflect.Type) bool
	New   func() Map
}

// Table picks the default implementation for a requested interface type.
// Rows are evaluated top to bottom and the first match wins. A Table is
// read-only once built and may be shared.
type Table struct {
	collections []CollectionRow
	maps        []MapRow
}

// Implements returns a predicate matching interface types whose method set
// includes the family's.
func Implements(family reflect.Type) func(reflect.Type) bool {
	return func(t reflect.Type) bool { return t.Implements(family) }
}

func always(reflect.Type) bool { return true }

// DefaultTable returns the standard precedence:
//
//	List -> ArrayList, SortedSet -> TreeSet, Set -> LinkedHashSet,
//	BlockingDeque -> LinkedBlockingDeque, Deque -> ArrayDeque,
//	BlockingQueue -> LinkedBlockingDeque, Queue -> LinkedList,
//	anything else -> ArrayList
//
//	NavigableMap -> ConcurrentSkipListMap, ConcurrentMap -> ConcurrentHashMap,
//	SortedMap -> TreeMap, anything else -> LinkedHashMap
func DefaultTable() *Table {
	return &Table{
		collections: []CollectionRow{
			{"ArrayList", Implements(ListType), func() Collection { return NewArrayList() }},
			{"TreeSet", Implements(SortedSetType), func() Collection { return NewTreeSet() }},
			{"LinkedHashSet", Implements(SetType), func() Collection { return NewLinkedHashSet() }},
			{"LinkedBlockingDeque", Implements(BlockingDequeType), func() Collection { return NewLinkedBlockingDeque() }},
			{"ArrayDeque", Implements(DequeType), func() Collection { return NewArrayDeque() }},
			{"LinkedBlockingDeque", Implements(BlockingQueueType), func() Collection { return NewLinkedBlockingDeque() }},
			{"LinkedList", Implements(QueueType), func() Collection { return NewLinkedList() }},
			{"ArrayList", always, func() Collection { return NewArrayList() }},
		},
		maps: []MapRow{
			{"ConcurrentSkipListMap", Implements(NavigableMapType), func() Map { return NewConcurrentSkipListMap() }},
			{"ConcurrentHashMap", Implements(ConcurrentMapType), func() Map { return NewConcurrentHashMap() }},
			{"TreeMap", Implements(SortedMapType), func() Map { return NewTreeMap() }},
			{"LinkedHashMap", always, func() Map { return NewLinkedHashMap() }},
		},
	}
}

// NewTable builds a table from explicit rows, for callers replacing the
// defaults.
func NewTable(collections []CollectionRow, maps []MapRow) *Table {
	return &Table{
		collections: append([]CollectionRow(nil), collections...),
		maps:        append([]MapRow(nil), maps...),
	}
}

// NewCollection instantiates the default implementation for the interface
// type iface. The result is checked to implement iface.
func (t *Table) NewCollection(iface reflect.Type) (Collection, error) {
	for _, row := range t.collections {
		if !row.Match(iface) {
			continue
		}

		c := row.New()
		if !reflect.TypeOf(c).Implements(iface) {
			return nil, fmt.Errorf("default %s does not implement %s", row.Name, iface)
		}
		return c, nil
	}

	return nil, fmt.Errorf("no default collection for %s", iface)
}

// NewMap instantiates the default implementation for the interface type iface.
func (t *Table) NewMap(iface reflect.Type) (Map, error) {
	for _, row := range t.maps {
		if !row.Match(iface) {
			continue
		}

		m := row.New()
		if !reflect.TypeOf(m).Implements(iface) {
			return nil, fmt.Errorf("default %s does not implement %s", row.Name, iface)
		}
		return m, nil
	}

	return nil, fmt.Errorf("no default map for %s", iface)
}
