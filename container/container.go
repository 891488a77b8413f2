// Package container defines the collection and map families a parser can
// populate, together with their default implementations.
//
// Families are plain Go interfaces. A requested interface type is matched
// against them by method set, so a user interface embedding SortedSet is
// treated as a sorted set. Elements are held as any; the element type is
// decided by the descriptor used to parse them.
//
// Every default implementation is usable as its zero value.
package container

import (
	"cmp"
	"context"
	"fmt"
	"reflect"
)

// Collection is the root of the collection family.
type Collection interface {
	Add(v any)
	Len() int
	Values() []any
}

// List is an ordered sequence with positional access.
type List interface {
	Collection
	Get(i int) (any, bool)
}

// Set holds each element at most once.
type Set interface {
	Collection
	Contains(v any) bool
}

// SortedSet keeps its elements in natural order.
type SortedSet interface {
	Set
	First() (any, bool)
	Last() (any, bool)
}

// Queue is a first-in first-out collection.
type Queue interface {
	Collection
	Offer(v any) bool
	Poll() (any, bool)
	Peek() (any, bool)
}

// Deque is a queue that can also be used from its tail.
type Deque interface {
	Queue
	OfferFirst(v any) bool
	PollLast() (any, bool)
	PeekLast() (any, bool)
}

// BlockingQueue waits for elements on Take.
type BlockingQueue interface {
	Queue
	Put(ctx context.Context, v any) error
	Take(ctx context.Context) (any, error)
}

// BlockingDeque is a deque that waits for elements at both ends.
type BlockingDeque interface {
	Deque
	BlockingQueue
	PutFirst(ctx context.Context, v any) error
	TakeLast(ctx context.Context) (any, error)
}

// Map is the root of the map family.
type Map interface {
	Put(k, v any)
	Get(k any) (any, bool)
	Len() int
	Keys() []any
}

// SortedMap keeps its keys in natural order.
type SortedMap interface {
	Map
	FirstKey() (any, bool)
	LastKey() (any, bool)
}

// NavigableMap answers closest-key queries.
type NavigableMap interface {
	SortedMap
	Floor(k any) (any, bool)
	Ceiling(k any) (any, bool)
}

// ConcurrentMap is safe for concurrent use.
type ConcurrentMap interface {
	Map
	PutIfAbsent(k, v any) (actual any, loaded bool)
}

// Initializer is implemented by concrete containers that need more than their
// zero value before the first Add or Put.
type Initializer interface {
	Init() error
}

// Hashing is implemented by containers that key elements (or map keys) by Go
// equality. Their elements must be of a comparable type.
type Hashing interface {
	HashesElements()
}

var (
	CollectionType    = reflect.TypeFor[Collection]()
	ListType          = reflect.TypeFor[List]()
	SetType           = reflect.TypeFor[Set]()
	SortedSetType     = reflect.TypeFor[SortedSet]()
	QueueType         = reflect.TypeFor[Queue]()
	DequeType         = reflect.TypeFor[Deque]()
	BlockingQueueType = reflect.TypeFor[BlockingQueue]()
	BlockingDequeType = reflect.TypeFor[BlockingDeque]()

	MapType           = reflect.TypeFor[Map]()
	SortedMapType     = reflect.TypeFor[SortedMap]()
	NavigableMapType  = reflect.TypeFor[NavigableMap]()
	ConcurrentMapType = reflect.TypeFor[ConcurrentMap]()

	EnumSetType = reflect.TypeFor[*EnumSet]()
)

// Compare is the natural ordering used by sorted containers: numbers and
// strings by value, false before true, values with a Compare method of their
// own type through it, anything else by its formatted text.
func Compare(a, b any) int {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !va.IsValid() || !vb.IsValid() {
		return cmp.Compare(boolRank(va.IsValid()), boolRank(vb.IsValid()))
	}

	if va.Type() == vb.Type() {
		if m := va.MethodByName("Compare"); m.IsValid() && m.Type().NumIn() == 1 &&
			m.Type().In(0) == vb.Type() && m.Type().NumOut() == 1 && m.Type().Out(0).Kind() == reflect.Int {
			return int(m.Call([]reflect.Value{vb})[0].Int())
		}

		switch va.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return cmp.Compare(va.Int(), vb.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return cmp.Compare(va.Uint(), vb.Uint())
		case reflect.Float32, reflect.Float64:
			return cmp.Compare(va.Float(), vb.Float())
		case reflect.String:
			return cmp.Compare(va.String(), vb.String())
		case reflect.Bool:
			return cmp.Compare(boolRank(va.Bool()), boolRank(vb.Bool()))
		}
	}

	if c, ok := a.(interface{ Compare(any) int }); ok {
		return c.Compare(b)
	}

	return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func boolRank(b bool) int {
	if b {
		return 1
	}

	return 0
}
