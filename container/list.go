package container

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/lists/doublylinkedlist"
)

// ArrayList is the default List.
type ArrayList struct {
	l *arraylist.List
}

func NewArrayList(values ...any) *ArrayList {
	return &ArrayList{l: arraylist.New(values...)}
}

func (a *ArrayList) list() *arraylist.List {
	if a.l == nil {
		a.l = arraylist.New()
	}

	return a.l
}

func (a *ArrayList) Add(v any)             { a.list().Add(v) }
func (a *ArrayList) Len() int              { return a.list().Size() }
func (a *ArrayList) Values() []any         { return a.list().Values() }
func (a *ArrayList) Get(i int) (any, bool) { return a.list().Get(i) }

// LinkedList is the default Queue.
type LinkedList struct {
	l *doublylinkedlist.List
}

func NewLinkedList(values ...any) *LinkedList {
	return &LinkedList{l: doublylinkedlist.New(values...)}
}

func (q *LinkedList) list() *doublylinkedlist.List {
	if q.l == nil {
		q.l = doublylinkedlist.New()
	}

	return q.l
}

func (q *LinkedList) Add(v any)         { q.list().Add(v) }
func (q *LinkedList) Len() int          { return q.list().Size() }
func (q *LinkedList) Values() []any     { return q.list().Values() }
func (q *LinkedList) Offer(v any) bool  { q.list().Add(v); return true }
func (q *LinkedList) Peek() (any, bool) { return q.list().Get(0) }

func (q *LinkedList) Poll() (any, bool) {
	v, ok := q.list().Get(0)
	if ok {
		q.l.Remove(0)
	}

	return v, ok
}

// ArrayDeque is the default Deque.
type ArrayDeque struct {
	l *arraylist.List
}

func NewArrayDeque(values ...any) *ArrayDeque {
	return &ArrayDeque{l: arraylist.New(values...)}
}

func (d *ArrayDeque) list() *arraylist.List {
	if d.l == nil {
		d.l = arraylist.New()
	}

	return d.l
}

func (d *ArrayDeque) Add(v any)             { d.list().Add(v) }
func (d *ArrayDeque) Len() int              { return d.list().Size() }
func (d *ArrayDeque) Values() []any         { return d.list().Values() }
func (d *ArrayDeque) Offer(v any) bool      { d.list().Add(v); return true }
func (d *ArrayDeque) OfferFirst(v any) bool { d.list().Insert(0, v); return true }
func (d *ArrayDeque) Peek() (any, bool)     { return d.list().Get(0) }
func (d *ArrayDeque) PeekLast() (any, bool) { return d.list().Get(d.list().Size() - 1) }

func (d *ArrayDeque) Poll() (any, bool) {
	v, ok := d.list().Get(0)
	if ok {
		d.l.Remove(0)
	}

	return v, ok
}

func (d *ArrayDeque) PollLast() (any, bool) {
	last := d.list().Size() - 1
	v, ok := d.l.Get(last)
	if ok {
		d.l.Remove(last)
	}

	return v, ok
}
