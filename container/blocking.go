package container

import (
	"context"
	"sync"

	"github.com/emirpasic/gods/lists/doublylinkedlist"
)

// LinkedBlockingDeque is the default BlockingDeque and BlockingQueue. It is
// unbounded, so Put never waits.
type LinkedBlockingDeque struct {
	mu     sync.Mutex
	l      *doublylinkedlist.List
	notify chan struct{}
}

func NewLinkedBlockingDeque(values ...any) *LinkedBlockingDeque {
	return &LinkedBlockingDeque{l: doublylinkedlist.New(values...)}
}

// init must be called with mu held.
func (d *LinkedBlockingDeque) init() {
	if d.l == nil {
		d.l = doublylinkedlist.New()
	}
	if d.notify == nil {
		d.notify = make(chan struct{})
	}
}

// signal must be called with mu held.
func (d *LinkedBlockingDeque) signal() {
	close(d.notify)
	d.notify = make(chan struct{})
}

func (d *LinkedBlockingDeque) push(v any, front bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.init()
	if front {
		d.l.Prepend(v)
	} else {
		d.l.Add(v)
	}
	d.signal()
}

func (d *LinkedBlockingDeque) pop(front bool) (any, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.init()
	return d.popLocked(front)
}

func (d *LinkedBlockingDeque) popLocked(front bool) (any, bool) {
	i := 0
	if !front {
		i = d.l.Size() - 1
	}

	v, ok := d.l.Get(i)
	if ok {
		d.l.Remove(i)
	}

	return v, ok
}

func (d *LinkedBlockingDeque) peek(front bool) (any, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.init()
	if front {
		return d.l.Get(0)
	}

	return d.l.Get(d.l.Size() - 1)
}

func (d *LinkedBlockingDeque) take(ctx context.Context, front bool) (any, error) {
	for {
		d.mu.Lock()
		d.init()
		if v, ok := d.popLocked(front); ok {
			d.mu.Unlock()
			return v, nil
		}
		wait := d.notify
		d.mu.Unlock()

		select {
		case <-wait:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

func (d *LinkedBlockingDeque) Add(v any)             { d.push(v, false) }
func (d *LinkedBlockingDeque) Offer(v any) bool      { d.push(v, false); return true }
func (d *LinkedBlockingDeque) OfferFirst(v any) bool { d.push(v, true); return true }
func (d *LinkedBlockingDeque) Poll() (any, bool)     { return d.pop(true) }
func (d *LinkedBlockingDeque) PollLast() (any, bool) { return d.pop(false) }
func (d *LinkedBlockingDeque) Peek() (any, bool)     { return d.peek(true) }
func (d *LinkedBlockingDeque) PeekLast() (any, bool) { return d.peek(false) }

func (d *LinkedBlockingDeque) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.init()
	return d.l.Size()
}

func (d *LinkedBlockingDeque) Values() []any {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.init()
	return d.l.Values()
}

func (d *LinkedBlockingDeque) Put(ctx context.Context, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	d.push(v, false)
	return nil
}

func (d *LinkedBlockingDeque) PutFirst(ctx context.Context, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	d.push(v, true)
	return nil
}

func (d *LinkedBlockingDeque) Take(ctx context.Context) (any, error)     { return d.take(ctx, true) }
func (d *LinkedBlockingDeque) TakeLast(ctx context.Context) (any, error) { return d.take(ctx, false) }
