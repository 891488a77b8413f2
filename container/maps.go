package container

import (
	"sync"

	"github.com/emirpasic/gods/maps/hashmap"
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/maps/treemap"
)

// LinkedHashMap is the default Map. It keeps key insertion order.
type LinkedHashMap struct {
	m *linkedhashmap.Map
}

func NewLinkedHashMap() *LinkedHashMap {
	return &LinkedHashMap{m: linkedhashmap.New()}
}

func (h *LinkedHashMap) mp() *linkedhashmap.Map {
	if h.m == nil {
		h.m = linkedhashmap.New()
	}

	return h.m
}

func (h *LinkedHashMap) Put(k, v any)          { h.mp().Put(k, v) }
func (h *LinkedHashMap) Get(k any) (any, bool) { return h.mp().Get(k) }
func (h *LinkedHashMap) Len() int              { return h.mp().Size() }
func (h *LinkedHashMap) Keys() []any           { return h.mp().Keys() }
func (*LinkedHashMap) HashesElements()         {}

// TreeMap is the default SortedMap, ordered by Compare.
type TreeMap struct {
	m *treemap.Map
}

func NewTreeMap() *TreeMap {
	return &TreeMap{m: treemap.NewWith(Compare)}
}

func (t *TreeMap) mp() *treemap.Map {
	if t.m == nil {
		t.m = treemap.NewWith(Compare)
	}

	return t.m
}

func (t *TreeMap) Put(k, v any)          { t.mp().Put(k, v) }
func (t *TreeMap) Get(k any) (any, bool) { return t.mp().Get(k) }
func (t *TreeMap) Len() int              { return t.mp().Size() }
func (t *TreeMap) Keys() []any           { return t.mp().Keys() }

func (t *TreeMap) FirstKey() (any, bool) {
	k, _ := t.mp().Min()
	return k, k != nil
}

func (t *TreeMap) LastKey() (any, bool) {
	k, _ := t.mp().Max()
	return k, k != nil
}

func (t *TreeMap) Floor(k any) (any, bool) {
	found, _ := t.mp().Floor(k)
	return found, found != nil
}

func (t *TreeMap) Ceiling(k any) (any, bool) {
	found, _ := t.mp().Ceiling(k)
	return found, found != nil
}

// ConcurrentHashMap is the default ConcurrentMap.
type ConcurrentHashMap struct {
	mu sync.Mutex
	m  *hashmap.Map
}

func NewConcurrentHashMap() *ConcurrentHashMap {
	return &ConcurrentHashMap{m: hashmap.New()}
}

// mp must be called with mu held.
func (c *ConcurrentHashMap) mp() *hashmap.Map {
	if c.m == nil {
		c.m = hashmap.New()
	}

	return c.m
}

func (*ConcurrentHashMap) HashesElements() {}

func (c *ConcurrentHashMap) Put(k, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.mp().Put(k, v)
}

func (c *ConcurrentHashMap) PutIfAbsent(k, v any) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if actual, ok := c.mp().Get(k); ok {
		return actual, true
	}

	c.m.Put(k, v)
	return v, false
}

func (c *ConcurrentHashMap) Get(k any) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.mp().Get(k)
}

func (c *ConcurrentHashMap) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.mp().Size()
}

func (c *ConcurrentHashMap) Keys() []any {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.mp().Keys()
}

// ConcurrentSkipListMap is the default NavigableMap: sorted and safe for
// concurrent use.
type ConcurrentSkipListMap struct {
	mu sync.Mutex
	t  TreeMap
}

func NewConcurrentSkipListMap() *ConcurrentSkipListMap {
	return &ConcurrentSkipListMap{}
}

func (c *ConcurrentSkipListMap) Put(k, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.t.Put(k, v)
}

func (c *ConcurrentSkipListMap) PutIfAbsent(k, v any) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if actual, ok := c.t.Get(k); ok {
		return actual, true
	}

	c.t.Put(k, v)
	return v, false
}

func (c *ConcurrentSkipListMap) Get(k any) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.t.Get(k)
}

func (c *ConcurrentSkipListMap) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.t.Len()
}

func (c *ConcurrentSkipListMap) Keys() []any {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.t.Keys()
}

func (c *ConcurrentSkipListMap) FirstKey() (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.t.FirstKey()
}

func (c *ConcurrentSkipListMap) LastKey() (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.t.LastKey()
}

func (c *ConcurrentSkipListMap) Floor(k any) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.t.Floor(k)
}

func (c *ConcurrentSkipListMap) Ceiling(k any) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.t.Ceiling(k)
}
