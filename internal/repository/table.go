package repository

import "sync"

// table maps the natural key of one entity kind to the entity stored for it.
// Each table has its own lock; entities of different kinds never contend.
type table[K comparable, V any] struct {
	mu   sync.RWMutex
	rows map[K]*V
}

func newTable[K comparable, V any]() *table[K, V] {
	return &table[K, V]{rows: make(map[K]*V)}
}

// add stores v under key unless the key is taken. The stored value is never
// replaced.
func (t *table[K, V]) add(key K, v *V) (*V, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.rows[key]; exists {
		return nil, false
	}
	t.rows[key] = v
	return v, true
}

func (t *table[K, V]) get(key K) (*V, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.rows[key]
	return v, ok
}

func (t *table[K, V]) len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}
