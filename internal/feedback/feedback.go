// Package feedback tracks which elements are currently showing their "copied" state.
//
// Every activation gets its own token. Expiring an activation only clears the state if no later
// activation has replaced it, so a reset scheduled by an earlier copy can't end a later one early.
package feedback

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/google/uuid"
	"sync"
	"time"
)

type Activation struct {
	ElementID string
	Token     string
	At        time.Time
}

// Store is the display state of each element
type Store interface {
	Activate(elementID string) Activation
	// Expire clears the state for a.ElementID if a is still its latest activation, reporting whether it did.
	// Expiring an activation that already ended reports false.
	Expire(a Activation) bool
	// Clear unconditionally clears the state for elementID, reporting whether it was copied
	Clear(elementID string) bool
	Copied(elementID string) bool
}

type entry struct {
	copied bool
	token  string
}

// Memory is a Store safe for concurrent use, ordered by element id
type Memory struct {
	mu      sync.Mutex
	entries *treemap.Map
	now     func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		entries: treemap.NewWithStringComparator(),
		now:     time.Now,
	}
}

func (m *Memory) Activate(elementID string) Activation {
	m.mu.Lock()
	defer m.mu.Unlock()
	a := Activation{
		ElementID: elementID,
		Token:     uuid.New().String(),
		At:        m.now(),
	}
	m.entries.Put(elementID, entry{copied: true, token: a.Token})
	return a
}

func (m *Memory) Expire(a Activation) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.get(a.ElementID)
	if !ok || e.token != a.Token || !e.copied {
		return false
	}
	e.copied = false
	m.entries.Put(a.ElementID, e)
	return true
}

func (m *Memory) Clear(elementID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.get(elementID)
	if !ok || !e.copied {
		return false
	}
	e.copied = false
	m.entries.Put(elementID, e)
	return true
}

func (m *Memory) Copied(elementID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.get(elementID)
	return ok && e.copied
}

// Snapshot returns the ids of all elements currently copied, in order
func (m *Memory) Snapshot() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ids []string
	it := m.entries.Iterator()
	for it.Next() {
		if it.Value().(entry).copied {
			ids = append(ids, it.Key().(string))
		}
	}
	return ids
}

func (m *Memory) get(elementID string) (entry, bool) {
	v, ok := m.entries.Get(elementID)
	if !ok {
		return entry{}, false
	}
	return v.(entry), true
}
