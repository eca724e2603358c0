package shortcut

import (
	"cmp"
	"slices"
	"sync"
)

// Sort returns the display order: pinned shortcuts first, then the rest,
// each group newest first. The input is not modified.
func Sort(shortcuts []Shortcut) []Shortcut {
	sorted := slices.Clone(shortcuts)
	slices.SortStableFunc(sorted, func(a, b Shortcut) int {
		if a.Pinned != b.Pinned {
			if a.Pinned {
				return -1
			}
			return 1
		}
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return sorted
}

// Collection is the local view of a user's shortcuts. It keeps no ordering
// state; Sorted recomputes the display order on every call.
type Collection struct {
	mutex sync.RWMutex
	items map[string]Shortcut
}

func NewCollection() *Collection {
	return &Collection{
		items: make(map[string]Shortcut),
	}
}

// Replace swaps the whole content, as after a fresh fetch.
func (c *Collection) Replace(shortcuts []Shortcut) {
	items := make(map[string]Shortcut, len(shortcuts))
	for _, s := range shortcuts {
		items[s.ID] = s
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.items = items
}

func (c *Collection) Get(id string) (Shortcut, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	s, ok := c.items[id]
	return s, ok
}

func (c *Collection) Put(s Shortcut) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.items[s.ID] = s
}

func (c *Collection) Remove(id string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	delete(c.items, id)
}

func (c *Collection) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.items)
}

func (c *Collection) Sorted() []Shortcut {
	return Sort(c.Snapshot())
}

// Snapshot copies the current content for a later Restore.
func (c *Collection) Snapshot() []Shortcut {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	out := make([]Shortcut, 0, len(c.items))
	for _, s := range c.items {
		out = append(out, s)
	}
	return out
}

func (c *Collection) Restore(snapshot []Shortcut) {
	c.Replace(snapshot)
}
