package registry

import "sync"

// schemaCache holds compiled schemas by name. Each name carries a generation
// that Store and Delete bump, so a fill that read the repository before a
// concurrent replace or delete cannot put a stale schema back.
type schemaCache struct {
	mu          sync.RWMutex
	entries     map[string]*compiled
	generations map[string]uint64
}

func newSchemaCache() *schemaCache {
	return &schemaCache{
		entries:     make(map[string]*compiled),
		generations: make(map[string]uint64),
	}
}

func (c *schemaCache) Load(name string) (*compiled, bool) {
	entry, _, ok := c.lookup(name)
	return entry, ok
}

// lookup also returns the generation the read happened at, which is what
// Fill expects. It is meaningful on a miss too.
func (c *schemaCache) lookup(name string) (*compiled, uint64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[name]
	return entry, c.generations[name], ok
}

func (c *schemaCache) Store(name string, entry *compiled) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generations[name]++
	c.entries[name] = entry
}

func (c *schemaCache) Delete(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generations[name]++
	delete(c.entries, name)
}

// Fill caches entry only if name is still at generation. It returns the
// schema callers should use: an entry another fill stored first, or entry.
func (c *schemaCache) Fill(name string, generation uint64, entry *compiled) *compiled {
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.entries[name]; ok {
		return existing
	}
	if c.generations[name] == generation {
		c.entries[name] = entry
	}
	return entry
}
