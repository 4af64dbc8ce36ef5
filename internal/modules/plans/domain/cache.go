package domain

import "sync"

// Cache is the in-memory working set of study plans shared by every view.
// New plans go to the front so the most recent work is listed first.
type Cache struct {
	mu    sync.RWMutex
	plans []Summary
}

func NewCache() *Cache {
	return &Cache{}
}

func (c *Cache) ReplaceAll(plans []Summary) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.plans = append([]Summary(nil), plans...)
}

func (c *Cache) Items() []Summary {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]Summary(nil), c.plans...)
}

func (c *Cache) Get(id string) (Summary, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, plan := range c.plans {
		if plan.ID == id {
			return plan, true
		}
	}
	return Summary{}, false
}

func (c *Cache) Add(plan Summary) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.plans = append([]Summary{plan}, c.plans...)
}

// Remove takes the plan out of the cache and reports where it sat, so a
// failed delete can put it back in the same position.
func (c *Cache) Remove(id string) (Summary, int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, plan := range c.plans {
		if plan.ID == id {
			c.plans = append(c.plans[:i:i], c.plans[i+1:]...)
			return plan, i, true
		}
	}
	return Summary{}, 0, false
}

func (c *Cache) Insert(index int, plan Summary) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 {
		index = 0
	}
	if index > len(c.plans) {
		index = len(c.plans)
	}
	c.plans = append(c.plans[:index:index], append([]Summary{plan}, c.plans[index:]...)...)
}

func (c *Cache) Update(id string, patch Patch) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.plans {
		if c.plans[i].ID != id {
			continue
		}
		if patch.Name != nil {
			c.plans[i].Name = *patch.Name
		}
		if patch.IsActive != nil {
			c.plans[i].IsActive = *patch.IsActive
		}
		if patch.LastModified != nil {
			c.plans[i].LastModified = *patch.LastModified
		}
		return true
	}
	return false
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.plans)
}
