package guildconfig

import (
	"fmt"
	"sort"
	"sync"
)

// Configurator holds the declared entries for the bot. Entries are
// registered at plugin init time and read-only afterwards.
type Configurator struct {
	mu      sync.RWMutex
	byKey   map[string]Entry
	ordered []Entry
}

// Default is the configurator plugins register against.
var Default = NewConfigurator()

func NewConfigurator() *Configurator {
	return &Configurator{byKey: map[string]Entry{}}
}

// Register adds an entry. Duplicate keys are a configuration error.
func (c *Configurator) Register(e Entry) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.byKey[e.Key()]; exists {
		return fmt.Errorf("config entry %q already registered", e.Key())
	}
	c.byKey[e.Key()] = e
	c.ordered = append(c.ordered, e)
	return nil
}

// MustRegister registers an entry or panics; for plugin init().
func (c *Configurator) MustRegister(e Entry) {
	if err := c.Register(e); err != nil {
		panic(err)
	}
}

// Entry returns the entry registered under key.
func (c *Configurator) Entry(key string) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.byKey[key]
	return e, ok
}

// Entries returns all entries sorted by key.
func (c *Configurator) Entries() []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Entry, len(c.ordered))
	copy(out, c.ordered)
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out
}
