package tool

import (
	"sort"
	"strings"
	"sync"

	"github.com/reagentic/reagent/providers/ai"
)

// Catalog is a thread-safe registry of tools keyed by lowercase name.
// Lookups are case-insensitive so a model asking for "Calculator" still
// reaches the tool registered as "calculator".
type Catalog struct {
	mu    sync.RWMutex
	tools map[string]GenericTool
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		tools: make(map[string]GenericTool),
	}
}

// NewCatalogWithTools creates a catalog pre-populated with the given tools.
func NewCatalogWithTools(tools ...GenericTool) *Catalog {
	catalog := NewCatalog()
	catalog.AddTools(tools...)
	return catalog
}

// AddTools registers tools under their ToolInfo().Name, lowercased.
// A tool with the same name replaces the existing entry.
func (c *Catalog) AddTools(tools ...GenericTool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range tools {
		c.tools[strings.ToLower(t.ToolInfo().Name)] = t
	}
}

// Get retrieves a tool by name, case-insensitively.
func (c *Catalog) Get(name string) (GenericTool, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.tools[strings.ToLower(name)]
	return t, ok
}

// Has reports whether a tool with the given name exists.
func (c *Catalog) Has(name string) bool {
	_, ok := c.Get(name)
	return ok
}

// Remove deletes a tool by name. Returns true if it was present.
func (c *Catalog) Remove(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := strings.ToLower(name)
	if _, ok := c.tools[key]; ok {
		delete(c.tools, key)
		return true
	}
	return false
}

// Size returns the number of registered tools.
func (c *Catalog) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.tools)
}

// Tools returns a copy of the internal tool map. The returned map can be
// modified without affecting the catalog.
func (c *Catalog) Tools() map[string]GenericTool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]GenericTool, len(c.tools))
	for name, t := range c.tools {
		out[name] = t
	}
	return out
}

// Descriptions returns the ToolInfo of every registered tool, sorted by name
// so requests advertise tools in a stable order.
func (c *Catalog) Descriptions() []ai.ToolDescription {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]ai.ToolDescription, 0, len(c.tools))
	for _, t := range c.tools {
		out = append(out, t.ToolInfo())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
