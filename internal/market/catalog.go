package market

import (
	"context"
	"strings"
	"sync/atomic"
)

// Catalog maps lowercased item names to their lowercased types. Reload
// builds a complete replacement map and publishes it with a single
// pointer swap, so a lookup racing a reload sees either the old or the
// new directory, never a partially filled one.
type Catalog struct {
	client  *Client
	entries atomic.Pointer[map[string]string]
}

func NewCatalog(client *Client) *Catalog {
	c := &Catalog{client: client}
	empty := map[string]string{}
	c.entries.Store(&empty)
	return c
}

// Reload replaces the whole directory from upstream. On any error the
// previously published directory stays in place.
func (c *Catalog) Reload(ctx context.Context) error {
	items, err := c.client.Items(ctx)
	if err != nil {
		return err
	}

	next := make(map[string]string, len(items))
	for _, it := range items {
		next[strings.ToLower(it.Name)] = strings.ToLower(it.Type)
	}
	c.entries.Store(&next)
	return nil
}

// Lookup resolves an item name to its type, case-insensitively. Unknown
// items are an expected condition, reported through ok.
func (c *Catalog) Lookup(name string) (itemType string, ok bool) {
	itemType, ok = (*c.entries.Load())[strings.ToLower(name)]
	return itemType, ok
}

// Len reports how many items are currently loaded.
func (c *Catalog) Len() int {
	return len(*c.entries.Load())
}
