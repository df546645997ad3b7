package wm

import (
	"github.com/BurntSushi/xgb/xproto"
)

// Geometry describes a window's position and size in screen pixel
// coordinates.
type Geometry struct {
	X      int
	Y      int
	Width  int
	Height int
}

// fallbackGeometry is substituted when the server cannot report a
// window's geometry. It is never cached, so a later successful query is
// not shadowed by a stale fallback.
var fallbackGeometry = Geometry{X: 0, Y: 0, Width: 100, Height: 100}

// GeometryQueryFunc fetches a window's current geometry from the server.
type GeometryQueryFunc func(xproto.Window) (Geometry, error)

// GeometryCache memoizes the last known geometry per window to avoid
// a server round trip on every pointer motion. Entries are advisory:
// any operation that changes a window's geometry evicts its entry so
// the next read re-synchronizes with the server.
type GeometryCache struct {
	query   GeometryQueryFunc
	entries map[xproto.Window]Geometry
}

// NewGeometryCache creates a cache backed by query.
func NewGeometryCache(query GeometryQueryFunc) *GeometryCache {
	return &GeometryCache{
		query:   query,
		entries: make(map[xproto.Window]Geometry),
	}
}

// Get returns the cached geometry for win, querying and caching it on a
// miss. A failed query yields the fallback geometry without caching it.
func (c *GeometryCache) Get(win xproto.Window) Geometry {
	if g, ok := c.entries[win]; ok {
		return g
	}
	g, err := c.query(win)
	if err != nil {
		return fallbackGeometry
	}
	c.entries[win] = g
	return g
}

// Invalidate drops the cached entry for win; safe to call when absent.
func (c *GeometryCache) Invalidate(win xproto.Window) {
	delete(c.entries, win)
}
