package prune

import (
	"io"
	"sync"

	"github.com/ehrlich-b/cube/internal/coord"
	"github.com/ehrlich-b/cube/internal/moveset"
)

// Registry lazily builds or loads a pruning table per coordinate family,
// caching the result behind a read-write lock the same way a generated-
// permutation cache would guard its entries: a cheap read lock for the
// common cache-hit path, an exclusive lock only while building or loading
// a missing entry.
type Registry struct {
	mu     sync.RWMutex
	tables map[FamilyID]*Table
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{tables: make(map[FamilyID]*Table)}
}

// Built reports how many families have a cached table, for status reporting.
func (r *Registry) Built() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tables)
}

// Get returns the cached table for family, if any.
func (r *Registry) Get(family FamilyID) (*Table, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tables[family]
	return t, ok
}

// GetOrBuild returns the cached table for family, building it from c and ms
// if this is the first request for that family.
func (r *Registry) GetOrBuild(family FamilyID, c coord.Coordinate, ms moveset.MoveSet) *Table {
	if t, ok := r.Get(family); ok {
		return t
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.tables[family]; ok {
		return t
	}
	t := Build(c, ms)
	r.tables[family] = t
	return t
}

// GetOrLoad returns the cached table for family, reading it from open with
// Load if this is the first request for that family.
func (r *Registry) GetOrLoad(family FamilyID, open func() (io.ReadCloser, error)) (*Table, error) {
	if t, ok := r.Get(family); ok {
		return t, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.tables[family]; ok {
		return t, nil
	}

	rc, err := open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	t, err := Load(rc, family)
	if err != nil {
		return nil, err
	}
	r.tables[family] = t
	return t, nil
}
