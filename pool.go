package slabpool

import "slabpool/internal/core"

// Pool is an instanced, per-value typed slab allocator for T: its own slab
// list, free list, and slab-count quota, independent of any other Pool[T].
type Pool[T any] struct {
	core *core.Pool[T]
}

// NewPool constructs a pool that will carve at most maxSlabs slabs, each
// holding CellsPerSlab() cells of T. preAllocate eagerly creates the first
// slab so the first real Acquire call never pays slab-creation cost.
func NewPool[T any](maxSlabs int, preAllocate bool, opts ...Option[T]) (*Pool[T], error) {
	cfg := config[T]{slabSize: core.DefaultSlabSize, leakCheck: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	c, err := core.New[T](maxSlabs, preAllocate, cfg.slabSize, cfg.noLock, cfg.region, cfg.leakCheck)
	if err != nil {
		return nil, err
	}
	return &Pool[T]{core: c}, nil
}

// Acquire dispenses a zero-valued *T from the free list or a freshly carved
// cell, or reports exhaustion via (nil, false).
func (p *Pool[T]) Acquire() (*T, bool) {
	return p.core.Acquire(nil)
}

// AcquireInit is Acquire followed by init(obj), with init running after the
// pool's internal lock has already been released.
func (p *Pool[T]) AcquireInit(init func(*T)) (*T, bool) {
	return p.core.Acquire(init)
}

// Release routes obj back to the free list of the pool that carved it. It is
// a fatal error to release obj through any Pool other than that one, or to
// release the same obj twice.
func (p *Pool[T]) Release(obj *T) {
	p.core.Release(obj)
}

// AcquireUnique is Acquire wrapped in a move-by-convention owner whose
// Close releases the cell.
func (p *Pool[T]) AcquireUnique() (Unique[T], bool) {
	obj, ok := p.Acquire()
	if !ok {
		return Unique[T]{}, false
	}
	return newUnique(p, obj), true
}

// AcquireShared is Acquire wrapped in an atomically reference-counted
// handle; the cell is released when the last clone is released.
func (p *Pool[T]) AcquireShared() (Shared[T], bool) {
	obj, ok := p.Acquire()
	if !ok {
		return Shared[T]{}, false
	}
	return newShared(p, obj), true
}

func (p *Pool[T]) MaxSlabs() int     { return p.core.MaxSlabs() }
func (p *Pool[T]) CellsPerSlab() int { return p.core.CellsPerSlab() }

// Stats reports current live/free cell and slab counts.
func (p *Pool[T]) Stats() Stats {
	live, free, slabs := p.core.Stats()
	return Stats{
		Live:         live,
		Free:         free,
		Slabs:        slabs,
		MaxSlabs:     p.core.MaxSlabs(),
		CellsPerSlab: p.core.CellsPerSlab(),
	}
}

// Close tears the pool down, releasing any region-backed slab storage. It is
// a fatal error to Close a pool with live cells still outstanding, unless
// WithDebugLeakCheck(false) was used at construction.
func (p *Pool[T]) Close() error {
	return p.core.Close()
}
