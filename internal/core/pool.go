// Package core implements the allocator engine shared by every pointer
// flavor and by both the instanced and static facades: the free list, the
// slab list, the slab-count ceiling, and the acquire/release state machine.
package core

import (
	"fmt"
	"unsafe"

	"slabpool/internal/diag"
	"slabpool/internal/lock"
	"slabpool/internal/region"
	"slabpool/internal/slab"
)

// DefaultSlabSize is the default footprint of one slab, matching
// mxtl::SlabAllocator's DEFAULT_SLAB_ALLOCATOR_SLAB_SIZE.
const DefaultSlabSize = 16 << 10

// Pool is the core allocator engine for one object type T. The root package
// wraps it for the instanced facade; the static facade stores exactly one
// Pool per type in a process-wide registry.
type Pool[T any] struct {
	mu lock.Locker

	freeHead *slab.Cell[T]
	slabHead *slab.Slab[T]
	active   *slab.Slab[T]

	maxSlabs     int
	slabCount    int
	cellsPerSlab int
	freeCount    int

	region    region.Allocator // nil => Go heap
	leakCheck bool
	closed    bool
}

// New constructs a pool. slabSize <= 0 selects DefaultSlabSize. reg == nil
// selects the Go heap; any other region.Allocator requires T to be
// pointer-free.
func New[T any](maxSlabs int, preAllocate bool, slabSize int, noLock bool, reg region.Allocator, leakCheck bool) (*Pool[T], error) {
	if maxSlabs < 1 {
		return nil, fmt.Errorf("%w: maxSlabs=%d, want >= 1", ErrBadConfig, maxSlabs)
	}
	if slabSize <= 0 {
		slabSize = DefaultSlabSize
	}
	cellSize := int(unsafe.Sizeof(slab.Cell[T]{}))
	cellsPerSlab := slabSize / cellSize
	if cellsPerSlab < 1 {
		return nil, fmt.Errorf("%w: slab size %d too small for a %d-byte cell", ErrBadConfig, slabSize, cellSize)
	}
	if reg != nil {
		if err := region.AssertPointerFree[T](); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNotPointerFree, err)
		}
	}

	p := &Pool[T]{
		mu:           lock.New(noLock),
		maxSlabs:     maxSlabs,
		cellsPerSlab: cellsPerSlab,
		region:       reg,
		leakCheck:    leakCheck,
	}
	if preAllocate {
		if c, ok := p.acquireCell(); ok {
			p.releaseCell(c)
		}
	}
	return p, nil
}

func (p *Pool[T]) newSlab() (*slab.Slab[T], error) {
	if p.region == nil {
		return slab.NewHeapSlab[T](p.cellsPerSlab), nil
	}
	return slab.NewRegionSlab[T](p.cellsPerSlab, p.region.Alloc)
}

// acquireCell runs the full acquire ordering under the lock: free list pop,
// active-slab carve, new-slab-then-carve, failure. No T construction happens
// in here; the caller does that once the lock is released.
func (p *Pool[T]) acquireCell() (*slab.Cell[T], bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, false
	}
	if c := p.freeHead; c != nil {
		p.freeHead = c.Next()
		c.SetNext(nil)
		c.SetFreed(false)
		p.freeCount--
		return c, true
	}
	if p.active != nil {
		if c, ok := p.active.Carve(); ok {
			c.SetOwner(uintptr(unsafe.Pointer(p)))
			return c, true
		}
	}
	if p.slabCount >= p.maxSlabs {
		return nil, false
	}
	s, err := p.newSlab()
	if err != nil {
		return nil, false
	}
	s.SetNext(p.slabHead)
	p.slabHead = s
	p.active = s
	p.slabCount++
	c, ok := s.Carve()
	if !ok {
		return nil, false
	}
	c.SetOwner(uintptr(unsafe.Pointer(p)))
	return c, true
}

// releaseCell validates ownership and double-free, then pushes c onto the
// free list and clears its stored object.
func (p *Pool[T]) releaseCell(c *slab.Cell[T]) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		diag.ClosedRelease()
		return
	}
	if c.Owner() != uintptr(unsafe.Pointer(p)) {
		diag.CrossPool()
		return
	}
	if c.Freed() {
		diag.DoubleFree()
		return
	}

	var zero T
	c.Obj = zero
	c.SetFreed(true)
	c.SetNext(p.freeHead)
	p.freeHead = c
	p.freeCount++
}

// Acquire hands out a *T, running init (if non-nil) after the lock has
// already been released.
func (p *Pool[T]) Acquire(init func(*T)) (*T, bool) {
	c, ok := p.acquireCell()
	if !ok {
		return nil, false
	}
	if init != nil {
		init(&c.Obj)
	}
	return &c.Obj, true
}

// Release routes obj back to its origin pool's free list.
func (p *Pool[T]) Release(obj *T) {
	c := slab.CellFromObj(obj)
	p.releaseCell(c)
}

func (p *Pool[T]) MaxSlabs() int     { return p.maxSlabs }
func (p *Pool[T]) CellsPerSlab() int { return p.cellsPerSlab }

// Stats returns live/free cell counts plus slab accounting, all read under
// the lock.
func (p *Pool[T]) Stats() (live, free, slabs int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	total := 0
	for s := p.slabHead; s != nil; s = s.Next() {
		total += s.NextUnused()
	}
	return total - p.freeCount, p.freeCount, p.slabCount
}

// Close tears the pool down. It is a fatal invariant violation to close a
// pool with live (unreleased) cells outstanding; slab memory obtained from a
// region allocator is handed back, in slab order.
func (p *Pool[T]) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}

	total := 0
	for s := p.slabHead; s != nil; s = s.Next() {
		total += s.NextUnused()
	}
	live := total - p.freeCount
	if live != 0 && p.leakCheck {
		diag.Leak(live)
	}

	var err error
	if p.region != nil {
		for s := p.slabHead; s != nil; s = s.Next() {
			if e := p.region.Free(s.Backing()); e != nil && err == nil {
				err = e
			}
		}
	}
	p.slabHead = nil
	p.active = nil
	p.freeHead = nil
	p.freeCount = 0
	p.closed = true
	return err
}
