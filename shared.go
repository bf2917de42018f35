package slabpool

import "sync/atomic"

type sharedBox[T any] struct {
	obj   *T
	pool  *Pool[T]
	count atomic.Int32
}

// Shared wraps a cell dispensed from a Pool in an atomically
// reference-counted handle. The cell is released exactly once, when the
// count returned to zero by Release (or one past the last Clone) drops.
type Shared[T any] struct {
	box *sharedBox[T]
}

func newShared[T any](p *Pool[T], obj *T) Shared[T] {
	b := &sharedBox[T]{obj: obj, pool: p}
	b.count.Store(1)
	return Shared[T]{box: b}
}

// Get returns the wrapped pointer. Valid as long as at least one clone is
// outstanding.
func (s Shared[T]) Get() *T { return s.box.obj }

// Clone increments the reference count and returns a new handle sharing the
// same underlying cell.
func (s Shared[T]) Clone() Shared[T] {
	s.box.count.Add(1)
	return s
}

// Release decrements the reference count, releasing the underlying cell
// when it reaches zero.
func (s Shared[T]) Release() {
	if s.box.count.Add(-1) == 0 {
		s.box.pool.Release(s.box.obj)
	}
}
