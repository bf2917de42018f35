package slabpool

// Unique is a move-by-convention, single-owner wrapper around a cell
// dispensed from a Pool. Go cannot enforce move-only semantics at compile
// time; treat a Unique[T] as consumed once passed elsewhere, and call Close
// exactly once.
//
// There is deliberately no runtime.SetFinalizer backstop here: a cell lives
// inside its slab's backing array for the lifetime of the pool, so a
// pointer into it is always an interior pointer of that (permanently
// reachable) array, not of its own allocation. The garbage collector can
// never prove it unreachable, so a finalizer on it would never run. A
// forgotten Close is instead caught by Pool.Close's leak check.
type Unique[T any] struct {
	obj  *T
	pool *Pool[T]
}

func newUnique[T any](p *Pool[T], obj *T) Unique[T] {
	return Unique[T]{obj: obj, pool: p}
}

// Get returns the wrapped pointer. Valid until Close.
func (u *Unique[T]) Get() *T { return u.obj }

// Close releases the underlying cell. Safe to call on a zero Unique[T] or
// after a prior Close; both are no-ops.
func (u *Unique[T]) Close() {
	if u.obj == nil {
		return
	}
	obj, pool := u.obj, u.pool
	u.obj, u.pool = nil, nil
	pool.Release(obj)
}
