/*
Package slabpool implements a typed slab allocator: a fixed-class object
pool that carves page-sized slabs into uniformly sized, aligned cells and
dispenses them as constructed *T values, recycling freed cells through an
intrusive free list.

Use NewPool for an instanced pool with its own quota:

	p, err := slabpool.NewPool[Widget](64, true)
	w, ok := p.Acquire()
	...
	p.Release(w)

Use DeclareStatic (typically from an init) plus the package-level
StaticAcquire/StaticRelease functions for a process-wide pool keyed by type,
when no single owner should hold the pool value.

Acquire/Release deal in raw *T. AcquireUnique/AcquireShared wrap the same
cell in a move-by-convention owner or an atomically reference-counted
handle; pick whichever ownership discipline the call site needs.

Pool exhaustion is reported as a (nil, false) return, never an error or a
panic. Misuse — releasing a cell twice, releasing it through a different
pool than the one that carved it, or closing a pool with live cells still
outstanding — is a programmer error and is fatal.
*/
package slabpool
