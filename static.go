package slabpool

import (
	"fmt"
	"reflect"
	"sync"
)

var (
	staticMu    sync.Mutex
	staticPools = map[reflect.Type]any{}
)

// DeclareStatic registers the one process-wide pool for T. Call at most
// once per type, typically from an init(); a second call for the same T
// panics, since Go has no compile-time way to catch the duplicate the way
// the C++ source's per-specialization static storage does.
func DeclareStatic[T any](maxSlabs int, preAllocate bool, opts ...Option[T]) {
	key := reflect.TypeFor[T]()
	staticMu.Lock()
	defer staticMu.Unlock()
	if _, exists := staticPools[key]; exists {
		panic(fmt.Sprintf("slabpool: DeclareStatic[%s] called twice", key))
	}
	p, err := NewPool[T](maxSlabs, preAllocate, opts...)
	if err != nil {
		panic(fmt.Sprintf("slabpool: DeclareStatic[%s]: %v", key, err))
	}
	staticPools[key] = p
}

func staticPool[T any]() *Pool[T] {
	key := reflect.TypeFor[T]()
	staticMu.Lock()
	p, ok := staticPools[key]
	staticMu.Unlock()
	if !ok {
		panic(fmt.Sprintf("slabpool: no static pool declared for %s; call DeclareStatic first", key))
	}
	return p.(*Pool[T])
}

// StaticAcquire is Pool[T].Acquire for the process-wide pool of T.
func StaticAcquire[T any]() (*T, bool) { return staticPool[T]().Acquire() }

// StaticAcquireInit is Pool[T].AcquireInit for the process-wide pool of T.
func StaticAcquireInit[T any](init func(*T)) (*T, bool) { return staticPool[T]().AcquireInit(init) }

// StaticRelease is Pool[T].Release for the process-wide pool of T.
func StaticRelease[T any](obj *T) { staticPool[T]().Release(obj) }

// StaticAcquireUnique is Pool[T].AcquireUnique for the process-wide pool of T.
func StaticAcquireUnique[T any]() (Unique[T], bool) { return staticPool[T]().AcquireUnique() }

// StaticAcquireShared is Pool[T].AcquireShared for the process-wide pool of T.
func StaticAcquireShared[T any]() (Shared[T], bool) { return staticPool[T]().AcquireShared() }

// StaticCellsPerSlab is Pool[T].CellsPerSlab for the process-wide pool of T.
func StaticCellsPerSlab[T any]() int { return staticPool[T]().CellsPerSlab() }

// StaticStats is Pool[T].Stats for the process-wide pool of T.
func StaticStats[T any]() Stats { return staticPool[T]().Stats() }
