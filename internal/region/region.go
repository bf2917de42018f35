// Package region supplies the "host allocator" that backs a slab's cell
// storage: the Go heap by default, or an OS page mapping for pointer-free
// types that want to carve cells outside the Go GC's managed heap.
package region

import (
	"fmt"
	"reflect"
	"sync"
)

// Allocator supplies and releases raw byte buffers for slab storage.
type Allocator interface {
	Alloc(n int) ([]byte, error)
	Free(b []byte) error
}

type heapAllocator struct{}

func (heapAllocator) Alloc(n int) ([]byte, error) { return make([]byte, n), nil }
func (heapAllocator) Free([]byte) error           { return nil }

// Heap is the default region allocator: ordinary Go-heap byte slices.
var Heap Allocator = heapAllocator{}

// pointerKinds classifies the reflect.Kind values the garbage collector
// would need to scan for if it could see into region-backed memory. Table
// lookup instead of a Kind switch so a new Kind only needs an entry here,
// not a new case arm threaded through the walk below.
var pointerKinds = map[reflect.Kind]bool{
	reflect.String:        true,
	reflect.Slice:         true,
	reflect.Map:           true,
	reflect.Pointer:       true,
	reflect.Interface:     true,
	reflect.Func:          true,
	reflect.Chan:          true,
	reflect.UnsafePointer: true,
}

var (
	pointerFreeMu    sync.Mutex
	pointerFreeCache = map[reflect.Type]error{}
)

// AssertPointerFree reports an error if T (recursively, through its array
// elements and struct fields) contains anything pointer-like. Region-backed
// slabs place Cell[T] values in memory the garbage collector never scans,
// so T itself must not hide a Go pointer the collector would otherwise
// need to trace.
//
// New calls this on every region-backed pool construction, but a type's
// shape never changes between calls, so the walk result is cached per
// reflect.Type:
// repeated NewPool[T] calls (or a static registry declaring several pools
// of the same T-adjacent types) only pay for the field walk once each.
func AssertPointerFree[T any]() error {
	t := reflect.TypeOf((*T)(nil)).Elem()

	pointerFreeMu.Lock()
	if err, ok := pointerFreeCache[t]; ok {
		pointerFreeMu.Unlock()
		return err
	}
	pointerFreeMu.Unlock()

	err := walkPointerFree(t, "")

	pointerFreeMu.Lock()
	pointerFreeCache[t] = err
	pointerFreeMu.Unlock()
	return err
}

func walkPointerFree(t reflect.Type, path string) error {
	if t == nil {
		return nil
	}
	if pointerKinds[t.Kind()] {
		if path == "" {
			return fmt.Errorf("type %s contains pointer-like data", t)
		}
		return fmt.Errorf("field %s: type %s contains pointer-like data", path, t)
	}
	switch t.Kind() {
	case reflect.Array:
		return walkPointerFree(t.Elem(), path)
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			fieldPath := f.Name
			if path != "" {
				fieldPath = path + "." + f.Name
			}
			if err := walkPointerFree(f.Type, fieldPath); err != nil {
				return err
			}
		}
		return nil
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return nil
	default:
		return fmt.Errorf("field %s: unsupported kind %s (%s)", path, t.Kind(), t)
	}
}
