//go:build !unix && !windows

package region

type osAllocator struct{}

// OS falls back to the Go heap on platforms without an anonymous page
// mapping primitive wired up here.
var OS Allocator = osAllocator{}

func (osAllocator) Alloc(n int) ([]byte, error) { return make([]byte, n), nil }
func (osAllocator) Free([]byte) error           { return nil }
