//go:build unix

package region

import "golang.org/x/sys/unix"

type osAllocator struct{}

// OS backs slab storage with an anonymous page mapping outside the Go heap.
var OS Allocator = osAllocator{}

func (osAllocator) Alloc(n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	return unix.Mmap(-1, 0, n, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

func (osAllocator) Free(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return unix.Munmap(b)
}
