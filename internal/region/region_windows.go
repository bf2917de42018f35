//go:build windows

package region

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

type osAllocator struct{}

// OS backs slab storage with an anonymous page mapping outside the Go heap.
var OS Allocator = osAllocator{}

func (osAllocator) Alloc(n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	addr, err := windows.VirtualAlloc(0, uintptr(n), windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), n), nil
}

func (osAllocator) Free(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return windows.VirtualFree(uintptr(unsafe.Pointer(&b[0])), 0, windows.MEM_RELEASE)
}
