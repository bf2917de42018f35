package core

import "errors"

var (
	// ErrBadConfig is returned by New when the requested slab size cannot
	// hold at least one cell, or maxSlabs is less than one.
	ErrBadConfig = errors.New("slabpool: invalid pool configuration")

	// ErrNotPointerFree is returned by New when a region allocator is
	// requested for a type that is not safe to place in GC-invisible memory.
	ErrNotPointerFree = errors.New("slabpool: region-backed pool requires a pointer-free type")
)
