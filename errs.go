package slabpool

import "slabpool/internal/core"

// Sentinel errors, re-exported from the internal engine so callers can use
// errors.Is without importing an internal package.
var (
	ErrBadConfig      = core.ErrBadConfig
	ErrNotPointerFree = core.ErrNotPointerFree
)
