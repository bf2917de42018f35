// Package slab implements the bump-carved storage unit of a typed slab
// allocator: a cell holds either a live object or a free-list link, and a
// slab is a fixed-size run of cells plus the bump index of the first
// never-used one.
package slab

import "unsafe"

// Cell holds exactly one T while live, or a free-list link while free. owner
// identifies the pool whose slab carved it; it is opaque here (a uintptr,
// not a typed *pool[T]) for two reasons: this package never needs to import
// the core allocator package that would otherwise own that type, and a
// region-backed Cell[T] lives in memory the garbage collector never scans,
// so it must never carry a real Go pointer to the (GC-managed) pool — that
// would hide a live reference from the collector and let the pool get
// collected out from under a cell that still names it. A uintptr is only
// ever compared for equality by the owner, never dereferenced.
type Cell[T any] struct {
	owner uintptr
	next  *Cell[T]
	freed bool

	Obj T
}

func (c *Cell[T]) Owner() uintptr     { return c.owner }
func (c *Cell[T]) SetOwner(p uintptr) { c.owner = p }
func (c *Cell[T]) Next() *Cell[T]     { return c.next }
func (c *Cell[T]) SetNext(n *Cell[T]) { c.next = n }
func (c *Cell[T]) Freed() bool        { return c.freed }
func (c *Cell[T]) SetFreed(v bool)    { c.freed = v }

// CellFromObj recovers the Cell enclosing obj, given that obj was previously
// handed out as &cell.Obj. Undefined if obj did not come from a Cell[T].
func CellFromObj[T any](obj *T) *Cell[T] {
	off := unsafe.Offsetof(Cell[T]{}.Obj)
	return (*Cell[T])(unsafe.Pointer(uintptr(unsafe.Pointer(obj)) - off))
}

// Slab is a bump-indexed run of cells plus an intrusive link to the
// next-older slab. backing is non-nil only when the cells slice is a view
// over memory obtained from a region allocator, so Close can hand it back.
type Slab[T any] struct {
	cells      []Cell[T]
	nextUnused int
	next       *Slab[T]
	backing    []byte
}

// NewHeapSlab allocates a Go-heap-backed slab of n cells.
func NewHeapSlab[T any](n int) *Slab[T] {
	return &Slab[T]{cells: make([]Cell[T], n)}
}

// NewRegionSlab reinterprets a byte buffer obtained from alloc as n cells.
// Cell[T]'s own next field is the only Go pointer involved (owner is a
// uintptr for exactly this reason), and it only ever points at another cell
// of the same pool, whose slabs all come from the same region allocator, so
// the free list may link cells across slabs but never into a Go-heap
// []Cell[T]. The caller
// is responsible for ensuring T is likewise safe to place in memory the
// garbage collector does not scan.
func NewRegionSlab[T any](n int, alloc func(int) ([]byte, error)) (*Slab[T], error) {
	cellSize := int(unsafe.Sizeof(Cell[T]{}))
	buf, err := alloc(n * cellSize)
	if err != nil {
		return nil, err
	}
	var cells []Cell[T]
	if n > 0 {
		cells = unsafe.Slice((*Cell[T])(unsafe.Pointer(&buf[0])), n)
	}
	return &Slab[T]{cells: cells, backing: buf}, nil
}

// Carve returns the address of cell nextUnused and advances the bump index.
// O(1); returns false once every cell in the slab has been carved at least
// once.
func (s *Slab[T]) Carve() (*Cell[T], bool) {
	if s.nextUnused >= len(s.cells) {
		return nil, false
	}
	c := &s.cells[s.nextUnused]
	s.nextUnused++
	return c, true
}

func (s *Slab[T]) CellCount() int     { return len(s.cells) }
func (s *Slab[T]) NextUnused() int    { return s.nextUnused }
func (s *Slab[T]) Next() *Slab[T]     { return s.next }
func (s *Slab[T]) SetNext(n *Slab[T]) { s.next = n }
func (s *Slab[T]) Backing() []byte    { return s.backing }
