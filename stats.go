package slabpool

// Stats is a snapshot of a pool's accounting, taken under its lock.
type Stats struct {
	Live         int
	Free         int
	Slabs        int
	MaxSlabs     int
	CellsPerSlab int
}
