package slabpool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type token struct {
	Value string
}

func TestUniqueCloseReleasesCell(t *testing.T) {
	p, err := NewPool[token](1, false)
	require.NoError(t, err)

	u, ok := p.AcquireUnique()
	require.True(t, ok)
	u.Get().Value = "held"

	u.Close()
	require.Equal(t, Stats{Live: 0, Free: 1, Slabs: 1, MaxSlabs: 1, CellsPerSlab: p.CellsPerSlab()}, p.Stats())

	// Double Close must be a no-op, not a double-free.
	u.Close()
}

func TestUniqueZeroValueCloseIsNoop(t *testing.T) {
	var u Unique[token]
	u.Close()
}

func TestUniqueLeakedWithoutCloseIsCaughtAtPoolClose(t *testing.T) {
	p, err := NewPool[token](1, false)
	require.NoError(t, err)

	_, ok := p.AcquireUnique()
	require.True(t, ok)
	// u intentionally dropped without Close: there is no finalizer backstop
	// for interior slab pointers (see unique.go), so the cell stays live.

	require.Panics(t, func() { _ = p.Close() })
}
