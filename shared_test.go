package slabpool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type ref struct {
	Tag int
}

func TestSharedCloneAndRelease(t *testing.T) {
	p, err := NewPool[ref](1, false)
	require.NoError(t, err)

	s, ok := p.AcquireShared()
	require.True(t, ok)
	s.Get().Tag = 1

	a := s.Clone()
	b := s.Clone()
	require.Equal(t, 1, a.Get().Tag)
	require.Equal(t, 1, b.Get().Tag)

	a.Release()
	require.Equal(t, 0, p.Stats().Free, "still two refs outstanding")

	b.Release()
	require.Equal(t, 0, p.Stats().Free, "still one ref outstanding")

	s.Release()
	require.Equal(t, 1, p.Stats().Free, "last ref dropped, cell returned")
}

func TestSharedReleasedCellIsReusable(t *testing.T) {
	p, err := NewPool[ref](1, false)
	require.NoError(t, err)

	s, ok := p.AcquireShared()
	require.True(t, ok)
	original := s.Get()
	s.Release()

	again, ok := p.Acquire()
	require.True(t, ok)
	require.Equal(t, original, again)
}
