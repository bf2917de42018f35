package slabpool

import (
	"errors"
	"testing"
)

type counter struct {
	N int
}

func TestNewPoolRejectsBadConfig(t *testing.T) {
	if _, err := NewPool[counter](0, false); !errors.Is(err, ErrBadConfig) {
		t.Fatalf("maxSlabs=0: err=%v, want ErrBadConfig", err)
	}
	if _, err := NewPool[counter](1, false, WithSlabSize[counter](1)); !errors.Is(err, ErrBadConfig) {
		t.Fatalf("slabSize=1: err=%v, want ErrBadConfig", err)
	}
}

func TestPoolAcquireReleaseZerosOnReuse(t *testing.T) {
	p, err := NewPool[counter](1, false)
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	c, ok := p.AcquireInit(func(c *counter) { c.N = 99 })
	if !ok {
		t.Fatalf("AcquireInit: want ok")
	}
	p.Release(c)

	again, ok := p.Acquire()
	if !ok || again != c {
		t.Fatalf("Acquire after release did not reuse the cell")
	}
	if again.N != 0 {
		t.Fatalf("N = %d, want 0 (release must clear the cell)", again.N)
	}
}

func TestPoolStatsReflectsLiveAndFree(t *testing.T) {
	p, _ := NewPool[counter](1, false)
	a, _ := p.Acquire()
	_, _ = p.Acquire()
	st := p.Stats()
	if st.Live != 2 || st.Free != 0 {
		t.Fatalf("Stats = %+v, want Live=2 Free=0", st)
	}
	p.Release(a)
	st = p.Stats()
	if st.Live != 1 || st.Free != 1 {
		t.Fatalf("Stats = %+v, want Live=1 Free=1", st)
	}
}

func TestPoolCloseWithoutLeaksSucceeds(t *testing.T) {
	p, _ := NewPool[counter](1, true)
	if err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestWithDebugLeakCheckFalseAllowsDirtyClose(t *testing.T) {
	p, err := NewPool[counter](1, false, WithDebugLeakCheck[counter](false))
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	if _, ok := p.Acquire(); !ok {
		t.Fatalf("Acquire: want ok")
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close with leak check disabled: %v", err)
	}
}

func TestWithNoLockStillWorksSingleThreaded(t *testing.T) {
	p, err := NewPool[counter](2, false, WithNoLock[counter]())
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	obj, ok := p.Acquire()
	if !ok {
		t.Fatalf("Acquire: want ok")
	}
	p.Release(obj)
}
