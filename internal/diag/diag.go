// Package diag reports debug-mode invariant violations: double free,
// cross-pool release, release after the pool was closed, and teardown with
// live cells still outstanding. These are programmer errors, not
// exhaustion, so they log a structured record with a captured call stack
// and then panic rather than return an error.
package diag

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/go-stack/stack"
)

// L is the package logger. It is silent by default; call SetLogger to point
// it somewhere.
var L = slog.New(slog.NewTextHandler(io.Discard, nil))

// SetLogger replaces the package logger.
func SetLogger(l *slog.Logger) {
	if l != nil {
		L = l
	}
}

func fatal(kind, msg string) {
	trace := stack.Trace().TrimRuntime()
	L.Error(msg, "kind", kind, "stack", trace.String())
	panic(fmt.Sprintf("slabpool: %s: %s", kind, msg))
}

// DoubleFree reports a cell being released a second time.
func DoubleFree() {
	fatal("double-free", "cell released twice")
}

// CrossPool reports a cell being released through a pool other than the one
// whose slab carved it.
func CrossPool() {
	fatal("cross-pool-release", "cell released through a different pool than the one that carved it")
}

// Leak reports n cells still live when a pool was closed.
func Leak(n int) {
	fatal("leak", fmt.Sprintf("%d object(s) still live at pool close", n))
}

// ClosedRelease reports a cell being released through a pool that has
// already been closed, and whose slab storage may already be unmapped.
func ClosedRelease() {
	fatal("release-after-close", "cell released through a pool that has already been closed")
}
