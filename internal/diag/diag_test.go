package diag

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestDoubleFreePanicsAndLogs(t *testing.T) {
	var buf bytes.Buffer
	old := L
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer func() { L = old }()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("DoubleFree: want panic, got none")
		}
		if !strings.Contains(buf.String(), "double-free") {
			t.Fatalf("log output %q missing double-free kind", buf.String())
		}
	}()
	DoubleFree()
}

func TestLeakPanicsWithCount(t *testing.T) {
	var buf bytes.Buffer
	old := L
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer func() { L = old }()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("Leak: want panic, got none")
		}
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, "3") {
			t.Fatalf("panic value %v does not mention the leak count", r)
		}
	}()
	Leak(3)
}

func TestClosedReleasePanicsAndLogs(t *testing.T) {
	var buf bytes.Buffer
	old := L
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer func() { L = old }()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("ClosedRelease: want panic, got none")
		}
		if !strings.Contains(buf.String(), "release-after-close") {
			t.Fatalf("log output %q missing release-after-close kind", buf.String())
		}
	}()
	ClosedRelease()
}
