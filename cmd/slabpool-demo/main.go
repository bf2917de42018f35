package main

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"slabpool"
)

type request struct {
	ID     uint64
	Method string
	Bytes  [64]byte
}

func main() {
	out := colorable.NewColorableStdout()
	colored := isatty.IsTerminal(os.Stdout.Fd())

	p, err := slabpool.NewPool[request](8, true)
	if err != nil {
		fmt.Fprintln(out, err)
		os.Exit(1)
	}
	defer func() {
		if err := p.Close(); err != nil {
			fmt.Fprintln(out, err)
		}
	}()

	var wg sync.WaitGroup
	issue := func(tag string, n int) {
		defer wg.Done()
		for i := 0; i < n; i++ {
			req, ok := p.AcquireInit(func(r *request) {
				r.ID = uint64(i)
				r.Method = tag
			})
			if !ok {
				printLine(out, colored, "31", fmt.Sprintf("%s: acquire %d: exhausted", tag, i))
				return
			}
			p.Release(req)
		}
	}

	wg.Add(2)
	go issue("reader", 500)
	go issue("writer", 500)
	wg.Wait()

	st := p.Stats()
	printLine(out, colored, "32", fmt.Sprintf(
		"live=%d free=%d slabs=%d/%d cellsPerSlab=%d",
		st.Live, st.Free, st.Slabs, st.MaxSlabs, st.CellsPerSlab,
	))
}

func printLine(out io.Writer, colored bool, ansiColor, msg string) {
	if colored {
		fmt.Fprintf(out, "\x1b[%sm%s\x1b[0m\n", ansiColor, msg)
		return
	}
	fmt.Fprintln(out, msg)
}
