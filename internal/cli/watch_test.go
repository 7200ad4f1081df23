package cli

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-quicktest/qt"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
)

type result struct {
	path string
	err  error
}

// waitFor receives results until cond returns true.
func waitFor(t *testing.T, results <-chan result, cond func(result) bool) {
	t.Helper()
	timeout := time.After(10 * time.Second)
	for {
		select {
		case r := <-results:
			if cond(r) {
				return
			}
		case <-timeout:
			t.Fatalf("timed out waiting for generation")
		}
	}
}

func TestWatcher(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	decls := filepath.Join(dir, "decls.yaml")
	out := DefaultOutput(decls)
	writeFile(t, decls, shortDecls)

	logger := zaptest.NewLogger(t)
	results := make(chan result, 100)
	w := &Watcher{
		Files:    []string{decls},
		Debounce: 10 * time.Millisecond,
		Logger:   logger,
		Generate: func(path string) error {
			return generate(path, "", logger)
		},
		Generated: func(path string, err error) {
			results <- result{path, err}
		},
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() {
		done <- w.Run(ctx)
	}()

	// The files are generated when the watcher starts.
	waitFor(t, results, func(r result) bool {
		qt.Check(t, qt.Equals(r.path, decls))
		return r.err == nil
	})
	qt.Assert(t, qt.StringContains(readFile(t, out), "type BytesShort = tuple.T2[uint8, uint8]\n"))

	// Keeping every element changes the filtered type.
	writeFile(t, decls, strings.Replace(shortDecls, "include: [uint8]\n  exclude: [uint16]", "include: [uint8, uint16]", 1))
	waitFor(t, results, func(r result) bool {
		return r.err == nil && strings.Contains(readFile(t, out), "tuple.T3[uint8, uint8, uint16]")
	})

	// A failure is reported and leaves the old output in place.
	writeFile(t, decls, strings.Replace(shortDecls, "apply: [Short]", "apply: [Missing]", 1))
	waitFor(t, results, func(r result) bool {
		return r.err != nil
	})
	qt.Assert(t, qt.StringContains(readFile(t, out), "tuple.T3[uint8, uint8, uint16]"))

	cancel()
	qt.Assert(t, qt.IsNil(<-done))
}

func TestWatcherBadDir(t *testing.T) {
	defer goleak.VerifyNone(t)
	w := &Watcher{
		Files:    []string{filepath.Join(t.TempDir(), "missing", "decls.cue")},
		Generate: func(string) error { return nil },
	}
	err := w.Run(context.Background())
	qt.Assert(t, qt.ErrorMatches(err, `cannot watch .*: .*`))
}
