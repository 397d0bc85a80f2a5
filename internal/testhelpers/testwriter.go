package testhelpers

import (
	"io"
	"strings"
	"sync/atomic"
	"testing"
)

// Writer implements io.Writer and writes to t.Log, so logs only show up for failed tests.
type Writer struct {
	t    testing.TB
	done atomic.Bool
}

// NewWriter creates a Writer that logs through t until the test finishes.
func NewWriter(t testing.TB) io.Writer {
	w := &Writer{
		t:    t,
		done: atomic.Bool{},
	}
	t.Cleanup(func() {
		w.done.Store(true)
	})
	return w
}

// Write logs p without its trailing newline. Writing after the test has finished panics, because it means
// a goroutine, such as a session builder, outlived the test that started it.
func (w *Writer) Write(p []byte) (int, error) {
	if w.done.Load() {
		panic("testwriter: write after test completion, a goroutine outlived its test")
	}
	if output := strings.TrimSuffix(string(p), "\n"); output != "" {
		w.t.Log(output)
	}
	return len(p), nil
}
