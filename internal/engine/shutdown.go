package engine

import "github.com/xlab/closer"

// Shutdown governs the data thread's stop flag: the teacher's go.mod
// carries xlab/closer as a direct dependency but nothing in the teacher's
// own source imports it. §5's "cancellation and timeouts" calls for a
// thread-safe stop signal the data-thread tick loop can observe between
// ticks; closer's Bind/Close/Hold (OS-signal-aware deferred cleanup) is
// used here in place of a hand-rolled signal channel.
type Shutdown struct {
	stop chan struct{}
}

// NewShutdown registers cleanup with the process-wide closer and returns a
// handle the data thread polls once per tick.
func NewShutdown(cleanup func()) *Shutdown {
	s := &Shutdown{stop: make(chan struct{})}
	closer.Bind(func() {
		close(s.stop)
		if cleanup != nil {
			cleanup()
		}
	})
	return s
}

// Stopped reports whether shutdown has been requested, without blocking.
func (s *Shutdown) Stopped() bool {
	select {
	case <-s.stop:
		return true
	default:
		return false
	}
}

// Hold blocks the calling goroutine until a shutdown signal (SIGINT/SIGTERM,
// or an explicit Close) arrives, then runs every bound cleanup.
func Hold() { closer.Hold() }

// Close triggers shutdown explicitly, e.g. from a "quit" UI action rather
// than an OS signal.
func Close() { closer.Close() }
