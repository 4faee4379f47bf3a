// FILE: lixenwraith/disklog/record.go
package disklog

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Record is a single submitted log entry
type Record struct {
	Level   int64
	Tag     string
	Message string
}

// flushBarrier travels through the queue like a record and is confirmed by
// the worker once everything ahead of it has been written
type flushBarrier struct {
	confirm chan struct{}
}

// sendRecord handles safe sending to the queue
func (s *Sink) sendRecord(record Record) (err error) {
	defer func() {
		if r := recover(); r != nil { // Catch panic on send to closed queue
			s.state.RecordsDropped.Add(1)
			err = ErrClosed
		}
	}()

	if s.config.BufferSize == 0 {
		// The unbounded queue accepts as fast as its buffering goroutine runs
		s.queue.In() <- record
		s.state.RecordsSubmitted.Add(1)
		return nil
	}

	// Non-blocking send
	select {
	case s.queue.In() <- record:
		s.state.RecordsSubmitted.Add(1)
	default:
		s.state.RecordsDropped.Add(1)
	}
	return nil
}

// sendBarrier enqueues a flush barrier, waiting for room in a bounded queue
func (s *Sink) sendBarrier(barrier flushBarrier, expired <-chan time.Time) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = ErrClosed
		}
	}()

	select {
	case s.queue.In() <- barrier:
		return nil
	case <-expired:
		return fmtErrorf("failed to send flush request to worker (queue full)")
	}
}

// internalLog handles writing internal sink diagnostics to stderr, if enabled.
func (s *Sink) internalLog(format string, args ...any) {
	if !s.config.InternalErrorsToStderr {
		return
	}

	// Ensure consistent "disklog: " prefix
	if !strings.HasPrefix(format, "disklog: ") {
		format = "disklog: " + format
	}

	fmt.Fprintf(os.Stderr, format, args...)
}
