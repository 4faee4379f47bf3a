// FILE: lixenwraith/disklog/sink.go
package disklog

import (
	"fmt"
	"sync"
	"time"

	"github.com/eapache/channels"
	"github.com/spf13/afero"

	"github.com/lixenwraith/disklog/formatter"
	"github.com/lixenwraith/disklog/sanitizer"
)

// Sink accepts log records from any goroutine and appends them, in
// submission order, to rotating files written by a single worker goroutine
type Sink struct {
	config *Config
	fs     afero.Fs
	state  State

	queue      channels.Channel
	done       chan struct{}
	flushMutex sync.Mutex // Protect concurrent Flush calls

	formatters sync.Pool // stores *formatter.Formatter
}

// Option customizes a Sink at construction
type Option func(*Sink)

// WithFileSystem replaces the OS file system the worker writes to
func WithFileSystem(fs afero.Fs) Option {
	return func(s *Sink) {
		if fs != nil {
			s.fs = fs
		}
	}
}

// New validates the configuration and starts the worker goroutine.
// The configuration is copied and cannot be changed afterwards.
func New(cfg *Config, opts ...Option) (*Sink, error) {
	if cfg == nil {
		return nil, fmtErrorf("configuration cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmtErrorf("invalid configuration: %w", err)
	}

	s := &Sink{
		config: cfg.Clone(),
		fs:     afero.NewOsFs(),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.config.BufferSize > 0 {
		s.queue = channels.NewNativeChannel(channels.BufferCap(s.config.BufferSize))
	} else {
		s.queue = channels.NewInfiniteChannel()
	}

	c := s.config
	s.formatters.New = func() any {
		return formatter.New(sanitizer.New().Policy(sanitizer.PolicyPreset(c.Format))).
			Type(c.Format).
			TimestampFormat(c.TimestampFormat)
	}

	s.state.CurrentFile.Store("")
	go s.processRecords(newRotatingWriter(s.fs, s.config, s.internalLog))

	return s, nil
}

// GetConfig returns a copy of the configuration
func (s *Sink) GetConfig() *Config {
	return s.config.Clone()
}

// Submit enqueues a pre-formatted record and returns without waiting for I/O.
// The message is written verbatim, no separator is added.
// An empty message is rejected with ErrInvalidArgument and nothing is enqueued.
func (s *Sink) Submit(level int64, tag, message string) error {
	if message == "" {
		return fmt.Errorf("%w: message cannot be empty", ErrInvalidArgument)
	}
	if s.state.ShutdownCalled.Load() {
		s.state.RecordsDropped.Add(1)
		return ErrClosed
	}

	return s.sendRecord(Record{Level: level, Tag: tag, Message: message})
}

// Flush blocks until every record submitted before the call has been written,
// then syncs the open file
func (s *Sink) Flush(timeout time.Duration) error {
	s.flushMutex.Lock()
	defer s.flushMutex.Unlock()

	if s.state.ShutdownCalled.Load() {
		return ErrClosed
	}

	if timeout < minWaitTime {
		timeout = minWaitTime
	}

	barrier := flushBarrier{confirm: make(chan struct{})}
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	if err := s.sendBarrier(barrier, timer.C); err != nil {
		return err
	}

	select {
	case <-barrier.confirm:
		return nil
	case <-timer.C:
		return fmtErrorf("timeout waiting for flush confirmation (%v)", timeout)
	}
}

// Shutdown stops accepting records, waits for the queue to drain and the
// file to close. If no timeout is provided, a default of 2 seconds is used
func (s *Sink) Shutdown(timeout ...time.Duration) error {
	if !s.state.ShutdownCalled.CompareAndSwap(false, true) {
		return nil
	}

	effectiveTimeout := defaultShutdownTimeout
	if len(timeout) > 0 {
		effectiveTimeout = timeout[0]
	}

	s.queue.Close()

	select {
	case <-s.done:
		return nil
	case <-time.After(effectiveTimeout):
		return fmtErrorf("worker did not exit within timeout (%v), %d records pending",
			effectiveTimeout, s.queue.Len())
	}
}
