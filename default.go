// --- File: default.go ---
package disklog

import (
	"sync"
	"time"
)

// Global instance for package-level functions
var (
	defaultMu   sync.RWMutex
	defaultSink *Sink
)

// Default package-level functions that delegate to the default sink

// Init starts the default sink with the provided configuration, shutting down
// any previous default sink first
func Init(cfg *Config) error {
	sink, err := New(cfg)
	if err != nil {
		return err
	}

	defaultMu.Lock()
	prev := defaultSink
	defaultSink = sink
	defaultMu.Unlock()

	if prev != nil {
		return prev.Shutdown()
	}
	return nil
}

// InitWithDefaults starts the default sink with built-in defaults and optional overrides
func InitWithDefaults(overrides ...string) error {
	cfg := DefaultConfig()
	if err := cfg.ApplyOverride(overrides...); err != nil {
		return err
	}
	return Init(cfg)
}

// Default returns the default sink, or nil before Init
func Default() *Sink {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultSink
}

// Submit enqueues a pre-formatted record on the default sink
func Submit(level int64, tag, message string) error {
	sink := Default()
	if sink == nil {
		return ErrClosed
	}
	return sink.Submit(level, tag, message)
}

// Flush waits for the default sink to write everything submitted so far
func Flush(timeout time.Duration) error {
	sink := Default()
	if sink == nil {
		return ErrClosed
	}
	return sink.Flush(timeout)
}

// Shutdown closes the default sink. A later Init starts a new one.
func Shutdown(timeout ...time.Duration) error {
	defaultMu.Lock()
	sink := defaultSink
	defaultSink = nil
	defaultMu.Unlock()

	if sink == nil {
		return nil
	}
	return sink.Shutdown(timeout...)
}

// Debug logs a message at debug level
func Debug(tag string, args ...any) {
	if sink := Default(); sink != nil {
		_ = sink.Debug(tag, args...)
	}
}

// Info logs a message at info level
func Info(tag string, args ...any) {
	if sink := Default(); sink != nil {
		_ = sink.Info(tag, args...)
	}
}

// Warn logs a message at warning level
func Warn(tag string, args ...any) {
	if sink := Default(); sink != nil {
		_ = sink.Warn(tag, args...)
	}
}

// Error logs a message at error level
func Error(tag string, args ...any) {
	if sink := Default(); sink != nil {
		_ = sink.Error(tag, args...)
	}
}
