// FILE: interface.go
package disklog

import (
	"time"

	"github.com/lixenwraith/disklog/formatter"
)

// Formatting helpers. They render args into one line using the configured
// format and hand it to Submit, records below the configured level are skipped.

// Log formats args at the given level and submits the line.
func (s *Sink) Log(level int64, tag string, args ...any) error {
	if level < s.config.Level {
		return nil
	}

	f := s.formatters.Get().(*formatter.Formatter)
	line := string(f.Format(time.Now(), level, tag, args))
	s.formatters.Put(f)

	return s.Submit(level, tag, line)
}

// Debug logs a message at debug level.
func (s *Sink) Debug(tag string, args ...any) error {
	return s.Log(LevelDebug, tag, args...)
}

// Info logs a message at info level.
func (s *Sink) Info(tag string, args ...any) error {
	return s.Log(LevelInfo, tag, args...)
}

// Warn logs a message at warning level.
func (s *Sink) Warn(tag string, args ...any) error {
	return s.Log(LevelWarn, tag, args...)
}

// Error logs a message at error level.
func (s *Sink) Error(tag string, args ...any) error {
	return s.Log(LevelError, tag, args...)
}
