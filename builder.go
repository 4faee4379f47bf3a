// FILE: lixenwraith/disklog/builder.go
package disklog

import (
	"github.com/spf13/afero"
)

// Builder provides a fluent API for building sink configurations.
// It wraps a Config instance and provides chainable methods for setting values.
type Builder struct {
	cfg  *Config
	opts []Option
	err  error // Accumulate errors for deferred handling
}

// NewBuilder creates a new configuration builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build validates the configuration and starts a new Sink.
func (b *Builder) Build() (*Sink, error) {
	if b.err != nil {
		return nil, b.err
	}
	return New(b.cfg, b.opts...)
}

// Config returns a copy of the configuration built so far.
func (b *Builder) Config() (*Config, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.cfg.Clone(), nil
}

// Directory sets the log directory.
func (b *Builder) Directory(dir string) *Builder {
	b.cfg.Directory = dir
	return b
}

// Name sets the base file name.
func (b *Builder) Name(name string) *Builder {
	b.cfg.Name = name
	return b
}

// Extension sets the file extension, without the dot.
func (b *Builder) Extension(ext string) *Builder {
	b.cfg.Extension = ext
	return b
}

// MaxFileSizeBytes sets the rotation threshold.
func (b *Builder) MaxFileSizeBytes(size int64) *Builder {
	b.cfg.MaxFileSizeBytes = size
	return b
}

// MaxSizeKB sets the rotation threshold in KB. Convenience.
func (b *Builder) MaxSizeKB(size int64) *Builder {
	b.cfg.MaxFileSizeBytes = size * sizeMultiplier
	return b
}

// BufferSize bounds the queue, 0 keeps it unbounded.
func (b *Builder) BufferSize(size int64) *Builder {
	b.cfg.BufferSize = size
	return b
}

// SizeUnit selects how record length is counted ("bytes" or "chars").
func (b *Builder) SizeUnit(unit string) *Builder {
	b.cfg.SizeUnit = unit
	return b
}

// Level sets the minimum level for the formatting helpers.
func (b *Builder) Level(level int64) *Builder {
	b.cfg.Level = level
	return b
}

// LevelString sets the level from a string.
func (b *Builder) LevelString(level string) *Builder {
	if b.err != nil {
		return b
	}
	levelVal, err := Level(level)
	if err != nil {
		b.err = err
		return b
	}
	b.cfg.Level = levelVal
	return b
}

// Format sets the line format used by the formatting helpers.
func (b *Builder) Format(format string) *Builder {
	b.cfg.Format = format
	return b
}

// TimestampFormat sets the time layout used by the formatting helpers.
func (b *Builder) TimestampFormat(layout string) *Builder {
	b.cfg.TimestampFormat = layout
	return b
}

// InternalErrorsToStderr toggles diagnostics on stderr.
func (b *Builder) InternalErrorsToStderr(enable bool) *Builder {
	b.cfg.InternalErrorsToStderr = enable
	return b
}

// FileSystem replaces the OS file system.
func (b *Builder) FileSystem(fs afero.Fs) *Builder {
	b.opts = append(b.opts, WithFileSystem(fs))
	return b
}

// Example usage:
// sink, err := disklog.NewBuilder().
//
//	Directory("/var/log/app").
//	MaxSizeKB(512).
//	Format("csv").
//	Build()
//
// if err == nil {
//
//	 defer sink.Shutdown()
//	 sink.Info("app", "sink initialized")
//
// }
