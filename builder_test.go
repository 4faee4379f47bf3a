// FILE: lixenwraith/disklog/builder_test.go
package disklog

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Build(t *testing.T) {
	t.Run("successful build returns configured sink", func(t *testing.T) {
		tmpDir := t.TempDir()

		sink, err := NewBuilder().
			Directory(tmpDir).
			Name("app").
			Extension("log").
			LevelString("info").
			Format("txt").
			TimestampFormat(time.RFC3339).
			BufferSize(2048).
			MaxSizeKB(10).
			SizeUnit(SizeUnitChars).
			InternalErrorsToStderr(false).
			Build()

		if sink != nil {
			defer sink.Shutdown()
		}

		require.NoError(t, err, "Builder.Build() should not return an error on valid config")
		require.NotNil(t, sink, "Builder.Build() should return a non-nil sink")

		cfg := sink.GetConfig()
		require.NotNil(t, cfg)

		assert.Equal(t, tmpDir, cfg.Directory)
		assert.Equal(t, "app", cfg.Name)
		assert.Equal(t, "log", cfg.Extension)
		assert.Equal(t, LevelInfo, cfg.Level)
		assert.Equal(t, "txt", cfg.Format)
		assert.Equal(t, time.RFC3339, cfg.TimestampFormat)
		assert.Equal(t, int64(2048), cfg.BufferSize)
		assert.Equal(t, int64(10*sizeMultiplier), cfg.MaxFileSizeBytes)
		assert.Equal(t, SizeUnitChars, cfg.SizeUnit)
		assert.False(t, cfg.InternalErrorsToStderr)
	})

	t.Run("builder error accumulation", func(t *testing.T) {
		sink, err := NewBuilder().
			LevelString("invalid-level-string").
			Directory("/some/dir").
			Build()

		require.Error(t, err, "Build should fail with an invalid level string")
		assert.Contains(t, err.Error(), "invalid level string")
		assert.Nil(t, sink, "A nil sink should be returned on build error")

		_, err = NewBuilder().LevelString("nope").Config()
		assert.Error(t, err)
	})

	t.Run("validation error", func(t *testing.T) {
		sink, err := NewBuilder().
			MaxFileSizeBytes(0).
			Build()

		require.Error(t, err, "Build should fail with a zero size limit")
		assert.Contains(t, err.Error(), "invalid configuration")
		assert.Nil(t, sink)
	})

	t.Run("file system option", func(t *testing.T) {
		fs := afero.NewMemMapFs()

		sink, err := NewBuilder().
			Directory("/logs").
			FileSystem(fs).
			InternalErrorsToStderr(false).
			Build()
		require.NoError(t, err)

		require.NoError(t, sink.Submit(LevelInfo, "", "in memory\n"))
		require.NoError(t, sink.Shutdown())

		data, err := afero.ReadFile(fs, "/logs/logs_0.csv")
		require.NoError(t, err)
		assert.Equal(t, "in memory\n", string(data))
	})
}
