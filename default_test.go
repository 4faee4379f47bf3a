package disklog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSink(t *testing.T) {
	t.Cleanup(func() { _ = Shutdown() })

	assert.Nil(t, Default())
	assert.ErrorIs(t, Submit(LevelInfo, "", "early\n"), ErrClosed)
	assert.ErrorIs(t, Flush(time.Second), ErrClosed)
	Info("tag", "ignored before init")

	dir := t.TempDir()
	require.NoError(t, InitWithDefaults(
		"directory="+dir,
		"format=raw",
		"internal_errors_to_stderr=false",
	))
	require.NotNil(t, Default())

	require.NoError(t, Submit(LevelInfo, "", "first\n"))
	Warn("tag", "second\n")
	require.NoError(t, Flush(time.Second))

	// Re-initializing replaces and shuts down the previous sink
	previous := Default()
	require.NoError(t, InitWithDefaults("directory="+dir, "internal_errors_to_stderr=false"))
	assert.NotSame(t, previous, Default())
	assert.ErrorIs(t, previous.Submit(LevelInfo, "", "late\n"), ErrClosed)

	require.NoError(t, Shutdown())
	assert.Nil(t, Default())
	assert.NoError(t, Shutdown(), "shutdown without a sink is a no-op")

	data, err := os.ReadFile(filepath.Join(dir, "logs_0.csv"))
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(data))
}

func TestInitWithDefaultsInvalidOverride(t *testing.T) {
	err := InitWithDefaults("max_file_size_bytes=0")
	require.Error(t, err)
	assert.Nil(t, Default())
}
