// FILE: lixenwraith/disklog/compat/compat_test.go
package compat

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/disklog"
)

// createTestCompatBuilder creates a standard setup for compatibility adapter tests
func createTestCompatBuilder(t *testing.T) (*Builder, *disklog.Sink, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	sink, err := disklog.NewBuilder().
		Directory("/logs").
		Format("csv").
		LevelString("debug").
		InternalErrorsToStderr(false).
		FileSystem(fs).
		Build()
	require.NoError(t, err)

	return NewBuilder().WithSink(sink), sink, fs
}

type csvEntry struct {
	level, tag, msg string
}

// readEntries flushes the sink and parses the csv lines of the first file
func readEntries(t *testing.T, sink *disklog.Sink, fs afero.Fs) []csvEntry {
	t.Helper()
	require.NoError(t, sink.Flush(time.Second))

	data, err := afero.ReadFile(fs, filepath.Join("/logs", "logs_0.csv"))
	require.NoError(t, err)

	var entries []csvEntry
	for _, line := range strings.Split(strings.TrimSuffix(string(data), "\n"), "\n") {
		fields := strings.SplitN(line, ",", 5)
		require.Len(t, fields, 5, "malformed line: %s", line)
		entries = append(entries, csvEntry{level: fields[2], tag: fields[3], msg: fields[4]})
	}
	return entries
}

// TestCompatBuilder verifies the compatibility builder can be initialized correctly
func TestCompatBuilder(t *testing.T) {
	t.Run("with existing sink", func(t *testing.T) {
		builder, sink, _ := createTestCompatBuilder(t)
		defer sink.Shutdown()

		gnetAdapter, err := builder.BuildGnet()
		require.NoError(t, err)
		assert.Same(t, sink, gnetAdapter.sink)

		fasthttpAdapter, err := builder.BuildFastHTTP()
		require.NoError(t, err)
		assert.Same(t, sink, fasthttpAdapter.sink)
	})

	t.Run("with config", func(t *testing.T) {
		cfg := disklog.DefaultConfig()
		cfg.Directory = t.TempDir()
		cfg.InternalErrorsToStderr = false

		builder := NewBuilder().WithConfig(cfg)
		fasthttpAdapter, err := builder.BuildFastHTTP()
		require.NoError(t, err)
		assert.NotNil(t, fasthttpAdapter)

		sink, err := builder.GetSink()
		require.NoError(t, err)
		defer sink.Shutdown()
		assert.Same(t, sink, fasthttpAdapter.sink, "builder should cache the created sink")
	})

	t.Run("nil sink", func(t *testing.T) {
		_, err := NewBuilder().WithSink(nil).BuildGnet()
		assert.Error(t, err)
	})
}

// TestGnetAdapter tests the gnet adapter's levels, tag and fatal handling
func TestGnetAdapter(t *testing.T) {
	builder, sink, fs := createTestCompatBuilder(t)
	defer sink.Shutdown()

	var fatalCalled bool
	adapter, err := builder.BuildGnet(WithFatalHandler(func(msg string) {
		fatalCalled = true
	}))
	require.NoError(t, err)

	adapter.Debugf("gnet debug id=%d", 1)
	adapter.Infof("gnet info id=%d", 2)
	adapter.Warnf("gnet warn id=%d", 3)
	adapter.Errorf("gnet error id=%d", 4)
	adapter.Fatalf("gnet fatal id=%d", 5)

	entries := readEntries(t, sink, fs)

	expected := []csvEntry{
		{"DEBUG", GnetTag, "gnet debug id=1"},
		{"INFO", GnetTag, "gnet info id=2"},
		{"WARN", GnetTag, "gnet warn id=3"},
		{"ERROR", GnetTag, "gnet error id=4"},
		{"ERROR", GnetTag, "fatal: gnet fatal id=5"},
	}
	assert.Equal(t, expected, entries)
	assert.True(t, fatalCalled, "Custom fatal handler should have been called")
}

// TestFastHTTPAdapter tests the fasthttp adapter's output and level detection
func TestFastHTTPAdapter(t *testing.T) {
	builder, sink, fs := createTestCompatBuilder(t)
	defer sink.Shutdown()

	adapter, err := builder.BuildFastHTTP()
	require.NoError(t, err)

	testMessages := []string{
		"this is some informational message",
		"a debug message for the developers",
		"warning: something might be wrong",
		"an error occurred while processing",
	}
	for _, msg := range testMessages {
		adapter.Printf("%s", msg)
	}

	entries := readEntries(t, sink, fs)
	expectedLevels := []string{"INFO", "DEBUG", "WARN", "ERROR"}

	require.Len(t, entries, 4)
	for i, e := range entries {
		assert.Equal(t, expectedLevels[i], e.level)
		assert.Equal(t, FastHTTPTag, e.tag)
		assert.Equal(t, testMessages[i], e.msg)
	}
}

func TestFastHTTPAdapterDefaultLevel(t *testing.T) {
	builder, sink, fs := createTestCompatBuilder(t)
	defer sink.Shutdown()

	adapter, err := builder.BuildFastHTTP(
		WithLevelDetector(nil),
		WithDefaultLevel(disklog.LevelWarn),
	)
	require.NoError(t, err)

	adapter.Printf("an error that stays at the default level")

	entries := readEntries(t, sink, fs)
	require.Len(t, entries, 1)
	assert.Equal(t, "WARN", entries[0].level)
}

func TestDetectLogLevel(t *testing.T) {
	assert.Equal(t, disklog.LevelError, DetectLogLevel("request FAILED"))
	assert.Equal(t, disklog.LevelWarn, DetectLogLevel("deprecated option"))
	assert.Equal(t, disklog.LevelDebug, DetectLogLevel("trace id 7"))
	assert.Equal(t, disklog.LevelInfo, DetectLogLevel("served"))
}
