package disklog

import (
	"testing"

	"github.com/spf13/afero"
)

// BenchmarkSubmit benchmarks enqueueing pre-formatted records
func BenchmarkSubmit(b *testing.B) {
	sink := createTestSink(b, afero.NewMemMapFs(), nil)
	defer sink.Shutdown()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sink.Submit(LevelInfo, "bench", "benchmark message\n")
	}
}

// BenchmarkInfoCSV benchmarks the formatting helper with the csv format
func BenchmarkInfoCSV(b *testing.B) {
	sink := createTestSink(b, afero.NewMemMapFs(), nil)
	defer sink.Shutdown()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sink.Info("bench", "benchmark message", i)
	}
}

// BenchmarkConcurrentSubmit benchmarks submissions from parallel goroutines
func BenchmarkConcurrentSubmit(b *testing.B) {
	sink := createTestSink(b, afero.NewMemMapFs(), func(c *Config) {
		c.MaxFileSizeBytes = 1 << 20
	})
	defer sink.Shutdown()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = sink.Submit(LevelInfo, "bench", "concurrent message\n")
		}
	})
}
