// FILE: state.go
package disklog

import (
	"sync/atomic"
)

// State encapsulates the runtime counters of the sink.
// Writer state (the open file and its byte counter) is not here: it lives in
// the worker goroutine, CurrentFile and CurrentSize are published copies.
type State struct {
	ShutdownCalled atomic.Bool
	WorkerExited   atomic.Bool // Tracks if the worker goroutine has exited

	RecordsSubmitted atomic.Uint64 // Records accepted by Submit
	RecordsWritten   atomic.Uint64 // Records appended and flushed
	RecordsDropped   atomic.Uint64 // Records rejected by a full or closed queue
	WriteFailures    atomic.Uint64 // Records lost to open/write/flush errors
	TotalRotations   atomic.Uint64 // Files closed after reaching the threshold
	BytesWritten     atomic.Uint64 // Content bytes flushed across all files

	CurrentFile atomic.Value // stores string, empty when no file is open
	CurrentSize atomic.Int64 // Rotation counter of the open file
}

// Stats is a point-in-time snapshot of the sink counters
type Stats struct {
	Submitted     uint64
	Written       uint64
	Dropped       uint64
	WriteFailures uint64
	Rotations     uint64
	BytesWritten  uint64
	QueueLength   int
	CurrentFile   string
	CurrentSize   int64
}

// Stats returns a snapshot of the sink counters
func (s *Sink) Stats() Stats {
	currentFile, _ := s.state.CurrentFile.Load().(string)
	return Stats{
		Submitted:     s.state.RecordsSubmitted.Load(),
		Written:       s.state.RecordsWritten.Load(),
		Dropped:       s.state.RecordsDropped.Load(),
		WriteFailures: s.state.WriteFailures.Load(),
		Rotations:     s.state.TotalRotations.Load(),
		BytesWritten:  s.state.BytesWritten.Load(),
		QueueLength:   s.queue.Len(),
		CurrentFile:   currentFile,
		CurrentSize:   s.state.CurrentSize.Load(),
	}
}

// publishWriterState mirrors the worker's file state for Stats
func (s *Sink) publishWriterState(w *rotatingWriter) {
	s.state.CurrentFile.Store(w.path)
	s.state.CurrentSize.Store(w.size)
}
