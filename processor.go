// --- File: processor.go ---
package disklog

// processRecords is the single consumer of the queue, running in its own
// goroutine until the queue is closed and drained
func (s *Sink) processRecords(w *rotatingWriter) {
	s.state.WorkerExited.Store(false)
	defer close(s.done)
	defer s.state.WorkerExited.Store(true)

	for item := range s.queue.Out() {
		switch v := item.(type) {
		case Record:
			s.processRecord(w, v)

		case flushBarrier:
			if err := w.sync(); err != nil {
				s.internalLog("%v\n", err)
			}
			close(v.confirm)
		}
	}

	// Queue closed: release the file
	if err := w.close(); err != nil {
		s.internalLog("%v\n", err)
	}
	s.publishWriterState(w)
}

// processRecord appends one record and applies the rotation and failure policy
func (s *Sink) processRecord(w *rotatingWriter, record Record) {
	if err := w.write(record.Message); err != nil {
		// The record is lost, the next one starts over with file selection
		s.state.WriteFailures.Add(1)
		s.internalLog("dropping record (level %d, tag '%s'): %v\n", record.Level, record.Tag, err)
		w.abandon()
		s.publishWriterState(w)
		return
	}

	s.state.RecordsWritten.Add(1)
	s.state.BytesWritten.Add(uint64(len(record.Message)))

	if w.full() {
		if err := w.close(); err != nil {
			s.internalLog("%v\n", err)
		}
		s.state.TotalRotations.Add(1)
	}
	s.publishWriterState(w)
}
