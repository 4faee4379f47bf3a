// FILE: storage.go
package disklog

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// rotatingWriter owns the open log file. It is only ever touched by the
// worker goroutine, so it carries no locks.
type rotatingWriter struct {
	fs        afero.Fs
	dir       string
	name      string
	ext       string
	maxSize   int64
	sizeUnit  string
	internalf func(format string, args ...any)

	file afero.File
	buf  *bufio.Writer
	path string
	size int64
}

// newRotatingWriter creates a writer in the NoFile state
func newRotatingWriter(fs afero.Fs, cfg *Config, internalf func(format string, args ...any)) *rotatingWriter {
	return &rotatingWriter{
		fs:        fs,
		dir:       cfg.Directory,
		name:      cfg.Name,
		ext:       cfg.Extension,
		maxSize:   cfg.MaxFileSizeBytes,
		sizeUnit:  cfg.SizeUnit,
		internalf: internalf,
	}
}

// logFilePath returns the path of the file with the given index
func (w *rotatingWriter) logFilePath(index int) string {
	filename := fmt.Sprintf("%s_%d", w.name, index)
	if w.ext != "" {
		filename = filename + "." + w.ext
	}
	return filepath.Join(w.dir, filename)
}

// selectLogFile picks the file the next record goes to: the highest
// contiguous index if it is still below the threshold, else the next index
func (w *rotatingWriter) selectLogFile() (string, error) {
	index := 0
	for {
		exists, err := afero.Exists(w.fs, w.logFilePath(index))
		if err != nil {
			return "", fmtErrorf("failed to stat log file '%s': %w", w.logFilePath(index), err)
		}
		if !exists {
			break
		}
		index++
	}

	newPath := w.logFilePath(index)
	if index == 0 {
		return newPath, nil
	}

	lastPath := w.logFilePath(index - 1)
	info, err := w.fs.Stat(lastPath)
	if err != nil {
		return "", fmtErrorf("failed to stat log file '%s': %w", lastPath, err)
	}
	if info.Size() < w.maxSize {
		return lastPath, nil
	}
	return newPath, nil
}

// ensureFile opens a file if none is open
func (w *rotatingWriter) ensureFile() error {
	if w.file != nil {
		return nil
	}

	// The open below reports the failure if the directory is still missing
	if err := w.fs.MkdirAll(w.dir, logDirMode); err != nil {
		w.internalf("failed to create log directory '%s': %v\n", w.dir, err)
	}

	path, err := w.selectLogFile()
	if err != nil {
		return err
	}

	file, err := w.fs.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, logFileMode)
	if err != nil {
		return fmtErrorf("failed to open/create log file '%s': %w", path, err)
	}

	var size int64
	if info, errStat := file.Stat(); errStat == nil {
		size = info.Size()
	}

	w.file = file
	w.buf = bufio.NewWriter(file)
	w.path = path
	w.size = size
	return nil
}

// write appends content to the open file, selecting one first if needed,
// and flushes it through to the file
func (w *rotatingWriter) write(content string) error {
	if err := w.ensureFile(); err != nil {
		return err
	}

	if _, err := w.buf.WriteString(content); err != nil {
		return fmtErrorf("failed to write to log file '%s': %w", w.path, err)
	}
	w.size += contentLength(w.sizeUnit, content)

	if err := w.buf.Flush(); err != nil {
		return fmtErrorf("failed to flush log file '%s': %w", w.path, err)
	}
	return nil
}

// full reports whether the open file reached the rotation threshold
func (w *rotatingWriter) full() bool {
	return w.file != nil && w.size >= w.maxSize
}

// sync commits the open file to storage
func (w *rotatingWriter) sync() error {
	if w.file == nil {
		return nil
	}
	if err := w.file.Sync(); err != nil {
		return fmtErrorf("failed to sync log file '%s': %w", w.path, err)
	}
	return nil
}

// close closes the open file and returns to the NoFile state
func (w *rotatingWriter) close() error {
	if w.file == nil {
		return nil
	}

	var err error
	if errFlush := w.buf.Flush(); errFlush != nil {
		err = fmtErrorf("failed to flush log file '%s' before close: %w", w.path, errFlush)
	}
	if errClose := w.file.Close(); errClose != nil {
		err = combineErrors(err, fmtErrorf("failed to close log file '%s': %w", w.path, errClose))
	}

	w.reset()
	return err
}

// abandon drops a handle after a failure, close errors are ignored
func (w *rotatingWriter) abandon() {
	if w.file != nil {
		_ = w.file.Close()
	}
	w.reset()
}

func (w *rotatingWriter) reset() {
	w.file = nil
	w.buf = nil
	w.path = ""
	w.size = 0
}
