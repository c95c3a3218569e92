package activitylog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// DefaultLogFile is the file name used when no activity log path is configured.
const DefaultLogFile = "library_log.txt"

// FileSink appends one line per entry to a text file.
// The file is opened in append mode for every write, so it may be rotated or removed between writes.
type FileSink struct {
	path string
	mu   sync.Mutex
}

// NewFileSink creates a FileSink for path and ensures its directory exists.
func NewFileSink(path string) (*FileSink, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Join(ErrLogWriteFailed, err)
	}

	return &FileSink{path: path}, nil
}

// Path returns the path of the log file.
func (s *FileSink) Path() string {
	return s.path
}

// Record implements Recorder.
func (s *FileSink) Record(_ context.Context, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Join(ErrLogWriteFailed, err)
	}

	_, writeErr := f.WriteString(entry.Line() + "\n")
	closeErr := f.Close()

	if writeErr != nil || closeErr != nil {
		return errors.Join(ErrLogWriteFailed, writeErr, closeErr)
	}

	return nil
}
