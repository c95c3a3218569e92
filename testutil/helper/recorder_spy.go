package helper

import (
	"context"
	"errors"
	"sync"

	"github.com/zeenath1324/Mini-project/activitylog"
)

// RecorderSpy is an activitylog.Recorder that captures entries and can be switched to fail.
type RecorderSpy struct {
	mu      sync.Mutex
	entries activitylog.Entries
	failErr error
}

// NewRecorderSpy creates a RecorderSpy that accepts all entries.
func NewRecorderSpy() *RecorderSpy {
	return &RecorderSpy{entries: make(activitylog.Entries, 0)}
}

// NewFailingRecorderSpy creates a RecorderSpy that rejects every entry with an error wrapping ErrLogWriteFailed.
func NewFailingRecorderSpy() *RecorderSpy {
	spy := NewRecorderSpy()
	spy.failErr = errors.Join(activitylog.ErrLogWriteFailed, errors.New("sink unavailable"))

	return spy
}

// Record implements activitylog.Recorder.
func (s *RecorderSpy) Record(_ context.Context, entry activitylog.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failErr != nil {
		return s.failErr
	}

	s.entries = append(s.entries, entry)

	return nil
}

// Entries implements activitylog.Reader.
func (s *RecorderSpy) Entries(_ context.Context) (activitylog.Entries, error) {
	return s.RecordedEntries(), nil
}

// RecordedEntries returns a copy of all captured entries.
func (s *RecorderSpy) RecordedEntries() activitylog.Entries {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make(activitylog.Entries, len(s.entries))
	copy(entries, s.entries)

	return entries
}

// EventTypes returns the event types of all captured entries in order.
func (s *RecorderSpy) EventTypes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	types := make([]string, 0, len(s.entries))
	for _, e := range s.entries {
		types = append(types, e.EventType)
	}

	return types
}

// Descriptions returns the descriptions of all captured entries in order.
func (s *RecorderSpy) Descriptions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	descriptions := make([]string, 0, len(s.entries))
	for _, e := range s.entries {
		descriptions = append(descriptions, e.Description)
	}

	return descriptions
}
