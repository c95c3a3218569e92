package activitylog

import (
	"context"
	"errors"
)

// Recorder appends entries to a durable, append-only sink.
type Recorder interface {
	Record(ctx context.Context, entry Entry) error
}

// Reader reads all entries of a sink back in append order.
type Reader interface {
	Entries(ctx context.Context) (Entries, error)
}

// NopRecorder discards all entries (for testing/batch operations).
type NopRecorder struct{}

func (NopRecorder) Record(context.Context, Entry) error { return nil }

// MultiRecorder fans out each entry to all of its recorders.
// Every recorder is tried; the failures are joined.
type MultiRecorder struct {
	recorders []Recorder
}

// NewMultiRecorder creates a MultiRecorder, skipping nil recorders.
func NewMultiRecorder(recorders ...Recorder) MultiRecorder {
	m := MultiRecorder{recorders: make([]Recorder, 0, len(recorders))}

	for _, r := range recorders {
		if r != nil {
			m.recorders = append(m.recorders, r)
		}
	}

	return m
}

// Record implements Recorder.
func (m MultiRecorder) Record(ctx context.Context, entry Entry) error {
	var errs []error

	for _, r := range m.recorders {
		if err := r.Record(ctx, entry); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Entries implements Reader by delegating to the first recorder that is a Reader.
// It returns nil entries if none of the recorders can be read back.
func (m MultiRecorder) Entries(ctx context.Context) (Entries, error) {
	for _, r := range m.recorders {
		if reader, ok := r.(Reader); ok {
			return reader.Entries(ctx)
		}
	}

	return nil, nil
}
