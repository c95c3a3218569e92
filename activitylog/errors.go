package activitylog

import "errors"

var (
	// ErrLogWriteFailed is returned by sinks when an entry could not be persisted.
	ErrLogWriteFailed = errors.New("writing activity log entry failed")

	// ErrLogReadFailed is returned by sinks when entries could not be read back.
	ErrLogReadFailed = errors.New("reading activity log entries failed")

	// ErrInvalidPayloadJSON is returned when an entry payload is not valid JSON.
	ErrInvalidPayloadJSON = errors.New("payload json is not valid")

	// ErrInvalidMetadataJSON is returned when entry metadata is not valid JSON.
	ErrInvalidMetadataJSON = errors.New("metadata json is not valid")

	// ErrEmptyPath is returned when a file based sink is created without a path.
	ErrEmptyPath = errors.New("empty log path supplied")
)
