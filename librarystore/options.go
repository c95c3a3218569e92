package librarystore

import (
	"errors"
	"time"
)

// ErrNilClock is returned when WithClock is given a nil function.
var ErrNilClock = errors.New("clock must not be nil")

// ErrUnknownDuplicatePolicy is returned for a DuplicatePolicy value that is not defined.
var ErrUnknownDuplicatePolicy = errors.New("unknown duplicate policy")

// DuplicatePolicy decides what AddItem and AddActor do with an id that is already taken.
type DuplicatePolicy int

const (
	// DuplicatePolicyReject fails the add with core.ErrDuplicateItem or core.ErrDuplicateActor.
	DuplicatePolicyReject DuplicatePolicy = iota

	// DuplicatePolicyOverwrite replaces the descriptive fields (title/author, name) of the existing
	// entry and keeps its borrow state, so the invariants still hold.
	DuplicatePolicyOverwrite
)

// String provides a string representation of DuplicatePolicy for logging and configuration.
func (p DuplicatePolicy) String() string {
	switch p {
	case DuplicatePolicyReject:
		return "reject"
	case DuplicatePolicyOverwrite:
		return "overwrite"
	default:
		return "unknown"
	}
}

// ParseDuplicatePolicy maps "reject" or "overwrite" to a DuplicatePolicy.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch s {
	case "reject", "":
		return DuplicatePolicyReject, nil
	case "overwrite":
		return DuplicatePolicyOverwrite, nil
	default:
		return DuplicatePolicyReject, ErrUnknownDuplicatePolicy
	}
}

// Option defines a functional option for configuring Store.
type Option func(*Store) error

// WithLogger sets the diagnostic logger for the Store.
//
// Debug level: rejected operations with the failure reason
// Info level: successful operations
// Warn level: activity log write failures.
func WithLogger(logger Logger) Option {
	return func(s *Store) error {
		s.logger = logger
		return nil
	}
}

// WithClock sets the time source used to timestamp events.
func WithClock(now func() time.Time) Option {
	return func(s *Store) error {
		if now == nil {
			return ErrNilClock
		}

		s.now = now

		return nil
	}
}

// WithDuplicatePolicy sets how adding an existing id is handled. The default is DuplicatePolicyReject.
func WithDuplicatePolicy(policy DuplicatePolicy) Option {
	return func(s *Store) error {
		if policy != DuplicatePolicyReject && policy != DuplicatePolicyOverwrite {
			return ErrUnknownDuplicatePolicy
		}

		s.duplicatePolicy = policy

		return nil
	}
}
