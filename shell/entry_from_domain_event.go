package shell

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/zeenath1324/Mini-project/activitylog"
	"github.com/zeenath1324/Mini-project/core"
)

var (
	// ErrMappingToEntryFailedForDomainEvent is returned when domain event serialization fails.
	ErrMappingToEntryFailedForDomainEvent = errors.New("mapping to activity log entry failed for domain event")

	// ErrMappingToEntryFailedForMetadata is returned when metadata serialization fails.
	ErrMappingToEntryFailedForMetadata = errors.New("mapping to activity log entry failed for metadata")

	// ErrMappingToEntryUnknownEventType is returned for unrecognized event types.
	ErrMappingToEntryUnknownEventType = errors.New("unknown event type")
)

// EntryFrom converts a DomainEvent and EventMetadata to an activity log entry.
func EntryFrom(event core.DomainEvent, metadata EventMetadata) (activitylog.Entry, error) {
	description, err := Describe(event)
	if err != nil {
		return activitylog.Entry{}, errors.Join(ErrMappingToEntryFailedForDomainEvent, err)
	}

	payloadJSON, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(event)
	if err != nil {
		return activitylog.Entry{}, errors.Join(ErrMappingToEntryFailedForDomainEvent, err)
	}

	metadataJSON, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(metadata)
	if err != nil {
		return activitylog.Entry{}, errors.Join(ErrMappingToEntryFailedForMetadata, err)
	}

	entry, err := activitylog.BuildEntry(
		event.IsEventType(),
		event.HasOccurredAt(),
		description,
		payloadJSON,
		metadataJSON,
	)
	if err != nil {
		return activitylog.Entry{}, errors.Join(ErrMappingToEntryFailedForDomainEvent, err)
	}

	return entry, nil
}

// Describe renders the one-line, human-readable description of a domain event.
func Describe(event core.DomainEvent) (string, error) {
	switch e := event.(type) {
	case core.ItemAdded:
		return "item added: " + e.Item().String(), nil

	case core.ActorAdded:
		return "actor added: " + e.Actor().String(), nil

	case core.ItemCheckedOut:
		return fmt.Sprintf("checked out: item %s to actor %s", e.ItemID, e.ActorID), nil

	case core.ItemCheckedIn:
		return fmt.Sprintf("checked in: item %s by actor %s | late fee: %d", e.ItemID, e.ActorID, e.LateFee), nil
	}

	return "", ErrMappingToEntryUnknownEventType
}
