package activitylog

import (
	"time"

	jsoniter "github.com/json-iterator/go"
)

// TimestampLayout is the layout of the timestamp prefix of a log line,
// e.g. "Wed Mar  4 10:30:00 UTC 2026".
const TimestampLayout = time.UnixDate

// lineSeparator separates the timestamp from the description in a log line.
const lineSeparator = " - "

// Entries is an alias type for a slice of Entry
type Entries = []Entry

// Entry is a DTO (data transfer object) handed to a Recorder for each logged event.
//
// While its properties are exported, it should only be constructed with the supplied factory methods:
//   - BuildEntry
//   - BuildEntryWithEmptyMetadata
type Entry struct {
	EventType    string
	OccurredAt   time.Time
	Description  string
	PayloadJSON  []byte
	MetadataJSON []byte
}

// BuildEntry is a factory method for Entry.
//
// Returns an error if payloadJSON or metadataJSON are not valid JSON.
func BuildEntry(
	eventType string,
	occurredAt time.Time,
	description string,
	payloadJSON []byte,
	metadataJSON []byte,
) (Entry, error) {

	if !jsoniter.ConfigFastest.Valid(payloadJSON) {
		return Entry{}, ErrInvalidPayloadJSON
	}

	if !jsoniter.ConfigFastest.Valid(metadataJSON) {
		return Entry{}, ErrInvalidMetadataJSON
	}

	return Entry{
		EventType:    eventType,
		OccurredAt:   occurredAt,
		Description:  description,
		PayloadJSON:  payloadJSON,
		MetadataJSON: metadataJSON,
	}, nil
}

// BuildEntryWithEmptyMetadata is a factory method for Entry that creates valid empty JSON for MetadataJSON.
func BuildEntryWithEmptyMetadata(eventType string, occurredAt time.Time, description string, payloadJSON []byte) (Entry, error) {
	return BuildEntry(eventType, occurredAt, description, payloadJSON, []byte("{}"))
}

// Line renders the entry as a single activity log line in local time, without the trailing newline.
func (e Entry) Line() string {
	return e.LineIn(time.Local)
}

// LineIn renders the entry like Line with the timestamp in loc.
// OccurredAt itself stays in UTC.
func (e Entry) LineIn(loc *time.Location) string {
	return e.OccurredAt.In(loc).Format(TimestampLayout) + lineSeparator + e.Description
}
