package core

import (
	"time"
)

// ItemCheckedInEventType is the event type identifier.
const ItemCheckedInEventType = "ItemCheckedIn"

// ItemCheckedIn represents when an actor returns an item, including the late fee charged.
type ItemCheckedIn struct {
	ItemID     ItemIDString
	ActorID    ActorIDString
	DaysLate   int
	LateFee    int
	OccurredAt OccurredAtTS
}

// BuildItemCheckedIn creates a new ItemCheckedIn event.
func BuildItemCheckedIn(
	itemID ItemIDString,
	actorID ActorIDString,
	daysLate int,
	lateFee int,
	occurredAt time.Time,
) ItemCheckedIn {

	return ItemCheckedIn{
		ItemID:     itemID,
		ActorID:    actorID,
		DaysLate:   daysLate,
		LateFee:    lateFee,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e ItemCheckedIn) IsEventType() string {
	return ItemCheckedInEventType
}

// HasOccurredAt returns when this event occurred.
func (e ItemCheckedIn) HasOccurredAt() time.Time {
	return e.OccurredAt
}
