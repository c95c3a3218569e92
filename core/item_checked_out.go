package core

import (
	"time"
)

// ItemCheckedOutEventType is the event type identifier.
const ItemCheckedOutEventType = "ItemCheckedOut"

// ItemCheckedOut represents when an item is checked out by an actor.
type ItemCheckedOut struct {
	ItemID     ItemIDString
	ActorID    ActorIDString
	OccurredAt OccurredAtTS
}

// BuildItemCheckedOut creates a new ItemCheckedOut event.
func BuildItemCheckedOut(itemID ItemIDString, actorID ActorIDString, occurredAt time.Time) ItemCheckedOut {
	return ItemCheckedOut{
		ItemID:     itemID,
		ActorID:    actorID,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e ItemCheckedOut) IsEventType() string {
	return ItemCheckedOutEventType
}

// HasOccurredAt returns when this event occurred.
func (e ItemCheckedOut) HasOccurredAt() time.Time {
	return e.OccurredAt
}
