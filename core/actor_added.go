package core

import (
	"time"
)

// ActorAddedEventType is the event type identifier.
const ActorAddedEventType = "ActorAdded"

// ActorAdded represents when an actor is added to the registry.
type ActorAdded struct {
	ActorID         ActorIDString
	Name            string
	BorrowedItemIDs []ItemIDString
	OccurredAt      OccurredAtTS
}

// BuildActorAdded creates a new ActorAdded event from an actor snapshot.
func BuildActorAdded(actor Actor, occurredAt time.Time) ActorAdded {
	return ActorAdded{
		ActorID:         actor.ID,
		Name:            actor.Name,
		BorrowedItemIDs: append([]ItemIDString{}, actor.BorrowedItemIDs...),
		OccurredAt:      ToOccurredAt(occurredAt),
	}
}

// Actor returns the actor snapshot carried by the event.
func (e ActorAdded) Actor() Actor {
	return Actor{ID: e.ActorID, Name: e.Name, BorrowedItemIDs: append([]ItemIDString{}, e.BorrowedItemIDs...)}
}

// IsEventType returns the event type identifier.
func (e ActorAdded) IsEventType() string {
	return ActorAddedEventType
}

// HasOccurredAt returns when this event occurred.
func (e ActorAdded) HasOccurredAt() time.Time {
	return e.OccurredAt
}
