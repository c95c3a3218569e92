package core

import (
	"time"
)

// ItemAddedEventType is the event type identifier.
const ItemAddedEventType = "ItemAdded"

// ItemAdded represents when an item is added to the catalog.
// CheckedOut is only true when an existing, checked-out entry was overwritten.
type ItemAdded struct {
	ItemID     ItemIDString
	Title      string
	Author     string
	CheckedOut bool
	OccurredAt OccurredAtTS
}

// BuildItemAdded creates a new ItemAdded event from an item snapshot.
func BuildItemAdded(item Item, occurredAt time.Time) ItemAdded {
	return ItemAdded{
		ItemID:     item.ID,
		Title:      item.Title,
		Author:     item.Author,
		CheckedOut: item.CheckedOut,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// Item returns the item snapshot carried by the event.
func (e ItemAdded) Item() Item {
	return Item{ID: e.ItemID, Title: e.Title, Author: e.Author, CheckedOut: e.CheckedOut}
}

// IsEventType returns the event type identifier.
func (e ItemAdded) IsEventType() string {
	return ItemAddedEventType
}

// HasOccurredAt returns when this event occurred.
func (e ItemAdded) HasOccurredAt() time.Time {
	return e.OccurredAt
}
