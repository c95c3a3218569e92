package core

import (
	"fmt"
	"slices"
	"strings"
)

// Actor is a snapshot of a registered borrower (a member).
// BorrowedItemIDs is a copy, in borrow order, and never contains duplicates.
type Actor struct {
	ID              ActorIDString
	Name            string
	BorrowedItemIDs []ItemIDString
}

// BuildActor creates an Actor without borrowed items.
func BuildActor(id ActorIDString, name string) Actor {
	return Actor{
		ID:              id,
		Name:            name,
		BorrowedItemIDs: []ItemIDString{},
	}
}

// Borrows reports whether the actor currently holds the item.
func (a Actor) Borrows(itemID ItemIDString) bool {
	return slices.Contains(a.BorrowedItemIDs, itemID)
}

func (a Actor) String() string {
	return fmt.Sprintf("Actor[ID=%s, Name=%s, Borrowed=[%s]]", a.ID, a.Name, strings.Join(a.BorrowedItemIDs, ", "))
}
