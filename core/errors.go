package core

import "errors"

// Sentinel errors for expected validation failures.
// They are returned (wrapped with the offending ids) so callers can branch with errors.Is.
var (
	// ErrItemNotFound indicates the requested item is not in the catalog
	ErrItemNotFound = errors.New("item not found")

	// ErrItemAlreadyCheckedOut indicates the item is currently checked out
	ErrItemAlreadyCheckedOut = errors.New("item already checked out")

	// ErrActorNotFound indicates the requested actor is not in the registry
	ErrActorNotFound = errors.New("actor not found")

	// ErrInvalidIDs indicates the item or the actor of a check-in does not exist
	ErrInvalidIDs = errors.New("invalid item id or actor id")

	// ErrNotBorrowedByActor indicates the item is not currently borrowed by this actor
	ErrNotBorrowedByActor = errors.New("item was not borrowed by this actor")

	// ErrInvalidInput indicates a malformed argument, e.g. an empty id or negative days late
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateItem indicates an item with the same id is already in the catalog
	ErrDuplicateItem = errors.New("item id already exists")

	// ErrDuplicateActor indicates an actor with the same id is already in the registry
	ErrDuplicateActor = errors.New("actor id already exists")
)
