package core

import "fmt"

// ItemStatus is the lending state of an Item.
type ItemStatus string

const (
	ItemStatusAvailable  ItemStatus = "Available"
	ItemStatusCheckedOut ItemStatus = "CheckedOut"
)

// Item is a snapshot of a catalog entry (a book).
// The authoritative copy is owned by the store; changing a snapshot has no effect on it.
type Item struct {
	ID         ItemIDString
	Title      string
	Author     string
	CheckedOut bool
}

// BuildItem creates an available Item.
func BuildItem(id ItemIDString, title string, author string) Item {
	return Item{
		ID:     id,
		Title:  title,
		Author: author,
	}
}

// Status maps the checked-out flag to an ItemStatus.
func (i Item) Status() ItemStatus {
	if i.CheckedOut {
		return ItemStatusCheckedOut
	}

	return ItemStatusAvailable
}

func (i Item) String() string {
	return fmt.Sprintf("Item[ID=%s, Title=%s, Author=%s, Status=%s]", i.ID, i.Title, i.Author, i.Status())
}
