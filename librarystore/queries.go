package librarystore

import (
	"cmp"
	"fmt"
	"iter"
	"slices"

	"github.com/zeenath1324/Mini-project/core"
)

// Inventory returns a lazy sequence of item snapshots ordered by item id.
//
// Each iteration takes a fresh snapshot when it starts, so ranging again reflects the current
// state while one pass is never affected by concurrent changes. Callers may mutate the store
// while iterating.
func (s *Store) Inventory() iter.Seq[core.Item] {
	return func(yield func(core.Item) bool) {
		for _, item := range s.itemSnapshots() {
			if !yield(item) {
				return
			}
		}
	}
}

// Actors returns a lazy sequence of actor snapshots ordered by actor id, with the same
// snapshot semantics as Inventory.
func (s *Store) Actors() iter.Seq[core.Actor] {
	return func(yield func(core.Actor) bool) {
		for _, actor := range s.actorSnapshots() {
			if !yield(actor) {
				return
			}
		}
	}
}

// Item returns a snapshot of the item with the given id.
func (s *Store) Item(id core.ItemIDString) (core.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, found := s.catalog[id]
	if !found {
		return core.Item{}, false
	}

	return *item, true
}

// Actor returns a snapshot of the actor with the given id; its borrowed list is a copy.
func (s *Store) Actor(id core.ActorIDString) (core.Actor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	actor, found := s.registry[id]
	if !found {
		return core.Actor{}, false
	}

	return cloneActor(actor), true
}

// BorrowedBy returns a copy of the ids of the items the actor currently holds, in borrow order.
func (s *Store) BorrowedBy(actorID core.ActorIDString) ([]core.ItemIDString, error) {
	actor, found := s.Actor(actorID)
	if !found {
		return nil, fmt.Errorf(errFmtActor, core.ErrActorNotFound, actorID)
	}

	return actor.BorrowedItemIDs, nil
}

func (s *Store) itemSnapshots() []core.Item {
	s.mu.RLock()
	items := make([]core.Item, 0, len(s.catalog))
	for _, item := range s.catalog {
		items = append(items, *item)
	}
	s.mu.RUnlock()

	slices.SortFunc(items, func(a, b core.Item) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return items
}

func (s *Store) actorSnapshots() []core.Actor {
	s.mu.RLock()
	actors := make([]core.Actor, 0, len(s.registry))
	for _, actor := range s.registry {
		actors = append(actors, cloneActor(actor))
	}
	s.mu.RUnlock()

	slices.SortFunc(actors, func(a, b core.Actor) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return actors
}

func cloneActor(actor *core.Actor) core.Actor {
	return core.Actor{
		ID:              actor.ID,
		Name:            actor.Name,
		BorrowedItemIDs: slices.Clone(actor.BorrowedItemIDs),
	}
}
