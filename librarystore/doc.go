// Package librarystore provides the LibraryStore: the in-memory catalog of items and registry of
// actors, the checkout / check-in workflow and the enforcement of the borrowing invariants.
//
// Invariants, holding after every operation including failed ones:
//   - an item is checked out iff exactly one actor's borrowed list contains its id
//   - an actor's borrowed list never contains duplicates
//   - ids are unique keys and never change once assigned
//
// Every operation checks all of its preconditions before mutating anything. Failures are
// the sentinel errors of package core (wrapped with the offending ids), so callers branch with
// errors.Is:
//
//	fee, err := store.CheckIn(ctx, "B1", "M1", 3)
//	switch {
//	case errors.Is(err, core.ErrNotBorrowedByActor):
//		// ...
//	}
//
// Each successful mutation is handed to the injected activitylog.Recorder. Writing the log is a
// best-effort side channel: a failing recorder never fails or reverts the operation, it is
// reported through the optional Logger and counted by LogWriteFailures.
package librarystore
