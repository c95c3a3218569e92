package librarystore

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/zeenath1324/Mini-project/activitylog"
	"github.com/zeenath1324/Mini-project/core"
	"github.com/zeenath1324/Mini-project/shell"
)

const (
	logMsgOperation         = "library operation: "
	logMsgOperationRejected = "library operation rejected: "
	logMsgLogWriteFailed    = "activity log write failed"
	logAttrError            = "error"
	logAttrEventType        = "event_type"
	logAttrItemID           = "item_id"
	logAttrActorID          = "actor_id"
	logAttrLateFee          = "late_fee"
	logAttrDuplicatePolicy  = "duplicate_policy"
	logActionAddItem        = "add item"
	logActionAddActor       = "add actor"
	logActionCheckout       = "checkout"
	logActionCheckIn        = "check in"
	logActionOverwriteItem  = "overwrite item"
	logActionOverwriteActor = "overwrite actor"
	errFmtItem              = "%w: item %q"
	errFmtActor             = "%w: actor %q"
	errFmtItemAndActor      = "%w: item %q, actor %q"
	errFmtEmptyID           = "%w: %s id must not be empty"
	emptyIDSubjectItem      = "item"
	emptyIDSubjectActor     = "actor"
)

// ErrNilRecorder is returned when New is called without an activity log recorder.
var ErrNilRecorder = errors.New("activity log recorder must not be nil")

// Logger interface for operational information and activity log failure reporting.
// *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Store owns the catalog (item id -> Item) and the registry (actor id -> Actor).
//
// One RWMutex guards both maps, so each operation's check-then-mutate sequence is atomic.
// The recorder is called after the mutation, outside the lock.
type Store struct {
	mu       sync.RWMutex
	catalog  map[core.ItemIDString]*core.Item
	registry map[core.ActorIDString]*core.Actor

	recorder         activitylog.Recorder
	logger           Logger
	now              func() time.Time
	duplicatePolicy  DuplicatePolicy
	logWriteFailures atomic.Int64
}

// New creates an empty Store that records its activity with recorder.
func New(recorder activitylog.Recorder, options ...Option) (*Store, error) {
	if recorder == nil {
		return nil, ErrNilRecorder
	}

	s := &Store{
		catalog:         make(map[core.ItemIDString]*core.Item),
		registry:        make(map[core.ActorIDString]*core.Actor),
		recorder:        recorder,
		now:             time.Now,
		duplicatePolicy: DuplicatePolicyReject,
	}

	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// AddItem adds an available item to the catalog.
//
// An empty id fails with core.ErrInvalidInput. An existing id is handled by the DuplicatePolicy.
func (s *Store) AddItem(ctx context.Context, id core.ItemIDString, title string, author string) error {
	if id == "" {
		return s.rejected(logActionAddItem, fmt.Errorf(errFmtEmptyID, core.ErrInvalidInput, emptyIDSubjectItem))
	}

	s.mu.Lock()

	action := logActionAddItem
	existing, found := s.catalog[id]

	switch {
	case found && s.duplicatePolicy == DuplicatePolicyReject:
		s.mu.Unlock()
		return s.rejected(logActionAddItem, fmt.Errorf(errFmtItem, core.ErrDuplicateItem, id), logAttrItemID, id)

	case found:
		existing.Title = title
		existing.Author = author
		action = logActionOverwriteItem

	default:
		item := core.BuildItem(id, title, author)
		s.catalog[id] = &item
	}

	snapshot := *s.catalog[id]
	s.mu.Unlock()

	s.logOperation(action, logAttrItemID, id, logAttrDuplicatePolicy, s.duplicatePolicy.String())
	s.emit(ctx, core.BuildItemAdded(snapshot, s.now()))

	return nil
}

// AddActor adds an actor without borrowed items to the registry.
//
// An empty id fails with core.ErrInvalidInput. An existing id is handled by the DuplicatePolicy.
func (s *Store) AddActor(ctx context.Context, id core.ActorIDString, name string) error {
	if id == "" {
		return s.rejected(logActionAddActor, fmt.Errorf(errFmtEmptyID, core.ErrInvalidInput, emptyIDSubjectActor))
	}

	s.mu.Lock()

	action := logActionAddActor
	existing, found := s.registry[id]

	switch {
	case found && s.duplicatePolicy == DuplicatePolicyReject:
		s.mu.Unlock()
		return s.rejected(logActionAddActor, fmt.Errorf(errFmtActor, core.ErrDuplicateActor, id), logAttrActorID, id)

	case found:
		existing.Name = name
		action = logActionOverwriteActor

	default:
		actor := core.BuildActor(id, name)
		s.registry[id] = &actor
	}

	snapshot := cloneActor(s.registry[id])
	s.mu.Unlock()

	s.logOperation(action, logAttrActorID, id, logAttrDuplicatePolicy, s.duplicatePolicy.String())
	s.emit(ctx, core.BuildActorAdded(snapshot, s.now()))

	return nil
}

// Checkout lends an available item to an actor.
//
// Preconditions, first failure wins:
//  1. the item exists, else core.ErrItemNotFound
//  2. the item is not checked out, else core.ErrItemAlreadyCheckedOut
//  3. the actor exists, else core.ErrActorNotFound
func (s *Store) Checkout(ctx context.Context, itemID core.ItemIDString, actorID core.ActorIDString) error {
	s.mu.Lock()

	item, found := s.catalog[itemID]
	if !found {
		s.mu.Unlock()
		return s.rejected(logActionCheckout, fmt.Errorf(errFmtItem, core.ErrItemNotFound, itemID), logAttrItemID, itemID, logAttrActorID, actorID)
	}

	if item.CheckedOut {
		s.mu.Unlock()
		return s.rejected(logActionCheckout, fmt.Errorf(errFmtItem, core.ErrItemAlreadyCheckedOut, itemID), logAttrItemID, itemID, logAttrActorID, actorID)
	}

	actor, found := s.registry[actorID]
	if !found {
		s.mu.Unlock()
		return s.rejected(logActionCheckout, fmt.Errorf(errFmtActor, core.ErrActorNotFound, actorID), logAttrItemID, itemID, logAttrActorID, actorID)
	}

	item.CheckedOut = true
	actor.BorrowedItemIDs = append(actor.BorrowedItemIDs, itemID)

	s.mu.Unlock()

	s.logOperation(logActionCheckout, logAttrItemID, itemID, logAttrActorID, actorID)
	s.emit(ctx, core.BuildItemCheckedOut(itemID, actorID, s.now()))

	return nil
}

// CheckIn returns an item borrowed by an actor and returns the late fee for daysLate.
//
// Preconditions, first failure wins:
//  1. daysLate is not negative, else core.ErrInvalidInput
//  2. the item and the actor exist, else core.ErrInvalidIDs
//  3. the item is checked out and borrowed by this actor, else core.ErrNotBorrowedByActor
func (s *Store) CheckIn(ctx context.Context, itemID core.ItemIDString, actorID core.ActorIDString, daysLate int) (int, error) {
	lateFee, err := core.LateFee(daysLate)
	if err != nil {
		return 0, s.rejected(logActionCheckIn, err, logAttrItemID, itemID, logAttrActorID, actorID)
	}

	s.mu.Lock()

	item, itemFound := s.catalog[itemID]
	actor, actorFound := s.registry[actorID]

	if !itemFound || !actorFound {
		s.mu.Unlock()
		return 0, s.rejected(logActionCheckIn, fmt.Errorf(errFmtItemAndActor, core.ErrInvalidIDs, itemID, actorID), logAttrItemID, itemID, logAttrActorID, actorID)
	}

	position := slices.Index(actor.BorrowedItemIDs, itemID)
	if !item.CheckedOut || position < 0 {
		s.mu.Unlock()
		return 0, s.rejected(logActionCheckIn, fmt.Errorf(errFmtItemAndActor, core.ErrNotBorrowedByActor, itemID, actorID), logAttrItemID, itemID, logAttrActorID, actorID)
	}

	item.CheckedOut = false
	actor.BorrowedItemIDs = slices.Delete(actor.BorrowedItemIDs, position, position+1)

	s.mu.Unlock()

	s.logOperation(logActionCheckIn, logAttrItemID, itemID, logAttrActorID, actorID, logAttrLateFee, lateFee)
	s.emit(ctx, core.BuildItemCheckedIn(itemID, actorID, daysLate, lateFee, s.now()))

	return lateFee, nil
}

// LogWriteFailures returns how many activity log entries could not be written.
func (s *Store) LogWriteFailures() int64 {
	return s.logWriteFailures.Load()
}

// emit hands the event to the recorder. Failures are reported, never returned.
func (s *Store) emit(ctx context.Context, event core.DomainEvent) {
	entry, err := shell.EntryFrom(event, shell.NewEventMetadata())
	if err == nil {
		err = s.recorder.Record(ctx, entry)
	}

	if err != nil {
		s.logWriteFailures.Add(1)

		if s.logger != nil {
			s.logger.Warn(
				logMsgLogWriteFailed,
				logAttrEventType, event.IsEventType(),
				logAttrError, errors.Join(activitylog.ErrLogWriteFailed, err).Error())
		}
	}
}

// rejected logs a failed precondition at debug level and returns err unchanged.
func (s *Store) rejected(action string, err error, args ...any) error {
	if s.logger != nil {
		s.logger.Debug(logMsgOperationRejected+action, append(args, logAttrError, err.Error())...)
	}

	return err
}

// logOperation logs a successful operation at info level if the logger is configured.
func (s *Store) logOperation(action string, args ...any) {
	if s.logger != nil {
		s.logger.Info(logMsgOperation+action, args...)
	}
}
