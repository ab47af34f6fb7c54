package domain

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// ChangeSet is the persistence collaborator of one request: it knows which
// aggregates were created or mutated, and how to persist those changes as a
// single atomic operation. One change set per request; never shared.
type ChangeSet interface {
	Tracked() []Aggregate
	PersistAll(ctx context.Context) error
}

// UnitOfWork is the commit boundary: it drains pending events from the
// change set's aggregates, dispatches them, persists the changes and clears
// the event buffers, as one sequential operation.
//
// The policy is fail-fast: a listener error or a persistence error aborts
// the commit and leaves every event buffer populated. A retried commit will
// therefore redispatch, so listeners must tolerate at-least-once delivery.
type UnitOfWork struct {
	dispatcher EventDispatcher
	logger     *zap.SugaredLogger
}

func NewUnitOfWork(dispatcher EventDispatcher, logger *zap.SugaredLogger) *UnitOfWork {
	return &UnitOfWork{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (u *UnitOfWork) Commit(ctx context.Context, changes ChangeSet) error {
	var dirty []Aggregate
	for _, aggregate := range changes.Tracked() {
		if len(aggregate.PendingEvents()) > 0 {
			dirty = append(dirty, aggregate)
		}
	}

	// Per-aggregate order is raise order; cross-aggregate order follows the
	// change set's tracking order.
	var events []BaseDomainEvent
	for _, aggregate := range dirty {
		events = append(events, aggregate.PendingEvents()...)
	}

	for _, event := range events {
		if err := u.dispatcher.Dispatch(event); err != nil {
			return fmt.Errorf("dispatching %s: %w", event.EventName(), err)
		}
	}

	if err := changes.PersistAll(ctx); err != nil {
		return fmt.Errorf("persisting changes: %w", err)
	}

	for _, aggregate := range dirty {
		aggregate.ClearEvents()
	}

	if len(events) > 0 {
		u.logger.Debugw("unit of work committed",
			"aggregates", len(dirty),
			"events", len(events),
		)
	}

	return nil
}
