package domain

// Aggregate is a domain entity that buffers the events its own mutations
// raised, until a unit of work drains them at commit time.
//
// PendingEvents preserves raise order. ClearEvents is called by the unit of
// work after a successful commit, never by application code.
type Aggregate interface {
	AggregateID() string
	PendingEvents() []BaseDomainEvent
	ClearEvents()
}
