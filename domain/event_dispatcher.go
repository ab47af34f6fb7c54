package domain

// BaseDomainEvent is an immutable record of a state change inside an
// aggregate. EventName returns the event-kind tag listeners register under.
type BaseDomainEvent interface {
	EventName() string
}

// EventDispatcher resolves the listeners registered for an event's name tag
// and invokes each of them. Register is startup-time only; the registry is
// read-only once the process is serving requests.
type EventDispatcher interface {
	Dispatch(event BaseDomainEvent) error
	Register(eventName string, listener func(event BaseDomainEvent) error)
}
