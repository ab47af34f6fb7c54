package account

import "github.com/google/uuid"

const AccountSuspendedEventName = "AccountSuspended"

type AccountSuspendedEvent struct {
	ID    uuid.UUID
	Email string
}

func NewAccountSuspendedEvent(id uuid.UUID, email string) AccountSuspendedEvent {
	return AccountSuspendedEvent{
		ID:    id,
		Email: email,
	}
}

func (e AccountSuspendedEvent) EventName() string {
	return AccountSuspendedEventName
}
