package account

import "github.com/google/uuid"

const AccountEmailChangedEventName = "AccountEmailChanged"

type AccountEmailChangedEvent struct {
	ID       uuid.UUID
	OldEmail string
	NewEmail string
}

func NewAccountEmailChangedEvent(id uuid.UUID, oldEmail string, newEmail string) AccountEmailChangedEvent {
	return AccountEmailChangedEvent{
		ID:       id,
		OldEmail: oldEmail,
		NewEmail: newEmail,
	}
}

func (e AccountEmailChangedEvent) EventName() string {
	return AccountEmailChangedEventName
}
