package account

import "github.com/google/uuid"

const AccountCreatedEventName = "AccountCreated"

type AccountCreatedEvent struct {
	ID    uuid.UUID
	Name  string
	Email string
}

func NewAccountCreatedEvent(id uuid.UUID, name string, email string) AccountCreatedEvent {
	return AccountCreatedEvent{
		ID:    id,
		Name:  name,
		Email: email,
	}
}

func (e AccountCreatedEvent) EventName() string {
	return AccountCreatedEventName
}
