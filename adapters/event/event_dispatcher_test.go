package event_test

import (
	"errors"
	"testing"

	"github.com/AccountHub/backend/adapters/event"
	"github.com/AccountHub/backend/domain"
	"github.com/AccountHub/backend/domain/account"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newDispatcher() domain.EventDispatcher {
	return event.NewEventDispatcher(zap.NewNop().Sugar())
}

func TestDispatchWithoutListenersIsNoop(t *testing.T) {
	dispatcher := newDispatcher()

	err := dispatcher.Dispatch(account.NewAccountCreatedEvent(
		account.NewAccount("Ana", "ana@x.com").ID, "Ana", "ana@x.com"))

	assert.NoError(t, err)
}

func TestDispatchInvokesListenersInRegistrationOrder(t *testing.T) {
	dispatcher := newDispatcher()

	var calls []string
	record := func(name string) func(domain.BaseDomainEvent) error {
		return func(e domain.BaseDomainEvent) error {
			created, ok := e.(account.AccountCreatedEvent)
			assert.True(t, ok)
			assert.Equal(t, "ana@x.com", created.Email)
			calls = append(calls, name)

			return nil
		}
	}

	dispatcher.Register(account.AccountCreatedEventName, record("first"))
	dispatcher.Register(account.AccountCreatedEventName, record("second"))
	dispatcher.Register(account.AccountCreatedEventName, record("third"))

	acct := account.NewAccount("Ana", "ana@x.com")
	err := dispatcher.Dispatch(acct.PendingEvents()[0])

	assert.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third"}, calls)
}

func TestDispatchFailsFastOnListenerError(t *testing.T) {
	dispatcher := newDispatcher()

	boom := errors.New("smtp down")
	var secondCalled bool

	dispatcher.Register(account.AccountCreatedEventName, func(domain.BaseDomainEvent) error {
		return boom
	})
	dispatcher.Register(account.AccountCreatedEventName, func(domain.BaseDomainEvent) error {
		secondCalled = true

		return nil
	})

	acct := account.NewAccount("Ana", "ana@x.com")
	err := dispatcher.Dispatch(acct.PendingEvents()[0])

	assert.ErrorIs(t, err, boom)
	assert.False(t, secondCalled)
}

func TestDispatchDoesNotCrossEventTypes(t *testing.T) {
	dispatcher := newDispatcher()

	var suspendedFired bool
	dispatcher.Register(account.AccountSuspendedEventName, func(domain.BaseDomainEvent) error {
		suspendedFired = true

		return nil
	})

	acct := account.NewAccount("Ana", "ana@x.com")
	assert.NoError(t, dispatcher.Dispatch(acct.PendingEvents()[0]))
	assert.False(t, suspendedFired)
}

func TestRegistryIsNotConsumedByDispatch(t *testing.T) {
	dispatcher := newDispatcher()

	var calls int
	dispatcher.Register(account.AccountCreatedEventName, func(domain.BaseDomainEvent) error {
		calls++

		return nil
	})

	acct := account.NewAccount("Ana", "ana@x.com")
	assert.NoError(t, dispatcher.Dispatch(acct.PendingEvents()[0]))
	assert.NoError(t, dispatcher.Dispatch(acct.PendingEvents()[0]))

	assert.Equal(t, 2, calls)
}
