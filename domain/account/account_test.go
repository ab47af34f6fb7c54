package account_test

import (
	"testing"

	"github.com/AccountHub/backend/domain/account"
	"github.com/stretchr/testify/assert"
)

func TestNewAccountBuffersCreatedEvent(t *testing.T) {
	acct := account.NewAccount("Ana", "ana@x.com")

	events := acct.PendingEvents()
	assert.Len(t, events, 1)

	created, ok := events[0].(account.AccountCreatedEvent)
	assert.True(t, ok)
	assert.Equal(t, acct.ID, created.ID)
	assert.Equal(t, "Ana", created.Name)
	assert.Equal(t, "ana@x.com", created.Email)
	assert.Equal(t, account.StatusActive, acct.Status)
}

func TestPendingEventsKeepRaiseOrder(t *testing.T) {
	acct := account.NewAccount("Ana", "ana@x.com")

	assert.NoError(t, acct.ChangeEmail("ana@y.com"))
	assert.NoError(t, acct.Suspend())

	events := acct.PendingEvents()
	assert.Len(t, events, 3)
	assert.Equal(t, account.AccountCreatedEventName, events[0].EventName())
	assert.Equal(t, account.AccountEmailChangedEventName, events[1].EventName())
	assert.Equal(t, account.AccountSuspendedEventName, events[2].EventName())

	changed := events[1].(account.AccountEmailChangedEvent)
	assert.Equal(t, "ana@x.com", changed.OldEmail)
	assert.Equal(t, "ana@y.com", changed.NewEmail)
}

func TestClearEventsEmptiesBuffer(t *testing.T) {
	acct := account.NewAccount("Ana", "ana@x.com")
	assert.NoError(t, acct.ChangeEmail("ana@y.com"))

	acct.ClearEvents()

	assert.Empty(t, acct.PendingEvents())

	// the buffer starts growing again on the next mutation
	assert.NoError(t, acct.ChangeEmail("ana@z.com"))
	assert.Len(t, acct.PendingEvents(), 1)
}

func TestPendingEventsReturnsCopy(t *testing.T) {
	acct := account.NewAccount("Ana", "ana@x.com")

	events := acct.PendingEvents()
	events[0] = account.NewAccountSuspendedEvent(acct.ID, acct.Email)

	assert.Equal(t, account.AccountCreatedEventName, acct.PendingEvents()[0].EventName())
}

func TestChangeEmailNoopWhenUnchanged(t *testing.T) {
	acct := account.NewAccount("Ana", "ana@x.com")
	acct.ClearEvents()

	assert.NoError(t, acct.ChangeEmail("ana@x.com"))
	assert.Empty(t, acct.PendingEvents())
}

func TestSuspendTwiceFails(t *testing.T) {
	acct := account.NewAccount("Ana", "ana@x.com")

	assert.NoError(t, acct.Suspend())
	assert.ErrorIs(t, acct.Suspend(), account.ErrAlreadySuspended)
	assert.ErrorIs(t, acct.ChangeEmail("ana@y.com"), account.ErrSuspended)
}
