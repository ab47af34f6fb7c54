package account

import (
	"context"
	"errors"
	"time"

	"github.com/AccountHub/backend/domain"
	"github.com/AccountHub/backend/pkg/pagination"
	"github.com/google/uuid"
)

var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrEmailTaken       = errors.New("email already taken")
	ErrAlreadySuspended = errors.New("account already suspended")
	ErrSuspended        = errors.New("account is suspended")
)

type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
)

type Store interface {
	Create(ctx context.Context, a *Account) error
	Update(ctx context.Context, a *Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
	List(ctx context.Context, pager *pagination.Pager) ([]Account, error)
}

// ChangeSet collects the accounts created or mutated within one request and
// persists them atomically. It doubles as the tracked-aggregate supplier for
// the unit of work.
type ChangeSet interface {
	domain.ChangeSet

	Insert(a *Account)
	Update(a *Account)
}

type ChangeSetFactory interface {
	NewChangeSet() ChangeSet
}

// Account is the aggregate root. Its mutating operations buffer domain
// events; the buffer belongs to the aggregate alone and is drained by the
// unit of work at commit time.
type Account struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	pendingEvents []domain.BaseDomainEvent
}

func NewAccount(name string, email string) *Account {
	now := time.Now()
	a := Account{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Status:    StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	a.raise(NewAccountCreatedEvent(a.ID, a.Name, a.Email))

	return &a
}

func (a *Account) ChangeEmail(email string) error {
	if a.Status == StatusSuspended {
		return ErrSuspended
	}

	if email == a.Email {
		return nil
	}

	old := a.Email
	a.Email = email
	a.UpdatedAt = time.Now()

	a.raise(NewAccountEmailChangedEvent(a.ID, old, email))

	return nil
}

func (a *Account) Suspend() error {
	if a.Status == StatusSuspended {
		return ErrAlreadySuspended
	}

	a.Status = StatusSuspended
	a.UpdatedAt = time.Now()

	a.raise(NewAccountSuspendedEvent(a.ID, a.Email))

	return nil
}

func (a *Account) AggregateID() string {
	return a.ID.String()
}

// PendingEvents returns the buffered events in raise order. The returned
// slice is a copy; the buffer itself only shrinks via ClearEvents.
func (a *Account) PendingEvents() []domain.BaseDomainEvent {
	events := make([]domain.BaseDomainEvent, len(a.pendingEvents))
	copy(events, a.pendingEvents)

	return events
}

func (a *Account) ClearEvents() {
	a.pendingEvents = nil
}

func (a *Account) raise(event domain.BaseDomainEvent) {
	a.pendingEvents = append(a.pendingEvents, event)
}
