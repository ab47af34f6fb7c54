package postgrestore

import (
	"time"

	"github.com/AccountHub/backend/domain/account"
	"github.com/google/uuid"
)

type AccountSchema struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (s AccountSchema) ToDomainAccount() account.Account {
	return account.Account{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Status:    account.Status(s.Status),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
