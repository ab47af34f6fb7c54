package postgrestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/AccountHub/backend/domain/account"
	"github.com/AccountHub/backend/pkg/pagination"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"
)

type AccountStore struct {
	db *sqlx.DB
}

func NewAccountStore(db *sqlx.DB) *AccountStore {
	return &AccountStore{db: db}
}

func (s *AccountStore) Create(ctx context.Context, a *account.Account) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO accounts(id,name,email,status,created_at,updated_at) VALUES ($1,$2,$3,$4,$5,$6)`,
		a.ID, a.Name, a.Email, a.Status, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("cannot save the account: %w", account.ErrEmailTaken)
		}

		return fmt.Errorf("cannot save the account: %w", err)
	}

	return nil
}

func (s *AccountStore) Update(ctx context.Context, a *account.Account) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE accounts SET name=$2, email=$3, status=$4, updated_at=$5 WHERE id=$1`,
		a.ID, a.Name, a.Email, a.Status, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("cannot update the account '%s': %w", a.ID, err)
	}

	return nil
}

func (s *AccountStore) GetByID(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	var result AccountSchema
	err := s.db.GetContext(ctx, &result,
		`SELECT id,name,email,status,created_at,updated_at FROM accounts WHERE id=$1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, account.ErrAccountNotFound
		}

		return nil, fmt.Errorf("cannot get the account '%s': %w", id, err)
	}

	a := result.ToDomainAccount()

	return &a, nil
}

func (s *AccountStore) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	var result AccountSchema
	err := s.db.GetContext(ctx, &result,
		`SELECT id,name,email,status,created_at,updated_at FROM accounts WHERE email=$1`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, account.ErrAccountNotFound
		}

		return nil, fmt.Errorf("cannot get the account '%s': %w", email, err)
	}

	a := result.ToDomainAccount()

	return &a, nil
}

func (s *AccountStore) List(ctx context.Context, pager *pagination.Pager) ([]account.Account, error) {
	var total int64
	if err := s.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM accounts`); err != nil {
		return nil, fmt.Errorf("cannot count accounts: %w", err)
	}

	pager.SetTotal(total)

	offset, limit := pager.Do()

	var schemas []AccountSchema
	err := s.db.SelectContext(ctx, &schemas,
		`SELECT id,name,email,status,created_at,updated_at FROM accounts ORDER BY created_at LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("cannot list accounts: %w", err)
	}

	return lo.Map(schemas, func(s AccountSchema, _ int) account.Account {
		return s.ToDomainAccount()
	}), nil
}
