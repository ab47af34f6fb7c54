package postgrestore

import (
	"context"
	"fmt"

	"github.com/AccountHub/backend/domain"
	"github.com/AccountHub/backend/domain/account"
	"github.com/jmoiron/sqlx"
)

type ChangeSetFactory struct {
	db *sqlx.DB
}

func NewChangeSetFactory(db *sqlx.DB) *ChangeSetFactory {
	return &ChangeSetFactory{db: db}
}

func (f *ChangeSetFactory) NewChangeSet() account.ChangeSet {
	return &ChangeSet{db: f.db}
}

// ChangeSet queues the inserts and updates of one request and persists them
// in a single transaction. Request-scoped, not safe for concurrent use.
type ChangeSet struct {
	db      *sqlx.DB
	inserts []*account.Account
	updates []*account.Account
	tracked []domain.Aggregate
}

func (cs *ChangeSet) Insert(a *account.Account) {
	cs.inserts = append(cs.inserts, a)
	cs.tracked = append(cs.tracked, a)
}

func (cs *ChangeSet) Update(a *account.Account) {
	cs.updates = append(cs.updates, a)
	cs.tracked = append(cs.tracked, a)
}

func (cs *ChangeSet) Tracked() []domain.Aggregate {
	return cs.tracked
}

func (cs *ChangeSet) PersistAll(ctx context.Context) error {
	if len(cs.inserts) == 0 && len(cs.updates) == 0 {
		return nil
	}

	tx, err := cs.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("cannot begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, a := range cs.inserts {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO accounts(id,name,email,status,created_at,updated_at) VALUES ($1,$2,$3,$4,$5,$6)`,
			a.ID, a.Name, a.Email, a.Status, a.CreatedAt, a.UpdatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("cannot save the account: %w", account.ErrEmailTaken)
			}

			return fmt.Errorf("cannot save the account: %w", err)
		}
	}

	for _, a := range cs.updates {
		_, err := tx.ExecContext(ctx,
			`UPDATE accounts SET name=$2, email=$3, status=$4, updated_at=$5 WHERE id=$1`,
			a.ID, a.Name, a.Email, a.Status, a.UpdatedAt)
		if err != nil {
			return fmt.Errorf("cannot update the account '%s': %w", a.ID, err)
		}
	}

	return tx.Commit()
}
