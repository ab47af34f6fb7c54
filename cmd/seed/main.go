package main

import (
	"context"
	"log"

	"github.com/AccountHub/backend/adapters/event"
	"github.com/AccountHub/backend/adapters/postgrestore"
	"github.com/AccountHub/backend/domain"
	"github.com/AccountHub/backend/domain/account"
	"github.com/AccountHub/backend/pkg/config"
	"github.com/AccountHub/backend/pkg/logger"
	_ "github.com/lib/pq"
)

// Seeds a handful of accounts through the regular unit-of-work path. No
// listeners are registered, so seeding dispatches nothing.
func main() {
	applog, err := logger.NewAppLogger()
	if err != nil {
		log.Fatalf("cannot init logger: %v\n", err)
	}
	defer logger.Sync(applog)

	cfg, err := config.LoadConfig()
	if err != nil {
		applog.Fatal(err)
	}

	db, err := postgrestore.NewConnection(postgrestore.ParseFromConfig(cfg))
	if err != nil {
		applog.Fatal(err)
	}

	if err := postgrestore.Migrate(db); err != nil {
		applog.Fatal(err)
	}

	var (
		ctx        = context.Background()
		dispatcher = event.NewEventDispatcher(applog)
		uow        = domain.NewUnitOfWork(dispatcher, applog)
		factory    = postgrestore.NewChangeSetFactory(db)
	)

	seeds := []struct {
		name  string
		email string
	}{
		{"Ana", "ana@example.com"},
		{"Bob", "bob@example.com"},
		{"Carol", "carol@example.com"},
	}

	changes := factory.NewChangeSet()
	for _, seed := range seeds {
		changes.Insert(account.NewAccount(seed.name, seed.email))
	}

	if err := uow.Commit(ctx, changes); err != nil {
		applog.Fatal(err)
	}

	applog.Infow("seeded accounts", "count", len(seeds))
}
