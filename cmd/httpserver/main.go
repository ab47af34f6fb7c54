package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/AccountHub/backend/adapters/event"
	"github.com/AccountHub/backend/adapters/event/listeners"
	"github.com/AccountHub/backend/adapters/httpserver"
	"github.com/AccountHub/backend/adapters/mailhub"
	"github.com/AccountHub/backend/adapters/postgrestore"
	"github.com/AccountHub/backend/adapters/redisstore"
	"github.com/AccountHub/backend/domain"
	"github.com/AccountHub/backend/domain/account"
	"github.com/AccountHub/backend/pkg/config"
	"github.com/AccountHub/backend/pkg/logger"
	"github.com/AccountHub/backend/pkg/sentry"
	sentrygo "github.com/getsentry/sentry-go"
	_ "github.com/lib/pq"
)

// @title AccountHub APIs
// @version 1.0

// @BasePath /api
// @schemes http https

// @description Accounts API.
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

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		applog.Fatalf("cannot init sentry: %v", err)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	db, err := postgrestore.NewConnection(postgrestore.ParseFromConfig(cfg))
	if err != nil {
		applog.Fatal(err)
	}

	if err := postgrestore.Migrate(db); err != nil {
		applog.Fatal(err)
	}

	redis, err := redisstore.NewConnection(redisstore.ParseFromConfig(cfg))
	if err != nil {
		applog.Fatal(err)
	}

	mailService, err := mailhub.NewMailHub(cfg)
	if err != nil {
		applog.Fatal(err)
	}

	server, err := httpserver.New(cfg, applog)
	if err != nil {
		applog.Fatal(err)
	}

	// event bus: the listener registry is populated here once and is
	// read-only for the rest of the process lifetime
	pubsubService := redisstore.NewRedisClient(redis)

	dispatcher := event.NewEventDispatcher(applog)

	welcomeListener := listeners.NewWelcomeEmailListener(mailService)
	dispatcher.Register(account.AccountCreatedEventName, welcomeListener.EventHandler)

	integrationListener := listeners.NewAccountIntegrationListener(pubsubService)
	dispatcher.Register(account.AccountCreatedEventName, integrationListener.EventHandler)
	dispatcher.Register(account.AccountEmailChangedEventName, integrationListener.EventHandler)

	suspensionListener := listeners.NewSuspensionNoticeListener(mailService)
	dispatcher.Register(account.AccountSuspendedEventName, suspensionListener.EventHandler)

	server.EventDispatcher = dispatcher
	server.UnitOfWork = domain.NewUnitOfWork(dispatcher, applog)

	// store adapters
	server.AccountStore = postgrestore.NewAccountStore(db)
	server.ChangeSets = postgrestore.NewChangeSetFactory(db)

	addr := fmt.Sprintf(":%d", cfg.Port)
	applog.Info("server started!")
	applog.Fatal(http.ListenAndServe(addr, server))
}
