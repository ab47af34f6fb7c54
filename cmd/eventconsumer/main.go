package main

import (
	"context"
	"fmt"
	"log"

	"github.com/AccountHub/backend/adapters/event/listeners"
	"github.com/AccountHub/backend/adapters/redisstore"
	"github.com/AccountHub/backend/domain/pubsub"
	"github.com/AccountHub/backend/pkg/config"
	"github.com/AccountHub/backend/pkg/logger"
	"github.com/AccountHub/backend/pkg/sentry"
	sentrygo "github.com/getsentry/sentry-go"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

// Tails the integration channel the account listeners publish on and logs
// every event. Meant as a reference consumer for downstream services.
type service struct {
	applog        *zap.SugaredLogger
	pubsubService pubsub.Service
}

type integrationEvent struct {
	Event   string              `json:"event"`
	Payload jsoniter.RawMessage `json:"payload"`
}

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

	redis, err := redisstore.NewConnection(redisstore.ParseFromConfig(cfg))
	if err != nil {
		applog.Fatal(err)
	}

	s := &service{
		applog:        applog,
		pubsubService: redisstore.NewRedisClient(redis),
	}

	applog.Infow("consuming integration events", "channel", listeners.IntegrationChannel)
	applog.Fatal(s.listen(context.Background()))
}

func (s *service) listen(ctx context.Context) error {
	ps := s.pubsubService.Subscribe(ctx, listeners.IntegrationChannel)
	defer ps.Close()

	for {
		msg, err := ps.ReceiveMessage(ctx)
		if err != nil {
			return fmt.Errorf("cannot receive message: %w", err)
		}

		var ev integrationEvent
		if err := jsoniter.UnmarshalFromString(msg.Payload, &ev); err != nil {
			s.applog.Errorw("cannot unmarshal payload", "payload", msg.Payload, zap.Error(err))

			continue
		}

		s.applog.Infow("integration event received",
			"event", ev.Event,
			"payload", string(ev.Payload),
		)
	}
}
