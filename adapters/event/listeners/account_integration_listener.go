package listeners

import (
	"context"

	"github.com/AccountHub/backend/domain"
	"github.com/AccountHub/backend/domain/account"
	"github.com/AccountHub/backend/domain/pubsub"
	jsoniter "github.com/json-iterator/go"
)

const IntegrationChannel = "accounts.events"

// AccountIntegrationListener republishes account events on the integration
// channel so other services can react to them. It handles both
// AccountCreated and AccountEmailChanged; register it under each name.
type AccountIntegrationListener struct {
	pubsubService pubsub.Service
}

func NewAccountIntegrationListener(pubsubService pubsub.Service) AccountIntegrationListener {
	return AccountIntegrationListener{pubsubService: pubsubService}
}

type integrationEvent struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

func (l AccountIntegrationListener) EventHandler(event domain.BaseDomainEvent) error {
	switch event.(type) {
	case account.AccountCreatedEvent, account.AccountEmailChangedEvent:
	default:
		return nil
	}

	payload, err := jsoniter.MarshalToString(integrationEvent{
		Event:   event.EventName(),
		Payload: event,
	})
	if err != nil {
		return err
	}

	return l.pubsubService.Publish(context.Background(), IntegrationChannel, payload)
}
