package listeners

import "github.com/AccountHub/backend/domain"

type EventListener interface {
	EventHandler(event domain.BaseDomainEvent) error
}
