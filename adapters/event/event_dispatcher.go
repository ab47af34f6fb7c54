package event

import (
	"sync"

	"github.com/AccountHub/backend/domain"
	"go.uber.org/zap"
)

// eventDispatcher resolves listeners by the event's name tag. Registration
// happens during process startup; after that the registry is read-only and
// Dispatch may be called from any request goroutine.
type eventDispatcher struct {
	listeners map[string][]func(event domain.BaseDomainEvent) error
	mutex     sync.RWMutex
	logger    *zap.SugaredLogger
}

func NewEventDispatcher(logger *zap.SugaredLogger) *eventDispatcher {
	return &eventDispatcher{logger: logger}
}

// Dispatch invokes every listener registered for the event's name, in
// registration order, one at a time. The first listener error aborts the
// remaining invocations and propagates to the caller (fail-fast).
func (ed *eventDispatcher) Dispatch(event domain.BaseDomainEvent) error {
	ed.mutex.RLock()
	listeners, ok := ed.listeners[event.EventName()]
	ed.mutex.RUnlock()

	if !ok || len(listeners) == 0 {
		ed.logger.Debugw("no listeners registered", "event", event.EventName())

		return nil
	}

	for _, listener := range listeners {
		if err := listener(event); err != nil {
			return err
		}
	}

	return nil
}

func (ed *eventDispatcher) Register(eventName string, listener func(event domain.BaseDomainEvent) error) {
	ed.mutex.Lock()
	defer ed.mutex.Unlock()

	if ed.listeners == nil {
		ed.listeners = make(map[string][]func(event domain.BaseDomainEvent) error)
	}

	ed.listeners[eventName] = append(ed.listeners[eventName], listener)
}
