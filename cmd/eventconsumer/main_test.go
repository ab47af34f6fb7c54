package main

import (
	"context"
	"errors"
	"testing"

	"github.com/AccountHub/backend/adapters/event/listeners"
	"github.com/AccountHub/backend/domain/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePubSub struct {
	messages []pubsub.Message
	err      error
	received int
	closed   bool
}

func (f *fakePubSub) ReceiveMessage(context.Context) (pubsub.Message, error) {
	if f.received >= len(f.messages) {
		return pubsub.Message{}, f.err
	}

	msg := f.messages[f.received]
	f.received++

	return msg, nil
}

func (f *fakePubSub) Close() error {
	f.closed = true

	return nil
}

type fakePubSubService struct {
	ps      *fakePubSub
	channel string
}

func (f *fakePubSubService) Publish(context.Context, string, interface{}) error {
	return nil
}

func (f *fakePubSubService) Subscribe(_ context.Context, channel string) pubsub.PubSub {
	f.channel = channel

	return f.ps
}

func TestListenConsumesUntilReceiveFails(t *testing.T) {
	terminal := errors.New("connection closed")
	ps := &fakePubSub{
		messages: []pubsub.Message{
			{Channel: listeners.IntegrationChannel, Payload: `{"event":"AccountCreated","payload":{"ID":"1"}}`},
			{Channel: listeners.IntegrationChannel, Payload: `not json`},
			{Channel: listeners.IntegrationChannel, Payload: `{"event":"AccountEmailChanged","payload":{"ID":"1"}}`},
		},
		err: terminal,
	}
	pubsubService := &fakePubSubService{ps: ps}

	s := &service{
		applog:        zap.NewNop().Sugar(),
		pubsubService: pubsubService,
	}

	err := s.listen(context.Background())

	require.ErrorIs(t, err, terminal)
	assert.Equal(t, listeners.IntegrationChannel, pubsubService.channel)
	// a bad payload is logged and skipped, not fatal
	assert.Equal(t, 3, ps.received)
	assert.True(t, ps.closed)
}
