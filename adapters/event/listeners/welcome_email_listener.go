package listeners

import (
	"context"
	"fmt"

	"github.com/AccountHub/backend/domain"
	"github.com/AccountHub/backend/domain/account"
	"github.com/AccountHub/backend/domain/mailer"
)

type WelcomeEmailListener struct {
	mailerService mailer.Service
}

func NewWelcomeEmailListener(mailerService mailer.Service) WelcomeEmailListener {
	return WelcomeEmailListener{mailerService: mailerService}
}

func (l WelcomeEmailListener) EventHandler(event domain.BaseDomainEvent) error {
	accountCreatedEvent, ok := event.(account.AccountCreatedEvent)
	if !ok {
		return nil
	}

	return l.mailerService.Send(context.Background(), mailer.Mail{
		To:      accountCreatedEvent.Email,
		Subject: "Welcome to AccountHub",
		Body:    fmt.Sprintf("Hi %s, your account is ready.", accountCreatedEvent.Name),
	})
}
