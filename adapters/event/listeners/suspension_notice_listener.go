package listeners

import (
	"context"

	"github.com/AccountHub/backend/domain"
	"github.com/AccountHub/backend/domain/account"
	"github.com/AccountHub/backend/domain/mailer"
)

type SuspensionNoticeListener struct {
	mailerService mailer.Service
}

func NewSuspensionNoticeListener(mailerService mailer.Service) SuspensionNoticeListener {
	return SuspensionNoticeListener{mailerService: mailerService}
}

func (l SuspensionNoticeListener) EventHandler(event domain.BaseDomainEvent) error {
	accountSuspendedEvent, ok := event.(account.AccountSuspendedEvent)
	if !ok {
		return nil
	}

	return l.mailerService.Send(context.Background(), mailer.Mail{
		To:      accountSuspendedEvent.Email,
		Subject: "Your account has been suspended",
		Body:    "Your account has been suspended. Contact support if you believe this is a mistake.",
	})
}
