package mailhub

import (
	"context"
	"fmt"
	"net/url"

	"github.com/AccountHub/backend/domain/mailer"
	"github.com/AccountHub/backend/pkg/config"
	"github.com/go-resty/resty/v2"
)

// MailHub talks to the outbound mail gateway over HTTP.
type MailHub struct {
	sender string
	client *resty.Client
}

func NewMailHub(cfg *config.Config) (*MailHub, error) {
	u, err := url.Parse(cfg.Mailer.Endpoint)
	if err != nil {
		return nil, err
	}

	return &MailHub{
		sender: cfg.Mailer.Sender,
		client: resty.New().
			SetBaseURL(u.String()).
			SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.Mailer.APIKey)),
	}, nil
}

func (m *MailHub) Send(ctx context.Context, mail mailer.Mail) error {
	resp, err := m.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(SendMailRequest{
			From:    m.sender,
			To:      mail.To,
			Subject: mail.Subject,
			Body:    mail.Body,
		}).
		Post("/api/internal/mails")
	if err != nil {
		return err
	}

	if resp.IsError() {
		return fmt.Errorf("failed to send mail: %s", resp.Status())
	}

	return nil
}
