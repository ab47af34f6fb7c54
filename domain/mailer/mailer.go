package mailer

import "context"

type Mail struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type Service interface {
	Send(ctx context.Context, mail Mail) error
}
