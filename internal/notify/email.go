package notify

import (
	"context"

	"github.com/resend/resend-go/v2"
)

type EmailSender struct {
	client *resend.Client
	from   string
}

func NewEmailSender(apiKey, from string) *EmailSender {
	return &EmailSender{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

func (s *EmailSender) Channel() string { return "email" }

func (s *EmailSender) Send(ctx context.Context, to Recipient, msg Message) error {
	if to.Email == "" {
		return nil
	}

	_, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to.Email},
		Subject: msg.Title,
		Text:    msg.Body,
	})
	return err
}
