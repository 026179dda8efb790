package notify

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

type PushSender struct {
	client *messaging.Client
}

func NewPushSender(ctx context.Context, credentialsFile string) (*PushSender, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("firebase init: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase messaging: %w", err)
	}

	return &PushSender{client: client}, nil
}

func (s *PushSender) Channel() string { return "push" }

func (s *PushSender) Send(ctx context.Context, to Recipient, msg Message) error {
	if to.DeviceToken == "" {
		return nil
	}

	_, err := s.client.Send(ctx, &messaging.Message{
		Token: to.DeviceToken,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
	})
	return err
}
