package notify

import (
	"context"

	"go.uber.org/zap"
)

type Recipient struct {
	Name        string
	Email       string
	Phone       string
	DeviceToken string
}

type Message struct {
	Title string
	Body  string
}

// Sender delivers a message over one channel. A recipient without the
// channel's address is skipped silently.
type Sender interface {
	Channel() string
	Send(ctx context.Context, to Recipient, msg Message) error
}

// Dispatcher fans a message out to every configured channel. Delivery is
// single-attempt per channel; failures are logged and swallowed, the
// calling operation never fails because of them.
type Dispatcher struct {
	senders []Sender
	log     *zap.Logger
}

func NewDispatcher(log *zap.Logger, senders ...Sender) *Dispatcher {
	return &Dispatcher{senders: senders, log: log}
}

func (d *Dispatcher) Notify(ctx context.Context, to Recipient, msg Message) {
	for _, s := range d.senders {
		if err := s.Send(ctx, to, msg); err != nil {
			d.log.Error("notification send failed",
				zap.String("channel", s.Channel()),
				zap.String("recipient", to.Name),
				zap.Error(err),
			)
		}
	}
}
