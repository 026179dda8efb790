package notify

import (
	"context"

	"go.uber.org/zap"

	"github.com/lanavaja/barber-platform/internal/config"
)

// FromConfig assembles a dispatcher with every channel that has
// credentials configured. A channel that fails to initialize is skipped,
// not fatal.
func FromConfig(cfg *config.Config, log *zap.Logger) *Dispatcher {
	var senders []Sender

	if cfg.FirebaseCredentialsFile != "" {
		push, err := NewPushSender(context.Background(), cfg.FirebaseCredentialsFile)
		if err != nil {
			log.Warn("push sender disabled", zap.Error(err))
		} else {
			senders = append(senders, push)
		}
	}

	if cfg.ResendAPIKey != "" {
		senders = append(senders, NewEmailSender(cfg.ResendAPIKey, cfg.EmailFrom))
	}

	if cfg.TwilioAccountSID != "" {
		senders = append(senders, NewSMSSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber))
	}

	return NewDispatcher(log, senders...)
}
