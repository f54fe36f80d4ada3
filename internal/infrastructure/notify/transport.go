// Package notify holds the delivery transports for customer and admin
// notifications. No real provider is wired yet: the transports log the
// message and report success, which is what the delivery log records.
package notify

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/labcel/storefront/internal/core/domain"
)

// LogTransport writes each message to the logger instead of a provider.
type LogTransport struct {
	channel string
	log     zerolog.Logger
}

func NewEmailTransport(log zerolog.Logger) *LogTransport {
	return &LogTransport{channel: domain.ChannelEmail, log: log}
}

func NewWhatsAppTransport(log zerolog.Logger) *LogTransport {
	return &LogTransport{channel: domain.ChannelWhatsApp, log: log}
}

func (t *LogTransport) Send(ctx context.Context, n domain.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.log.Info().
		Str("channel", t.channel).
		Str("order_id", n.OrderID).
		Str("recipient", n.Recipient()).
		Str("type", n.Type).
		Int("message_len", len(n.Message)).
		Msg("notification sent")
	return nil
}
