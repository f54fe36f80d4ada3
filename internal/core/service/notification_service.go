package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/labcel/storefront/internal/core/domain"
	"github.com/labcel/storefront/internal/core/ports"
)

const (
	adminFanoutLimit          = 100
	defaultNotificationsLimit = 50
	maxNotificationsLimit     = 200
)

// NotificationDispatcher records one notification per recipient channel and
// hands it to that channel's transport. It holds no per-call state, so
// concurrent dispatches for the same order do not interfere.
type NotificationDispatcher struct {
	repo     ports.NotificationRepository
	users    ports.UserRepository
	email    ports.Transport
	whatsapp ports.Transport
	log      zerolog.Logger
	now      func() time.Time
}

func NewNotificationDispatcher(
	repo ports.NotificationRepository,
	users ports.UserRepository,
	email ports.Transport,
	whatsapp ports.Transport,
	log zerolog.Logger,
) *NotificationDispatcher {
	return &NotificationDispatcher{
		repo:     repo,
		users:    users,
		email:    email,
		whatsapp: whatsapp,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Handle executes a task published by the order workflow.
func (d *NotificationDispatcher) Handle(ctx context.Context, task ports.NotificationTask) error {
	if task.Admins {
		return d.NotifyAdmins(ctx, task.OrderID, task.Type, task.Message)
	}
	_, err := d.Dispatch(ctx, task.OrderID, task.Type, task.Message, task.Email, task.WhatsApp)
	return err
}

// Dispatch sends message to each non-empty recipient and returns the records
// written. A failing channel does not stop the other one.
func (d *NotificationDispatcher) Dispatch(ctx context.Context, orderID, notificationType, message, email, whatsapp string) ([]*domain.Notification, error) {
	var (
		out  []*domain.Notification
		errs []error
	)
	if email != "" {
		n, err := d.deliver(ctx, orderID, notificationType, message, domain.ChannelEmail, email)
		if n != nil {
			out = append(out, n)
		}
		errs = append(errs, err)
	}
	if whatsapp != "" {
		n, err := d.deliver(ctx, orderID, notificationType, message, domain.ChannelWhatsApp, whatsapp)
		if n != nil {
			out = append(out, n)
		}
		errs = append(errs, err)
	}
	return out, errors.Join(errs...)
}

func (d *NotificationDispatcher) deliver(ctx context.Context, orderID, notificationType, message, channel, recipient string) (*domain.Notification, error) {
	n := domain.Notification{
		NotificationID: domain.NewNotificationID(),
		OrderID:        orderID,
		Type:           notificationType,
		Message:        message,
		Status:         domain.NotificationPending,
		Channel:        channel,
		CreatedAt:      d.now(),
	}
	transport := d.email
	if channel == domain.ChannelWhatsApp {
		n.RecipientWhatsApp = recipient
		transport = d.whatsapp
	} else {
		n.RecipientEmail = recipient
	}

	var sendErr error
	if transport == nil {
		sendErr = fmt.Errorf("no transport for channel %s", channel)
	} else {
		sendErr = transport.Send(ctx, n)
	}
	if sendErr != nil {
		n.Status = domain.NotificationFailed
		n.Error = sendErr.Error()
		d.log.Warn().Err(sendErr).Str("order_id", orderID).Str("channel", channel).Msg("notification delivery failed")
	} else {
		sentAt := d.now()
		n.Status = domain.NotificationSent
		n.SentAt = &sentAt
	}

	if err := d.repo.Insert(ctx, &n); err != nil {
		return nil, fmt.Errorf("record %s notification: %w", channel, err)
	}

	d.log.Info().
		Str("order_id", orderID).
		Str("channel", channel).
		Str("type", notificationType).
		Str("status", n.Status).
		Msg("notification recorded")
	return &n, nil
}

// NotifyAdmins dispatches message to every admin's email and WhatsApp.
func (d *NotificationDispatcher) NotifyAdmins(ctx context.Context, orderID, notificationType, message string) error {
	admins, err := d.users.ListByRole(ctx, domain.RoleAdmin, adminFanoutLimit)
	if err != nil {
		return fmt.Errorf("notify admins: %w", err)
	}
	var errs []error
	for _, admin := range admins {
		if _, err := d.Dispatch(ctx, orderID, notificationType, message, admin.Email, admin.WhatsAppNumber); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (d *NotificationDispatcher) ListRecent(ctx context.Context, limit int64) ([]*domain.Notification, error) {
	if limit <= 0 {
		limit = defaultNotificationsLimit
	}
	if limit > maxNotificationsLimit {
		limit = maxNotificationsLimit
	}
	return d.repo.ListRecent(ctx, limit)
}
