package domain

import "time"

const (
	ChannelEmail    = "email"
	ChannelWhatsApp = "whatsapp"

	NotificationPending = "pending"
	NotificationSent    = "sent"
	NotificationFailed  = "failed"

	NotifyOrderCreated   = "order_created"
	NotifyStatusUpdate   = "status_update"
	NotifyDesignProposal = "design_proposal"
)

// Notification is one delivery attempt for a single (order, channel, recipient).
// It is written once and never updated.
type Notification struct {
	NotificationID    string     `json:"notification_id" bson:"notification_id"`
	OrderID           string     `json:"order_id" bson:"order_id"`
	RecipientEmail    string     `json:"recipient_email,omitempty" bson:"recipient_email,omitempty"`
	RecipientWhatsApp string     `json:"recipient_whatsapp,omitempty" bson:"recipient_whatsapp,omitempty"`
	Type              string     `json:"notification_type" bson:"notification_type"`
	Message           string     `json:"message" bson:"message"`
	Status            string     `json:"status" bson:"status"`
	Channel           string     `json:"channel" bson:"channel"`
	Error             string     `json:"error,omitempty" bson:"error,omitempty"`
	CreatedAt         time.Time  `json:"created_at" bson:"created_at"`
	SentAt            *time.Time `json:"sent_at,omitempty" bson:"sent_at,omitempty"`
}

// Recipient returns the address used for the notification's channel.
func (n *Notification) Recipient() string {
	if n.Channel == ChannelWhatsApp {
		return n.RecipientWhatsApp
	}
	return n.RecipientEmail
}
