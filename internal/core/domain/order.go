package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the current lifecycle state of an order. The state machine is
// permissive: admins may write any value, the constants below are the known ones.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pendiente"
	StatusConfirmed  OrderStatus = "confirmado"
	StatusInProgress OrderStatus = "en_proceso"
	StatusShipped    OrderStatus = "enviado"
	StatusDelivered  OrderStatus = "entregado"
	StatusCancelled  OrderStatus = "cancelado"
)

const (
	PaymentTransfer     = "transferencia"
	PaymentStorePickup  = "recoger_tienda"
	initialHistoryNotes = "Pedido creado"
)

var statusMessages = map[OrderStatus]string{
	StatusConfirmed:  "Tu pedido ha sido confirmado. Estamos preparando tu diseño.",
	StatusInProgress: "Tu pedido está en proceso de fabricación.",
	StatusShipped:    "¡Tu pedido ha sido enviado! Pronto lo recibirás.",
	StatusDelivered:  "Tu pedido ha sido entregado. ¡Gracias por tu compra!",
	StatusCancelled:  "Tu pedido ha sido cancelado. Contáctanos si tienes dudas.",
}

// CustomerMessage returns the canned customer-facing text for a status.
func (s OrderStatus) CustomerMessage() string {
	if msg, ok := statusMessages[s]; ok {
		return msg
	}
	return "Tu pedido ha sido actualizado: " + string(s)
}

// CartItem is a by-value snapshot of a product at order time.
type CartItem struct {
	ProductID       string  `json:"product_id" bson:"product_id"`
	ProductName     string  `json:"product_name" bson:"product_name"`
	Quantity        int     `json:"quantity" bson:"quantity"`
	Price           float64 `json:"price" bson:"price"`
	PhoneBrand      string  `json:"phone_brand,omitempty" bson:"phone_brand,omitempty"`
	PhoneModel      string  `json:"phone_model,omitempty" bson:"phone_model,omitempty"`
	CustomImageURL  string  `json:"custom_image_url,omitempty" bson:"custom_image_url,omitempty"`
	PreviewImageURL string  `json:"preview_image_url,omitempty" bson:"preview_image_url,omitempty"`
}

// Subtotal sums price × quantity over items, rounded to cents.
func Subtotal(items []CartItem) float64 {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return sum.Round(2).InexactFloat64()
}

// StatusHistoryEntry records one status change. The history is append-only.
type StatusHistoryEntry struct {
	Status    OrderStatus `json:"status" bson:"status"`
	Timestamp time.Time   `json:"timestamp" bson:"timestamp"`
	Notes     string      `json:"notes" bson:"notes"`
}

// Order is the aggregate root of the workflow.
type Order struct {
	OrderID             string               `json:"order_id" bson:"order_id"`
	UserID              *string              `json:"user_id" bson:"user_id"`
	Items               []CartItem           `json:"items" bson:"items"`
	CustomerName        string               `json:"customer_name" bson:"customer_name"`
	CustomerEmail       string               `json:"customer_email" bson:"customer_email"`
	CustomerPhone       string               `json:"customer_phone" bson:"customer_phone"`
	CustomerWhatsApp    string               `json:"customer_whatsapp,omitempty" bson:"customer_whatsapp,omitempty"`
	ShippingAddress     string               `json:"shipping_address" bson:"shipping_address"`
	PaymentMethod       string               `json:"payment_method" bson:"payment_method"`
	Notes               string               `json:"notes,omitempty" bson:"notes,omitempty"`
	Subtotal            float64              `json:"subtotal" bson:"subtotal"`
	Total               float64              `json:"total" bson:"total"`
	Status              OrderStatus          `json:"status" bson:"status"`
	StatusHistory       []StatusHistoryEntry `json:"status_history" bson:"status_history"`
	DesignProposalSent  bool                 `json:"design_proposal_sent" bson:"design_proposal_sent"`
	DesignProposalImage string               `json:"design_proposal_image,omitempty" bson:"design_proposal_image,omitempty"`
	DesignApproved      bool                 `json:"design_approved" bson:"design_approved"`
	AdminNotes          string               `json:"admin_notes,omitempty" bson:"admin_notes,omitempty"`
	CreatedAt           time.Time            `json:"created_at" bson:"created_at"`
	UpdatedAt           time.Time            `json:"updated_at" bson:"updated_at"`
}

// NewOrder builds a pending order with computed totals and the initial history entry.
func NewOrder(userID *string, items []CartItem, now time.Time) *Order {
	now = now.UTC()
	subtotal := Subtotal(items)
	return &Order{
		OrderID:  NewOrderID(now),
		UserID:   userID,
		Items:    items,
		Subtotal: subtotal,
		Total:    subtotal,
		Status:   StatusPending,
		StatusHistory: []StatusHistoryEntry{{
			Status:    StatusPending,
			Timestamp: now,
			Notes:     initialHistoryNotes,
		}},
		PaymentMethod: PaymentTransfer,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// OwnedBy reports whether the order belongs to the given user id.
func (o *Order) OwnedBy(userID string) bool {
	return o.UserID != nil && *o.UserID == userID
}

// CanBeReadBy enforces order ownership: admins read everything, others only their own.
func (o *Order) CanBeReadBy(u *User) bool {
	if u == nil {
		return false
	}
	return u.IsAdmin() || o.OwnedBy(u.UserID)
}

// OrderTracking is the narrowed public projection: no customer data, no items.
type OrderTracking struct {
	OrderID       string               `json:"order_id" bson:"order_id"`
	Status        OrderStatus          `json:"status" bson:"status"`
	StatusHistory []StatusHistoryEntry `json:"status_history" bson:"status_history"`
	CreatedAt     time.Time            `json:"created_at" bson:"created_at"`
}
