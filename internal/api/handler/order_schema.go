package handler

import (
	"time"

	"github.com/labcel/storefront/internal/core/domain"
)

type cartItemRequest struct {
	ProductID       string  `json:"product_id"        validate:"required"`
	ProductName     string  `json:"product_name"      validate:"required"`
	Quantity        int     `json:"quantity"          validate:"gt=0"`
	Price           float64 `json:"price"             validate:"gte=0"`
	PhoneBrand      string  `json:"phone_brand"`
	PhoneModel      string  `json:"phone_model"`
	CustomImageURL  string  `json:"custom_image_url"`
	PreviewImageURL string  `json:"preview_image_url"`
}

type createOrderRequest struct {
	Items            []cartItemRequest `json:"items"             validate:"required,min=1,dive"`
	CustomerName     string            `json:"customer_name"     validate:"required"`
	CustomerEmail    string            `json:"customer_email"    validate:"required,email"`
	CustomerPhone    string            `json:"customer_phone"    validate:"required"`
	CustomerWhatsApp string            `json:"customer_whatsapp"`
	ShippingAddress  string            `json:"shipping_address"  validate:"required"`
	PaymentMethod    string            `json:"payment_method"    validate:"omitempty,oneof=transferencia recoger_tienda"`
	Notes            string            `json:"notes"`
}

type createOrderResponse struct {
	OrderID string             `json:"order_id"`
	Total   float64            `json:"total"`
	Status  domain.OrderStatus `json:"status"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Notes  string `json:"notes"`
}

type updateStatusResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// designProposalRequest leaves the channel flags nil when omitted so both
// default to true.
type designProposalRequest struct {
	OrderID          string `json:"order_id"`
	ProposalImageURL string `json:"proposal_image_url" validate:"required"`
	Message          string `json:"message"            validate:"required"`
	SendViaWhatsApp  *bool  `json:"send_via_whatsapp"`
	SendViaEmail     *bool  `json:"send_via_email"`
}

type statusHistoryItem struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Notes     string    `json:"notes"`
}

// trackOrderResponse is the public tracking view. It must never carry
// customer contact data or items.
type trackOrderResponse struct {
	OrderID       string              `json:"order_id"`
	Status        string              `json:"status"`
	StatusHistory []statusHistoryItem `json:"status_history"`
	CreatedAt     time.Time           `json:"created_at"`
}
