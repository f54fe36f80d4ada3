package ports

import (
	"context"

	"github.com/labcel/storefront/internal/core/domain"
)

// CartItemInput is one line of the checkout cart.
type CartItemInput struct {
	ProductID       string
	ProductName     string
	Quantity        int
	Price           float64
	PhoneBrand      string
	PhoneModel      string
	CustomImageURL  string
	PreviewImageURL string
}

// CustomerInput holds checkout contact and delivery details.
type CustomerInput struct {
	Name            string
	Email           string
	Phone           string
	WhatsApp        string
	ShippingAddress string
	PaymentMethod   string
	Notes           string
}

// CreateOrderInput carries all data needed to create an order.
// User is nil for guest checkout.
type CreateOrderInput struct {
	Items    []CartItemInput
	Customer CustomerInput
	User     *domain.User
}

// OrderResult is returned by the service after creating an order.
type OrderResult struct {
	OrderID string
	Total   float64
	Status  domain.OrderStatus
}

type ListOrdersInput struct {
	Viewer *domain.User
	Status string
}

type UpdateStatusInput struct {
	OrderID string
	Status  string
	Notes   string
}

// DesignProposalInput describes an artwork proposal sent to the customer.
type DesignProposalInput struct {
	OrderID     string
	ImageURL    string
	Message     string
	ViaEmail    bool
	ViaWhatsApp bool
}

// OrderService defines the order workflow use cases.
type OrderService interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*OrderResult, error)
	ListOrders(ctx context.Context, input ListOrdersInput) ([]*domain.Order, error)
	GetOrder(ctx context.Context, viewer *domain.User, orderID string) (*domain.Order, error)
	TrackOrder(ctx context.Context, orderID string) (*domain.OrderTracking, error)
	UpdateStatus(ctx context.Context, input UpdateStatusInput) error
	SendDesignProposal(ctx context.Context, input DesignProposalInput) error
	ApproveDesign(ctx context.Context, orderID string) error
}
