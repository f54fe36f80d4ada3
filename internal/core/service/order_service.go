package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/labcel/storefront/internal/core/domain"
	"github.com/labcel/storefront/internal/core/ports"
)

const listOrdersLimit = 500

// OrderService owns the order lifecycle: creation, status changes and the
// design proposal / approval gate. Notifications are published, never awaited.
type OrderService struct {
	repo      ports.OrderRepository
	publisher ports.NotificationPublisher
	log       zerolog.Logger
	now       func() time.Time
}

func NewOrderService(repo ports.OrderRepository, publisher ports.NotificationPublisher, log zerolog.Logger) *OrderService {
	return &OrderService{
		repo:      repo,
		publisher: publisher,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// CreateOrder snapshots the cart into a new pending order and schedules the
// admin broadcast and the customer confirmation.
func (s *OrderService) CreateOrder(ctx context.Context, input ports.CreateOrderInput) (*ports.OrderResult, error) {
	if len(input.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	items := make([]domain.CartItem, len(input.Items))
	for i, it := range input.Items {
		items[i] = domain.CartItem{
			ProductID:       it.ProductID,
			ProductName:     it.ProductName,
			Quantity:        it.Quantity,
			Price:           it.Price,
			PhoneBrand:      it.PhoneBrand,
			PhoneModel:      it.PhoneModel,
			CustomImageURL:  it.CustomImageURL,
			PreviewImageURL: it.PreviewImageURL,
		}
	}

	var userID *string
	if input.User != nil {
		id := input.User.UserID
		userID = &id
	}

	order := domain.NewOrder(userID, items, s.now())
	c := input.Customer
	order.CustomerName = c.Name
	order.CustomerEmail = c.Email
	order.CustomerPhone = c.Phone
	order.CustomerWhatsApp = c.WhatsApp
	order.ShippingAddress = c.ShippingAddress
	order.Notes = c.Notes
	if c.PaymentMethod != "" {
		order.PaymentMethod = c.PaymentMethod
	}

	if err := s.repo.Create(ctx, order); err != nil {
		s.log.Error().Err(err).Msg("failed to create order")
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.log.Info().
		Str("order_id", order.OrderID).
		Float64("total", order.Total).
		Int("items", len(items)).
		Msg("order created")

	s.publisher.Publish(ports.NotificationTask{
		OrderID: order.OrderID,
		Type:    domain.NotifyOrderCreated,
		Message: fmt.Sprintf("Nuevo pedido #%s\nCliente: %s\nTotal: $%.2f\nProductos: %d",
			order.OrderID, order.CustomerName, order.Total, len(items)),
		Admins: true,
	})
	s.publisher.Publish(ports.NotificationTask{
		OrderID: order.OrderID,
		Type:    domain.NotifyOrderCreated,
		Message: fmt.Sprintf("¡Gracias por tu pedido #%s!\nTotal: $%.2f\nTe contactaremos pronto para confirmar tu diseño.",
			order.OrderID, order.Total),
		Email:    order.CustomerEmail,
		WhatsApp: order.CustomerWhatsApp,
	})

	return &ports.OrderResult{OrderID: order.OrderID, Total: order.Total, Status: order.Status}, nil
}

// ListOrders returns every order for admins and only the viewer's own otherwise.
func (s *OrderService) ListOrders(ctx context.Context, input ports.ListOrdersInput) ([]*domain.Order, error) {
	if input.Viewer == nil {
		return nil, domain.ErrUnauthenticated
	}
	filter := ports.ListOrdersFilter{Status: input.Status, Limit: listOrdersLimit}
	if !input.Viewer.IsAdmin() {
		filter.UserID = input.Viewer.UserID
	}
	orders, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// GetOrder enforces ownership: non-admins may only read their own orders.
func (s *OrderService) GetOrder(ctx context.Context, viewer *domain.User, orderID string) (*domain.Order, error) {
	if viewer == nil {
		return nil, domain.ErrUnauthenticated
	}
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.CanBeReadBy(viewer) {
		return nil, domain.ErrOrderForbidden
	}
	return order, nil
}

func (s *OrderService) TrackOrder(ctx context.Context, orderID string) (*domain.OrderTracking, error) {
	return s.repo.FindTracking(ctx, orderID)
}

// UpdateStatus appends a history entry, sets the current status, and notifies
// the customer. Any status value is accepted.
func (s *OrderService) UpdateStatus(ctx context.Context, input ports.UpdateStatusInput) error {
	if input.Status == "" {
		return fmt.Errorf("update status: %w: status required", domain.ErrInvalidInput)
	}

	order, err := s.repo.FindByID(ctx, input.OrderID)
	if err != nil {
		return err
	}

	status := domain.OrderStatus(input.Status)
	entry := domain.StatusHistoryEntry{
		Status:    status,
		Timestamp: s.now(),
		Notes:     input.Notes,
	}
	if err := s.repo.AppendStatus(ctx, order.OrderID, entry); err != nil {
		return fmt.Errorf("update status: %w", err)
	}

	s.log.Info().
		Str("order_id", order.OrderID).
		Str("from", string(order.Status)).
		Str("to", input.Status).
		Msg("order status updated")

	s.publisher.Publish(ports.NotificationTask{
		OrderID:  order.OrderID,
		Type:     domain.NotifyStatusUpdate,
		Message:  fmt.Sprintf("Pedido #%s\n%s", order.OrderID, status.CustomerMessage()),
		Email:    order.CustomerEmail,
		WhatsApp: order.CustomerWhatsApp,
	})
	return nil
}

// SendDesignProposal records the proposal and sends it on each selected channel
// that has a usable recipient.
func (s *OrderService) SendDesignProposal(ctx context.Context, input ports.DesignProposalInput) error {
	order, err := s.repo.FindByID(ctx, input.OrderID)
	if err != nil {
		return err
	}

	if err := s.repo.MarkDesignProposalSent(ctx, order.OrderID, input.ImageURL, s.now()); err != nil {
		return fmt.Errorf("send design proposal: %w", err)
	}

	message := fmt.Sprintf("Propuesta de diseño para tu pedido #%s\n\n%s\n\nResponde para aprobar o solicitar cambios.",
		order.OrderID, input.Message)

	if input.ViaEmail && order.CustomerEmail != "" {
		s.publisher.Publish(ports.NotificationTask{
			OrderID: order.OrderID,
			Type:    domain.NotifyDesignProposal,
			Message: message,
			Email:   order.CustomerEmail,
		})
	}
	if input.ViaWhatsApp && order.CustomerWhatsApp != "" {
		s.publisher.Publish(ports.NotificationTask{
			OrderID:  order.OrderID,
			Type:     domain.NotifyDesignProposal,
			Message:  message,
			WhatsApp: order.CustomerWhatsApp,
		})
	}

	s.log.Info().Str("order_id", order.OrderID).Msg("design proposal sent")
	return nil
}

// ApproveDesign flips design_approved; there is no way back.
func (s *OrderService) ApproveDesign(ctx context.Context, orderID string) error {
	if err := s.repo.MarkDesignApproved(ctx, orderID, s.now()); err != nil {
		return fmt.Errorf("approve design: %w", err)
	}
	s.log.Info().Str("order_id", orderID).Msg("design approved")
	return nil
}
