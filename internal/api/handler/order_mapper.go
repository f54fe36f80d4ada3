package handler

import (
	"github.com/labcel/storefront/internal/core/domain"
	"github.com/labcel/storefront/internal/core/ports"
)

func toCreateOrderInput(req createOrderRequest, user *domain.User) ports.CreateOrderInput {
	items := make([]ports.CartItemInput, len(req.Items))
	for i, it := range req.Items {
		items[i] = ports.CartItemInput{
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
	return ports.CreateOrderInput{
		Items: items,
		Customer: ports.CustomerInput{
			Name:            req.CustomerName,
			Email:           req.CustomerEmail,
			Phone:           req.CustomerPhone,
			WhatsApp:        req.CustomerWhatsApp,
			ShippingAddress: req.ShippingAddress,
			PaymentMethod:   req.PaymentMethod,
			Notes:           req.Notes,
		},
		User: user,
	}
}

func toTrackOrderResponse(t *domain.OrderTracking) trackOrderResponse {
	history := make([]statusHistoryItem, len(t.StatusHistory))
	for i, h := range t.StatusHistory {
		history[i] = statusHistoryItem{
			Status:    string(h.Status),
			Timestamp: h.Timestamp,
			Notes:     h.Notes,
		}
	}
	return trackOrderResponse{
		OrderID:       t.OrderID,
		Status:        string(t.Status),
		StatusHistory: history,
		CreatedAt:     t.CreatedAt,
	}
}

func toDesignProposalInput(orderID string, req designProposalRequest) ports.DesignProposalInput {
	return ports.DesignProposalInput{
		OrderID:     orderID,
		ImageURL:    req.ProposalImageURL,
		Message:     req.Message,
		ViaEmail:    boolOr(req.SendViaEmail, true),
		ViaWhatsApp: boolOr(req.SendViaWhatsApp, true),
	}
}
