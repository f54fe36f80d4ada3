package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/labcel/storefront/internal/core/domain"
	"github.com/labcel/storefront/internal/core/ports"
)

type stubStatsService struct {
	stats *domain.Stats
	err   error
}

func (s stubStatsService) Stats(ctx context.Context) (*domain.Stats, error) {
	return s.stats, s.err
}

type stubNotificationService struct {
	limit int64
}

func (s *stubNotificationService) Handle(ctx context.Context, task ports.NotificationTask) error {
	return nil
}

func (s *stubNotificationService) Dispatch(ctx context.Context, orderID, notificationType, message, email, whatsapp string) ([]*domain.Notification, error) {
	return nil, nil
}

func (s *stubNotificationService) NotifyAdmins(ctx context.Context, orderID, notificationType, message string) error {
	return nil
}

func (s *stubNotificationService) ListRecent(ctx context.Context, limit int64) ([]*domain.Notification, error) {
	s.limit = limit
	return []*domain.Notification{}, nil
}

func TestAdminHandler_Stats(t *testing.T) {
	h := NewAdminHandler(stubStatsService{stats: &domain.Stats{
		TotalOrders:    10,
		PendingOrders:  3,
		OrdersByStatus: map[string]int64{"pendiente": 3, "entregado": 7},
		TotalRevenue:   1250.5,
	}}, &stubNotificationService{})

	c, rec := newContext(http.MethodGet, "/api/admin/stats", "")
	if err := h.Stats(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	resp := decodeBody(t, rec)
	if resp["total_orders"] != float64(10) || resp["total_revenue"] != 1250.5 {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAdminHandler_Stats_Error(t *testing.T) {
	boom := errors.New("boom")
	h := NewAdminHandler(stubStatsService{err: boom}, &stubNotificationService{})

	c, _ := newContext(http.MethodGet, "/api/admin/stats", "")
	if err := h.Stats(c); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestAdminHandler_Notifications_Limit(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  int64
	}{
		{"absent", "", 0},
		{"explicit", "?limit=20", 20},
		{"large passes through", "?limit=10000", 10000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubNotificationService{}
			h := NewAdminHandler(stubStatsService{}, svc)

			c, _ := newContext(http.MethodGet, "/api/admin/notifications"+tt.query, "")
			if err := h.Notifications(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if svc.limit != tt.want {
				t.Fatalf("expected limit %d, got %d", tt.want, svc.limit)
			}
		})
	}
}

func TestAdminHandler_Notifications_BadLimit(t *testing.T) {
	for _, q := range []string{"?limit=abc", "?limit=0", "?limit=-5"} {
		h := NewAdminHandler(stubStatsService{}, &stubNotificationService{})
		c, _ := newContext(http.MethodGet, "/api/admin/notifications"+q, "")
		if err := h.Notifications(c); err == nil {
			t.Fatalf("%s: expected error", q)
		}
	}
}
