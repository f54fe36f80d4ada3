package domain

import (
	"errors"
	"regexp"
	"testing"
	"time"
)

func TestSubtotal(t *testing.T) {
	tests := []struct {
		name  string
		items []CartItem
		want  float64
	}{
		{"empty", nil, 0},
		{"single", []CartItem{{Price: 180, Quantity: 1}}, 180},
		{"quantity", []CartItem{{Price: 280, Quantity: 3}}, 840},
		{"cents do not drift", []CartItem{{Price: 0.1, Quantity: 3}, {Price: 0.2, Quantity: 1}}, 0.5},
		{"mixed", []CartItem{{Price: 180, Quantity: 2}, {Price: 280, Quantity: 1}}, 640},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Subtotal(tt.items); got != tt.want {
				t.Errorf("Subtotal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewOrder(t *testing.T) {
	loc := time.FixedZone("CST", -6*3600)
	now := time.Date(2024, 3, 9, 23, 30, 0, 0, loc)
	uid := "user_abc"

	o := NewOrder(&uid, []CartItem{{Price: 180, Quantity: 1}}, now)

	if matched := regexp.MustCompile(`^ORD-20240310-[0-9A-F]{6}$`).MatchString(o.OrderID); !matched {
		t.Errorf("order id %q does not use the UTC date", o.OrderID)
	}
	if o.Status != StatusPending {
		t.Errorf("expected pendiente, got %q", o.Status)
	}
	if o.Total != o.Subtotal || o.Total != 180 {
		t.Errorf("expected total 180, got subtotal=%v total=%v", o.Subtotal, o.Total)
	}
	if len(o.StatusHistory) != 1 || o.StatusHistory[0].Status != o.Status {
		t.Fatalf("unexpected history: %+v", o.StatusHistory)
	}
	if o.CreatedAt.Location() != time.UTC {
		t.Error("timestamps must be UTC")
	}
	if o.PaymentMethod != PaymentTransfer {
		t.Errorf("unexpected payment method %q", o.PaymentMethod)
	}
}

func TestOrder_CanBeReadBy(t *testing.T) {
	owner := "user_1"
	owned := &Order{UserID: &owner}
	guest := &Order{}

	admin := &User{UserID: "user_admin", Role: RoleAdmin}
	customer := &User{UserID: owner, Role: RoleCustomer}
	stranger := &User{UserID: "user_2", Role: RoleCustomer}

	cases := []struct {
		order *Order
		user  *User
		want  bool
	}{
		{owned, admin, true},
		{owned, customer, true},
		{owned, stranger, false},
		{owned, nil, false},
		{guest, admin, true},
		{guest, customer, false},
	}
	for i, c := range cases {
		if got := c.order.CanBeReadBy(c.user); got != c.want {
			t.Errorf("case %d: CanBeReadBy = %v, want %v", i, got, c.want)
		}
	}
}

func TestOrderStatus_CustomerMessage(t *testing.T) {
	if msg := StatusShipped.CustomerMessage(); msg != "¡Tu pedido ha sido enviado! Pronto lo recibirás." {
		t.Errorf("unexpected message %q", msg)
	}
	if msg := OrderStatus("pausado").CustomerMessage(); msg != "Tu pedido ha sido actualizado: pausado" {
		t.Errorf("unexpected fallback %q", msg)
	}
}

func TestSession_Expired(t *testing.T) {
	now := time.Now().UTC()
	s := &Session{ExpiresAt: now.Add(time.Minute)}
	if s.Expired(now) {
		t.Error("session should be live")
	}
	if !s.Expired(now.Add(time.Minute)) {
		t.Error("session should be expired at its expiry instant")
	}
	local := now.In(time.FixedZone("X", 5*3600))
	if s.Expired(local) {
		t.Error("comparison must not depend on the location")
	}
}

func TestErrorCategories(t *testing.T) {
	cases := map[error]error{
		ErrInvalidSession:   ErrUnauthenticated,
		ErrAdminRequired:    ErrForbidden,
		ErrOrderForbidden:   ErrForbidden,
		ErrOrderNotFound:    ErrNotFound,
		ErrImageNotFound:    ErrNotFound,
		ErrImageTooLarge:    ErrInvalidInput,
		ErrMissingSessionID: ErrInvalidInput,
	}
	for err, kind := range cases {
		if !errors.Is(err, kind) {
			t.Errorf("%v should match %v", err, kind)
		}
	}
	if errors.Is(ErrOrderNotFound, ErrForbidden) {
		t.Error("categories must not overlap")
	}
}

func TestNewIDs(t *testing.T) {
	patterns := map[string]string{
		NewUserID():         `^user_[0-9a-f]{12}$`,
		NewProductID():      `^prod_[0-9a-f]{8}$`,
		NewNotificationID(): `^notif_[0-9a-f]{8}$`,
		NewImageID():        `^img_[0-9a-f]{12}$`,
	}
	for id, pattern := range patterns {
		if !regexp.MustCompile(pattern).MatchString(id) {
			t.Errorf("id %q does not match %s", id, pattern)
		}
	}
}
