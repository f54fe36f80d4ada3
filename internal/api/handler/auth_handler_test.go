package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/labcel/storefront/internal/api/middleware"
	"github.com/labcel/storefront/internal/core/domain"
	"github.com/labcel/storefront/internal/core/ports"
)

type stubAuthService struct {
	exchangeFn func(ctx context.Context, sessionID string) (*ports.LoginResult, error)
	loggedOut  []string
}

func (s *stubAuthService) Exchange(ctx context.Context, sessionID string) (*ports.LoginResult, error) {
	return s.exchangeFn(ctx, sessionID)
}

func (s *stubAuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	return nil, domain.ErrInvalidSession
}

func (s *stubAuthService) Logout(ctx context.Context, token string) error {
	s.loggedOut = append(s.loggedOut, token)
	return nil
}

func TestAuthHandler_CreateSession_SetsCookie(t *testing.T) {
	stub := &stubAuthService{
		exchangeFn: func(ctx context.Context, sessionID string) (*ports.LoginResult, error) {
			if sessionID != "ext-123" {
				t.Fatalf("unexpected session id: %q", sessionID)
			}
			return &ports.LoginResult{
				User:      customerUser,
				Token:     "tok-abc",
				ExpiresAt: time.Now().Add(domain.SessionTTL),
			}, nil
		},
	}
	h := NewAuthHandler(stub, ProductionCookies())

	c, rec := newContext(http.MethodPost, "/api/auth/session", `{"session_id":"ext-123"}`)
	if err := h.CreateSession(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decodeBody(t, rec)
	if resp["session_token"] != "tok-abc" || resp["email"] != customerUser.Email || resp["role"] != domain.RoleCustomer {
		t.Fatalf("unexpected payload: %+v", resp)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cookies))
	}
	ck := cookies[0]
	if ck.Name != middleware.SessionCookie || ck.Value != "tok-abc" {
		t.Fatalf("unexpected cookie: %+v", ck)
	}
	if !ck.HttpOnly || !ck.Secure || ck.SameSite != http.SameSiteNoneMode || ck.Path != "/" {
		t.Fatalf("unexpected cookie attributes: %+v", ck)
	}
	if ck.MaxAge != int(domain.SessionTTL.Seconds()) {
		t.Fatalf("expected max-age %d, got %d", int(domain.SessionTTL.Seconds()), ck.MaxAge)
	}
}

func TestAuthHandler_CreateSession_DevelopmentCookie(t *testing.T) {
	stub := &stubAuthService{
		exchangeFn: func(ctx context.Context, sessionID string) (*ports.LoginResult, error) {
			return &ports.LoginResult{User: customerUser, Token: "tok"}, nil
		},
	}
	h := NewAuthHandler(stub, DevelopmentCookies())

	c, rec := newContext(http.MethodPost, "/api/auth/session", `{"session_id":"x"}`)
	if err := h.CreateSession(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	ck := rec.Result().Cookies()[0]
	if ck.Secure || ck.SameSite != http.SameSiteLaxMode {
		t.Fatalf("development cookie must be Lax and not Secure: %+v", ck)
	}
}

func TestAuthHandler_CreateSession_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
		want error
	}{
		{"provider rejects", `{"session_id":"bad"}`, domain.ErrInvalidSession, domain.ErrUnauthenticated},
		{"missing id", `{}`, domain.ErrMissingSessionID, domain.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubAuthService{
				exchangeFn: func(ctx context.Context, sessionID string) (*ports.LoginResult, error) {
					return nil, tt.err
				},
			}
			h := NewAuthHandler(stub, DevelopmentCookies())

			c, rec := newContext(http.MethodPost, "/api/auth/session", tt.body)
			err := h.CreateSession(c)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if len(rec.Result().Cookies()) != 0 {
				t.Fatal("no cookie expected on failure")
			}
		})
	}
}

func TestAuthHandler_CreateSession_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		exchangeFn: func(ctx context.Context, sessionID string) (*ports.LoginResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub, DevelopmentCookies())

	c, _ := newContext(http.MethodPost, "/api/auth/session", "not-json")
	if err := h.CreateSession(c); !errors.Is(err, errInvalidBody) {
		t.Fatalf("expected invalid body error, got %v", err)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, DevelopmentCookies())

	c, rec := newContext(http.MethodGet, "/api/auth/me", "")
	if err := serveAs(customerUser, h.Me, c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if resp := decodeBody(t, rec); resp["user_id"] != customerUser.UserID {
		t.Fatalf("unexpected payload: %+v", resp)
	}

	c, _ = newContext(http.MethodGet, "/api/auth/me", "")
	if err := h.Me(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
}

func TestAuthHandler_Logout_RevokesAndClearsCookie(t *testing.T) {
	stub := &stubAuthService{}
	h := NewAuthHandler(stub, DevelopmentCookies())

	c, rec := newContext(http.MethodPost, "/api/auth/logout", "")
	c.Request().AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "tok-abc"})

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if len(stub.loggedOut) != 1 || stub.loggedOut[0] != "tok-abc" {
		t.Fatalf("expected tok-abc revoked, got %v", stub.loggedOut)
	}
	if resp := decodeBody(t, rec); resp["message"] != "Sesión cerrada" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	ck := rec.Result().Cookies()[0]
	if ck.Value != "" || ck.MaxAge >= 0 {
		t.Fatalf("cookie should be expired: %+v", ck)
	}
}
