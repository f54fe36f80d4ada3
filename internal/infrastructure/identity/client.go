package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/labcel/storefront/internal/core/domain"
)

const (
	sessionHeader  = "X-Session-ID"
	defaultTimeout = 10 * time.Second
	retryBackoff   = 500 * time.Millisecond
)

// Client exchanges an identity-provider session id for the user's profile.
type Client struct {
	url        string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient returns a Client calling GET url with the session id header.
func NewClient(url string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		log:        log.With().Str("adapter", "identity").Logger(),
	}
}

type sessionDataResponse struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// Exchange returns domain.ErrInvalidSession for any non-200 answer. Transport
// failures are returned wrapped so they surface as server errors.
func (c *Client) Exchange(ctx context.Context, sessionID string) (*domain.ExternalIdentity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("identity request: %w", err)
	}
	req.Header.Set(sessionHeader, sessionID)
	req.Header.Set("Accept", "application/json")

	resp, err := c.doWithRetry(ctx, req)
	if err != nil {
		c.log.Error().Err(err).Msg("identity provider unreachable")
		return nil, fmt.Errorf("identity provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn().Int("status", resp.StatusCode).Msg("identity provider rejected session")
		return nil, domain.ErrInvalidSession
	}

	var body sessionDataResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.log.Error().Err(err).Msg("identity provider returned invalid json")
		return nil, domain.ErrInvalidSession
	}

	return &domain.ExternalIdentity{Email: body.Email, Name: body.Name, Picture: body.Picture}, nil
}

// doWithRetry retries once on network errors or 5xx answers.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)
	if err == nil && resp.StatusCode < http.StatusInternalServerError {
		return resp, nil
	}
	if resp != nil {
		resp.Body.Close()
	}

	select {
	case <-time.After(retryBackoff):
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return c.httpClient.Do(req)
}
