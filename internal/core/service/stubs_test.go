package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/labcel/storefront/internal/core/domain"
	"github.com/labcel/storefront/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// Orders
// ---------------------------------------------------------------------------

type stubOrderRepo struct {
	byID      map[string]*domain.Order
	createErr error
	lastList  ports.ListOrdersFilter
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{byID: make(map[string]*domain.Order)}
}

func cloneOrder(o *domain.Order) *domain.Order {
	clone := *o
	clone.Items = append([]domain.CartItem(nil), o.Items...)
	clone.StatusHistory = append([]domain.StatusHistoryEntry(nil), o.StatusHistory...)
	return &clone
}

func (r *stubOrderRepo) Create(_ context.Context, o *domain.Order) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.byID[o.OrderID] = cloneOrder(o)
	return nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id string) (*domain.Order, error) {
	o, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return cloneOrder(o), nil
}

func (r *stubOrderRepo) FindTracking(_ context.Context, id string) (*domain.OrderTracking, error) {
	o, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return &domain.OrderTracking{
		OrderID:       o.OrderID,
		Status:        o.Status,
		StatusHistory: append([]domain.StatusHistoryEntry(nil), o.StatusHistory...),
		CreatedAt:     o.CreatedAt,
	}, nil
}

func (r *stubOrderRepo) List(_ context.Context, f ports.ListOrdersFilter) ([]*domain.Order, error) {
	r.lastList = f
	var out []*domain.Order
	for _, o := range r.byID {
		if f.UserID != "" && !o.OwnedBy(f.UserID) {
			continue
		}
		if f.Status != "" && string(o.Status) != f.Status {
			continue
		}
		out = append(out, cloneOrder(o))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// AppendStatus mirrors the $set + $push update.
func (r *stubOrderRepo) AppendStatus(_ context.Context, id string, e domain.StatusHistoryEntry) error {
	o, ok := r.byID[id]
	if !ok {
		return domain.ErrOrderNotFound
	}
	o.Status = e.Status
	o.StatusHistory = append(o.StatusHistory, e)
	o.UpdatedAt = e.Timestamp
	return nil
}

func (r *stubOrderRepo) MarkDesignProposalSent(_ context.Context, id, imageRef string, now time.Time) error {
	o, ok := r.byID[id]
	if !ok {
		return domain.ErrOrderNotFound
	}
	o.DesignProposalSent = true
	o.DesignProposalImage = imageRef
	o.UpdatedAt = now
	return nil
}

func (r *stubOrderRepo) MarkDesignApproved(_ context.Context, id string, now time.Time) error {
	o, ok := r.byID[id]
	if !ok {
		return domain.ErrOrderNotFound
	}
	o.DesignApproved = true
	o.UpdatedAt = now
	return nil
}

type recordingPublisher struct {
	tasks []ports.NotificationTask
}

func (p *recordingPublisher) Publish(task ports.NotificationTask) {
	p.tasks = append(p.tasks, task)
}

// ---------------------------------------------------------------------------
// Users and sessions
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	mu        sync.Mutex
	users     map[string]*domain.User
	refreshed []string
	listErr   error
}

func newStubUserRepo(users ...*domain.User) *stubUserRepo {
	r := &stubUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		clone := *u
		r.users[u.UserID] = &clone
	}
	return r
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *u
	r.users[u.UserID] = &clone
	return nil
}

func (r *stubUserRepo) RefreshProfile(_ context.Context, id, name, picture string, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Name, u.Picture, u.UpdatedAt = name, picture, now
	r.refreshed = append(r.refreshed, id)
	return nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, upd domain.UserUpdate, now time.Time) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Phone != nil {
		u.Phone = *upd.Phone
	}
	if upd.WhatsAppNumber != nil {
		u.WhatsAppNumber = *upd.WhatsAppNumber
	}
	if upd.Role != nil {
		u.Role = *upd.Role
	}
	u.UpdatedAt = now
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) List(_ context.Context, limit int64) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.User
	for _, u := range r.users {
		if int64(len(out)) == limit {
			break
		}
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubUserRepo) ListByRole(_ context.Context, role string, limit int64) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*domain.User
	for _, u := range r.users {
		if u.Role != role || int64(len(out)) == limit {
			continue
		}
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

type stubSessionRepo struct {
	byToken map[string]*domain.Session
	finds   int
}

func newStubSessionRepo() *stubSessionRepo {
	return &stubSessionRepo{byToken: make(map[string]*domain.Session)}
}

func (r *stubSessionRepo) Create(_ context.Context, s *domain.Session) error {
	clone := *s
	r.byToken[s.Token] = &clone
	return nil
}

func (r *stubSessionRepo) FindByToken(_ context.Context, token string) (*domain.Session, error) {
	r.finds++
	s, ok := r.byToken[token]
	if !ok {
		return nil, domain.ErrInvalidSession
	}
	clone := *s
	return &clone, nil
}

func (r *stubSessionRepo) Delete(_ context.Context, token string) error {
	delete(r.byToken, token)
	return nil
}

func (r *stubSessionRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	var n int64
	for token, s := range r.byToken {
		if s.Expired(now) {
			delete(r.byToken, token)
			n++
		}
	}
	return n, nil
}

type stubSessionCache struct {
	entries map[string]string
	ttls    map[string]time.Duration
	getErr  error
}

func newStubSessionCache() *stubSessionCache {
	return &stubSessionCache{entries: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (c *stubSessionCache) Get(_ context.Context, token string) (string, error) {
	if c.getErr != nil {
		return "", c.getErr
	}
	return c.entries[token], nil
}

func (c *stubSessionCache) Set(_ context.Context, token, userID string, ttl time.Duration) error {
	c.entries[token] = userID
	c.ttls[token] = ttl
	return nil
}

func (c *stubSessionCache) Delete(_ context.Context, token string) error {
	delete(c.entries, token)
	return nil
}

// ---------------------------------------------------------------------------
// Notifications
// ---------------------------------------------------------------------------

type stubNotificationRepo struct {
	mu        sync.Mutex
	inserted  []domain.Notification
	insertErr error
	lastLimit int64
}

func (r *stubNotificationRepo) Insert(_ context.Context, n *domain.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.insertErr != nil {
		return r.insertErr
	}
	r.inserted = append(r.inserted, *n)
	return nil
}

func (r *stubNotificationRepo) ListRecent(_ context.Context, limit int64) ([]*domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastLimit = limit
	var out []*domain.Notification
	for i := len(r.inserted) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		n := r.inserted[i]
		out = append(out, &n)
	}
	return out, nil
}

func (r *stubNotificationRepo) snapshot() []domain.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Notification(nil), r.inserted...)
}

type stubTransport struct {
	mu   sync.Mutex
	sent []domain.Notification
	err  error
}

func (t *stubTransport) Send(_ context.Context, n domain.Notification) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.err != nil {
		return t.err
	}
	t.sent = append(t.sent, n)
	return nil
}
