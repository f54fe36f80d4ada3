package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/labcel/storefront/internal/core/domain"
	"github.com/labcel/storefront/internal/core/ports"
)

// StatsService computes the admin dashboard from the live store on every call.
type StatsService struct {
	repo ports.StatsRepository
	now  func() time.Time
}

func NewStatsService(repo ports.StatsRepository) *StatsService {
	return &StatsService{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (s *StatsService) Stats(ctx context.Context) (*domain.Stats, error) {
	now := s.now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var st domain.Stats
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		st.TotalOrders, err = s.repo.CountOrders(ctx)
		return err
	})
	g.Go(func() (err error) {
		st.OrdersByStatus, err = s.repo.CountOrdersByStatus(ctx)
		return err
	})
	g.Go(func() (err error) {
		st.OrdersToday, err = s.repo.CountOrdersSince(ctx, todayStart)
		return err
	})
	g.Go(func() (err error) {
		st.TotalRevenue, err = s.repo.RevenueExcluding(ctx, domain.StatusCancelled)
		return err
	})
	g.Go(func() (err error) {
		st.TotalUsers, err = s.repo.CountUsers(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("admin stats: %w", err)
	}

	if st.OrdersByStatus == nil {
		st.OrdersByStatus = map[string]int64{}
	}
	st.PendingOrders = st.OrdersByStatus[string(domain.StatusPending)]
	st.CompletedOrders = st.OrdersByStatus[string(domain.StatusDelivered)]
	return &st, nil
}
