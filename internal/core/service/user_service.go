package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/labcel/storefront/internal/core/domain"
	"github.com/labcel/storefront/internal/core/ports"
)

const listUsersLimit = 1000

type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx, listUsersLimit)
}

func (s *UserService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

func (s *UserService) UpdateUser(ctx context.Context, actor *domain.User, userID string, upd domain.UserUpdate) (*domain.User, error) {
	if upd.Empty() {
		return nil, domain.ErrEmptyUpdate
	}
	if upd.Role != nil {
		if !domain.ValidRole(*upd.Role) {
			return nil, domain.ErrInvalidRole
		}
		if isSelf(actor, userID) {
			return nil, domain.ErrOwnRoleChange
		}
	}
	user, err := s.repo.Update(ctx, userID, upd, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

func (s *UserService) ChangeRole(ctx context.Context, actor *domain.User, userID, role string) error {
	if role == "" {
		role = domain.RoleCustomer
	}
	if !domain.ValidRole(role) {
		return domain.ErrInvalidRole
	}
	if isSelf(actor, userID) {
		return domain.ErrOwnRoleChange
	}
	if _, err := s.repo.Update(ctx, userID, domain.UserUpdate{Role: &role}, time.Now().UTC()); err != nil {
		return fmt.Errorf("change role: %w", err)
	}
	s.log.Info().Str("user_id", userID).Str("role", role).Msg("user role changed")
	return nil
}

func isSelf(actor *domain.User, userID string) bool {
	return actor != nil && actor.UserID == userID
}
