package services

import (
	"context"
	"errors"
	"fmt"

	"schoolconnect/internal/adapters/persistence/models"
	"schoolconnect/internal/adapters/persistence/repositories"
	"schoolconnect/internal/core/domain"
	"schoolconnect/internal/pkg/pagination"

	"go.uber.org/zap"
)

// AdminService serves the admin and MEO console
type AdminService struct {
	repos *repositories.Repositories
	log   *zap.Logger
}

// NewAdminService creates a new admin service
func NewAdminService(repos *repositories.Repositories, log *zap.Logger) *AdminService {
	return &AdminService{repos: repos, log: log}
}

// Stats aggregates portal-wide totals
func (s *AdminService) Stats(ctx context.Context) (*domain.AdminStats, error) {
	var (
		stats domain.AdminStats
		err   error
	)

	if stats.TotalSchools, err = s.repos.Schools.Count(ctx, nil); err != nil {
		return nil, fmt.Errorf("count schools: %w", err)
	}
	if stats.TotalUsers, err = s.repos.Users.Count(ctx, nil); err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	if stats.TotalAlumni, err = s.repos.Alumni.Count(ctx, nil); err != nil {
		return nil, fmt.Errorf("count alumni: %w", err)
	}
	if stats.TotalDonations, err = s.repos.Donations.Count(ctx, nil); err != nil {
		return nil, fmt.Errorf("count donations: %w", err)
	}
	completed := repositories.Filters{"payment_status": domain.PaymentCompleted}
	if stats.TotalDonationAmount, err = s.repos.Donations.Sum(ctx, "amount", completed); err != nil {
		return nil, fmt.Errorf("sum donations: %w", err)
	}
	pending := repositories.Filters{"approved": false, "role": string(domain.RoleAlumni)}
	if stats.PendingApprovals, err = s.repos.Users.Count(ctx, pending); err != nil {
		return nil, fmt.Errorf("count pending approvals: %w", err)
	}

	return &stats, nil
}

// ListUsers lists users, optionally by role, oldest first
func (s *AdminService) ListUsers(ctx context.Context, role string, page pagination.Params) ([]models.User, int64, error) {
	return s.repos.Users.List(ctx, query(filterOf(map[string]string{"role": role}), oldestFirst, page))
}

// ApproveUser marks a user approved. Approving twice is not an error.
func (s *AdminService) ApproveUser(ctx context.Context, approverID, userID string) (*models.User, error) {
	user, err := s.repos.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	if user.Approved {
		return user, nil
	}

	user.Approved = true
	if err := s.repos.Users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("user approved", zap.String("user_id", user.ID), zap.String("approved_by", approverID))
	return user, nil
}
