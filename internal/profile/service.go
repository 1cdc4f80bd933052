package profile

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/vantage-invest/vantage-admin/internal/shared"
)

// Service handles profile reads and the verified password change.
type Service struct {
	repo Repository
}

// NewService constructs a Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetProfile returns the user joined with role and branch. A missing user id
// is a validation failure; an id that matches no user returns nil without
// error so callers can distinguish the two.
func (s *Service) GetProfile(ctx context.Context, userID int64) (*Profile, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user id is required", shared.ErrValidation)
	}
	return s.repo.GetProfile(ctx, userID)
}

// ChangePassword verifies the current password against the stored hash and
// persists a fresh salted hash of the new one. No strength policy is applied
// here; callers may enforce their own.
func (s *Service) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	if userID <= 0 {
		return fmt.Errorf("%w: user id is required", shared.ErrValidation)
	}
	if currentPassword == "" {
		return fmt.Errorf("%w: current password is required", shared.ErrValidation)
	}
	if newPassword == "" {
		return fmt.Errorf("%w: new password is required", shared.ErrValidation)
	}

	creds, err := s.repo.GetCredentials(ctx, userID)
	if err != nil {
		return err
	}
	if creds == nil {
		return fmt.Errorf("%w: user %d", shared.ErrNotFound, userID)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(currentPassword)); err != nil {
		return shared.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, userID, string(hash))
}
