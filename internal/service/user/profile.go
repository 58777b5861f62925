package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/voyagewise-backend/internal/domain"
	"github.com/heartmarshall/voyagewise-backend/pkg/ctxutil"
)

// GetProfile returns the authenticated user's profile.
// Returns ErrUnauthorized if no username is found in context.
func (s *Service) GetProfile(ctx context.Context) (*domain.User, error) {
	username, ok := ctxutil.UsernameFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}

	return user, nil
}

// UpdateProfile replaces the authenticated user's email and full name.
// The username is immutable.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.FullName = strings.TrimSpace(input.FullName)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.users.UpdateProfile(ctx, current.ID, input.Email, input.FullName)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.String("user_id", user.ID.String()),
		slog.String("username", user.Username))

	return user, nil
}
