package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/voyagewise-backend/internal/domain"
	"github.com/heartmarshall/voyagewise-backend/pkg/ctxutil"
)

// SetUserRole changes the role of a user (admin only).
func (s *Service) SetUserRole(ctx context.Context, username string, role domain.UserRole) (*domain.User, error) {
	caller, ok := ctxutil.UsernameFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if !role.IsValid() {
		return nil, domain.NewValidationError("role", "invalid role: must be 'user' or 'admin'")
	}

	// Prevent admin from demoting themselves.
	if caller == username && role != domain.UserRoleAdmin {
		return nil, domain.NewValidationError("role", "cannot demote yourself")
	}

	user, err := s.users.UpdateRole(ctx, username, role)
	if err != nil {
		return nil, fmt.Errorf("user.SetUserRole: %w", err)
	}

	s.log.InfoContext(ctx, "user role updated",
		slog.String("target_username", username),
		slog.String("new_role", role.String()),
	)

	return user, nil
}

// ListUsers returns a page of users ordered by username plus the total
// count (admin only).
func (s *Service) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, int, error) {
	if _, ok := ctxutil.UsernameFromCtx(ctx); !ok {
		return nil, 0, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, 0, domain.ErrForbidden
	}

	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	users, err := s.users.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("user.ListUsers: %w", err)
	}

	total, err := s.users.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("user.CountUsers: %w", err)
	}

	return users, total, nil
}
