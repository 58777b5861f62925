package middleware

import (
	"context"

	"github.com/heartmarshall/voyagewise-backend/internal/domain"
	"github.com/heartmarshall/voyagewise-backend/pkg/ctxutil"
)

// RequireAuth returns domain.ErrUnauthorized if the context carries no principal.
// Use in REST handlers, not as HTTP middleware.
func RequireAuth(ctx context.Context) error {
	if _, ok := ctxutil.UsernameFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	return nil
}

// RequireAdmin returns domain.ErrUnauthorized for anonymous requests and
// domain.ErrForbidden if the principal is not an admin.
func RequireAdmin(ctx context.Context) error {
	if err := RequireAuth(ctx); err != nil {
		return err
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}
