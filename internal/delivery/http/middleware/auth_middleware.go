package middleware

import (
	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// IdentityHeader carries the caller's external Telegram identifier.
const IdentityHeader = "X-Telegram-Id"

const (
	userContextKey  = "currentUser"
	adminContextKey = "currentAdmin"
)

// AuthMiddleware resolves the identity header into a user or admin. A
// missing header on gated routes maps to 401, a present but unusable
// identity to 403; the usecase owns that distinction.
type AuthMiddleware struct {
	userUC usecase.UserUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(userUC usecase.UserUsecase) *AuthMiddleware {
	return &AuthMiddleware{userUC: userUC}
}

// RequireUser resolves the header to an active, non-banned user and stores
// it on the request context.
func (m *AuthMiddleware) RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := m.userUC.ResolveUser(c.Request().Context(), c.Request().Header.Get(IdentityHeader))
		if err != nil {
			return errors.WithStack(err)
		}
		c.Set(userContextKey, user)

		return next(c)
	}
}

// RequireAdmin resolves the header to an active admin and stores it on the
// request context.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		admin, err := m.userUC.ResolveAdmin(c.Request().Context(), c.Request().Header.Get(IdentityHeader))
		if err != nil {
			return errors.WithStack(err)
		}
		c.Set(adminContextKey, admin)

		return next(c)
	}
}

// RequireUserOrAdmin resolves the header to either an admin or an active
// user, trying the admin registry first. Ownership checks downstream rely on
// which of the two ends up on the context.
func (m *AuthMiddleware) RequireUserOrAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		telegramID := c.Request().Header.Get(IdentityHeader)

		if admin, err := m.userUC.ResolveAdmin(c.Request().Context(), telegramID); err == nil {
			c.Set(adminContextKey, admin)
			// Admins that also own stores keep their user identity.
			if user := m.userUC.ResolveOptionalUser(c.Request().Context(), telegramID); user != nil {
				c.Set(userContextKey, user)
			}

			return next(c)
		}

		user, err := m.userUC.ResolveUser(c.Request().Context(), telegramID)
		if err != nil {
			return errors.WithStack(err)
		}
		c.Set(userContextKey, user)

		return next(c)
	}
}

// OptionalIdentity resolves the header when present into a user and, when
// the same identity is also an admin, into an admin. It never rejects the
// request.
func (m *AuthMiddleware) OptionalIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		telegramID := c.Request().Header.Get(IdentityHeader)
		if telegramID == "" {
			return next(c)
		}

		if user := m.userUC.ResolveOptionalUser(c.Request().Context(), telegramID); user != nil {
			c.Set(userContextKey, user)
		}
		if admin, err := m.userUC.ResolveAdmin(c.Request().Context(), telegramID); err == nil {
			c.Set(adminContextKey, admin)
		}

		return next(c)
	}
}

// CurrentUser returns the user resolved by RequireUser or OptionalIdentity,
// or nil.
func CurrentUser(c echo.Context) *entity.User {
	user, _ := c.Get(userContextKey).(*entity.User)

	return user
}

// CurrentAdmin returns the admin resolved by RequireAdmin or
// OptionalIdentity, or nil.
func CurrentAdmin(c echo.Context) *entity.Admin {
	admin, _ := c.Get(adminContextKey).(*entity.Admin)

	return admin
}
