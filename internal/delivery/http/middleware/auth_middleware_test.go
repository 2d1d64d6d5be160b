package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	mockusecase "bazaar/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, telegramID string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/stores", nil)
	if telegramID != "" {
		req.Header.Set(IdentityHeader, telegramID)
	}

	return e.NewContext(req, httptest.NewRecorder())
}

func TestRequireUser_SetsUserOnContext(t *testing.T) {
	userUC := new(mockusecase.UserUsecase)
	user := &entity.User{ID: 7, TelegramID: "12345"}
	userUC.On("ResolveUser", mock.Anything, "12345").Return(user, nil)

	c := newAuthTestContext(t, "12345")
	var resolved *entity.User
	next := func(c echo.Context) error {
		resolved = CurrentUser(c)

		return nil
	}

	err := NewAuthMiddleware(userUC).RequireUser(next)(c)
	require.NoError(t, err)
	assert.Equal(t, user, resolved)
}

func TestRequireUser_MissingHeaderIsUnauthenticated(t *testing.T) {
	userUC := new(mockusecase.UserUsecase)
	userUC.On("ResolveUser", mock.Anything, "").Return(nil, domainerrors.ErrUnauthenticated)

	c := newAuthTestContext(t, "")
	err := NewAuthMiddleware(userUC).RequireUser(func(echo.Context) error { return nil })(c)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
}

func TestRequireUser_BannedIsForbidden(t *testing.T) {
	userUC := new(mockusecase.UserUsecase)
	userUC.On("ResolveUser", mock.Anything, "666").Return(nil, domainerrors.ErrUserAccessDenied)

	c := newAuthTestContext(t, "666")
	err := NewAuthMiddleware(userUC).RequireUser(func(echo.Context) error { return nil })(c)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode())
}

func TestRequireAdmin_SetsAdminOnContext(t *testing.T) {
	userUC := new(mockusecase.UserUsecase)
	admin := &entity.Admin{ID: 2, TelegramID: "999"}
	userUC.On("ResolveAdmin", mock.Anything, "999").Return(admin, nil)

	c := newAuthTestContext(t, "999")
	var resolved *entity.Admin
	next := func(c echo.Context) error {
		resolved = CurrentAdmin(c)

		return nil
	}

	err := NewAuthMiddleware(userUC).RequireAdmin(next)(c)
	require.NoError(t, err)
	assert.Equal(t, admin, resolved)
}

func TestRequireUserOrAdmin_AdminWins(t *testing.T) {
	userUC := new(mockusecase.UserUsecase)
	admin := &entity.Admin{ID: 2, TelegramID: "999"}
	userUC.On("ResolveAdmin", mock.Anything, "999").Return(admin, nil)
	userUC.On("ResolveOptionalUser", mock.Anything, "999").Return(nil)

	c := newAuthTestContext(t, "999")
	err := NewAuthMiddleware(userUC).RequireUserOrAdmin(func(echo.Context) error { return nil })(c)

	require.NoError(t, err)
	assert.NotNil(t, CurrentAdmin(c))
	assert.Nil(t, CurrentUser(c))
	userUC.AssertNotCalled(t, "ResolveUser", mock.Anything, mock.Anything)
}

func TestRequireUserOrAdmin_FallsBackToUser(t *testing.T) {
	userUC := new(mockusecase.UserUsecase)
	user := &entity.User{ID: 7, TelegramID: "12345"}
	userUC.On("ResolveAdmin", mock.Anything, "12345").Return(nil, domainerrors.ErrAdminAccessRequired)
	userUC.On("ResolveUser", mock.Anything, "12345").Return(user, nil)

	c := newAuthTestContext(t, "12345")
	err := NewAuthMiddleware(userUC).RequireUserOrAdmin(func(echo.Context) error { return nil })(c)

	require.NoError(t, err)
	assert.Nil(t, CurrentAdmin(c))
	assert.Equal(t, user, CurrentUser(c))
}

func TestOptionalIdentity_HeaderResolvesUser(t *testing.T) {
	userUC := new(mockusecase.UserUsecase)
	user := &entity.User{ID: 7, TelegramID: "12345"}
	userUC.On("ResolveOptionalUser", mock.Anything, "12345").Return(user)
	userUC.On("ResolveAdmin", mock.Anything, "12345").Return(nil, domainerrors.ErrAdminAccessRequired)

	c := newAuthTestContext(t, "12345")
	err := NewAuthMiddleware(userUC).OptionalIdentity(func(echo.Context) error { return nil })(c)

	require.NoError(t, err)
	assert.Equal(t, user, CurrentUser(c))
	assert.Nil(t, CurrentAdmin(c))
}

func TestOptionalIdentity_MissingHeaderContinues(t *testing.T) {
	userUC := new(mockusecase.UserUsecase)

	c := newAuthTestContext(t, "")
	called := false
	err := NewAuthMiddleware(userUC).OptionalIdentity(func(echo.Context) error {
		called = true

		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, called)
	assert.Nil(t, CurrentUser(c))
	userUC.AssertNotCalled(t, "ResolveOptionalUser", mock.Anything, mock.Anything)
}
