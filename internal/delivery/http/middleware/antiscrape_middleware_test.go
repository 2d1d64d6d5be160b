package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "bazaar/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAntiScrape(t *testing.T) {
	tests := []struct {
		name      string
		userAgent string
		blocked   bool
	}{
		{"browser passes", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36", false},
		{"telegram bot passes", "TelegramBot (like TwitterBot)", false},
		{"empty agent passes", "", false},
		{"curl blocked", "curl/8.0.1", true},
		{"python requests blocked", "python-requests/2.31.0", true},
		{"scrapy blocked", "Scrapy/2.11.0 (+https://scrapy.org)", true},
		{"wget blocked", "Wget/1.21", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/stores", nil)
			if tt.userAgent != "" {
				req.Header.Set("User-Agent", tt.userAgent)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			called := false
			next := func(c echo.Context) error {
				called = true

				return nil
			}

			err := AntiScrape(next)(c)
			if tt.blocked {
				require.Error(t, err)
				var appErr domainerrors.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, http.StatusForbidden, appErr.HTTPCode())
				assert.False(t, called)
			} else {
				assert.NoError(t, err)
				assert.True(t, called)
			}
		})
	}
}
