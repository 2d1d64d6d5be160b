package middleware

import (
	"strings"

	domainerrors "bazaar/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// scraperAgents is the fixed denylist applied to public catalog reads.
var scraperAgents = []string{
	"curl",
	"wget",
	"python-requests",
	"scrapy",
	"go-http-client",
	"httpclient",
	"axios",
	"libwww",
}

// AntiScrape rejects requests from known scraper user agents with 403.
// Browsers and the bot collaborator pass through untouched.
func AntiScrape(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		agent := strings.ToLower(c.Request().UserAgent())
		for _, blocked := range scraperAgents {
			if strings.Contains(agent, blocked) {
				return domainerrors.ErrForbidden.WithDetails("automated access is not allowed")
			}
		}

		return next(c)
	}
}
