package handlers_fiber

import (
	"time"

	"github.com/iamcoreyg/dexo-docs/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

const cookieLifetime = 365 * 24 * time.Hour

// GetAuth exchanges a ?token=X query parameter for the long-lived
// credential cookie and redirects to the UI root. This endpoint is the
// only unauthenticated way in; a wrong token gets a plain-text 401.
func (h *Handler) GetAuth(c *fiber.Ctx) error {
	if c.Query("token") != h.token {
		return c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookie,
		Value:    h.token,
		Path:     "/",
		MaxAge:   int(cookieLifetime.Seconds()),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
	return c.Redirect("/", fiber.StatusFound)
}
