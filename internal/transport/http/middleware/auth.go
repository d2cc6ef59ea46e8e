package middleware

import (
	"strings"

	"github.com/iamcoreyg/dexo-docs/internal/api"

	"github.com/gofiber/fiber/v2"
)

// TokenCookie is the name of the credential cookie set by the /auth endpoint.
const TokenCookie = "app_token"

const bearerPrefix = "Bearer "

// AuthGate guards the API routes and the UI root with a single shared
// secret, accepted either as a bearer token or as the app_token cookie.
// Other paths (static assets, /auth, /healthz) pass through untouched.
func AuthGate(token string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		if path != "/" && path != "/api" && !strings.HasPrefix(path, "/api/") {
			return c.Next()
		}

		if extractToken(c) != token {
			return c.Status(fiber.StatusUnauthorized).JSON(api.ErrorResponse{Error: "Unauthorized"})
		}
		return c.Next()
	}
}

func extractToken(c *fiber.Ctx) string {
	if auth := c.Get(fiber.HeaderAuthorization); strings.HasPrefix(auth, bearerPrefix) {
		return strings.TrimPrefix(auth, bearerPrefix)
	}
	return parseCookies(c.Get(fiber.HeaderCookie))[TokenCookie]
}

// parseCookies splits a raw Cookie header into name/value pairs: segments
// on ';', name from value on the first '='. Whitespace is trimmed and a
// missing header yields an empty map.
func parseCookies(header string) map[string]string {
	cookies := make(map[string]string)
	for _, segment := range strings.Split(header, ";") {
		name, value, found := strings.Cut(segment, "=")
		if !found {
			continue
		}
		cookies[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}
	return cookies
}
