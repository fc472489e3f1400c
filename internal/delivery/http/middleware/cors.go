package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORS - cross-origin access to the JSON API for the configured origins.
// An empty list means any origin. Credentials are only allowed for explicit
// origins; Fiber refuses a wildcard with credentials.
func CORS(allowOrigins string) fiber.Handler {
	origins := strings.TrimSpace(allowOrigins)
	if origins == "" {
		origins = "*"
	}

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,HEAD,POST,OPTIONS",
		AllowHeaders:     "Content-Type,Accept,Accept-Language",
		AllowCredentials: !strings.Contains(origins, "*"),
	})
}
