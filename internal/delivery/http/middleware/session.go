package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/manara-web/internal/usecase"
)

const sessionLocalsKey = "session"

// Session attaches the browser session named by the cookie, issuing a new
// cookie when the session had to be created under a fresh id.
func Session(sessions *usecase.SessionManager, cookieName string, ttl time.Duration, secure bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		current := c.Cookies(cookieName)
		s := sessions.Acquire(c.UserContext(), current)

		if s.ID() != current {
			c.Cookie(&fiber.Cookie{
				Name:     cookieName,
				Value:    s.ID(),
				Path:     "/",
				MaxAge:   int(ttl.Seconds()),
				HTTPOnly: true,
				Secure:   secure,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}

		c.Locals(sessionLocalsKey, s)
		return c.Next()
	}
}

// CurrentSession returns the session attached by Session.
func CurrentSession(c *fiber.Ctx) *usecase.Session {
	s, _ := c.Locals(sessionLocalsKey).(*usecase.Session)
	return s
}
