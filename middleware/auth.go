package middleware

import (
	"errors"
	"log"

	"github.com/YashSharma412/Todo-app-full-stack-ejs/session"
	"github.com/gofiber/fiber/v2"
)

// sessionKey is the Locals key the loaded session is stored under.
const sessionKey = "session"

// LoadSession resolves the session cookie against the store and attaches the
// session to the request context. Requests without a live session pass
// through untouched; RequireAuth decides whether that matters.
func LoadSession(store session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(session.CookieName)
		if token != "" {
			sess, err := store.Get(c.UserContext(), token)
			switch {
			case err == nil:
				c.Locals(sessionKey, sess)
			case !errors.Is(err, session.ErrNotFound):
				log.Printf("session lookup failed: %v", err)
			}
		}
		return c.Next()
	}
}

// RequireAuth gates protected routes on an authenticated session.
func RequireAuth(c *fiber.Ctx) error {
	sess, ok := c.Locals(sessionKey).(session.Session)
	if !ok || !sess.IsAuth {
		return c.Status(401).JSON(fiber.Map{
			"status":  "401",
			"message": "Session expired/not found please login again",
		})
	}
	return c.Next()
}

// CurrentSession returns the session attached by LoadSession.
func CurrentSession(c *fiber.Ctx) (session.Session, bool) {
	sess, ok := c.Locals(sessionKey).(session.Session)
	return sess, ok
}
