package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/trip-dashboard/internal/usecase"
)

const (
	// SessionCookie - имя cookie с ID сессии дашборда
	SessionCookie = "dashboard_session"

	sessionLocalsKey = "dashboard_session"
)

// Session находит или создает сессию дашборда по cookie.
// Cookie выдается на каждый запрос, чтобы ее MaxAge продлевался вместе с idleTTL.
func Session(sessions *usecase.SessionUseCase, idleTTL time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, _ := sessions.GetOrCreate(c.Cookies(SessionCookie))
		cookie := &fiber.Cookie{
			Name:     SessionCookie,
			Value:    sess.ID,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		}
		if idleTTL > 0 {
			cookie.MaxAge = int(idleTTL.Seconds())
		}
		c.Cookie(cookie)

		c.Locals(sessionLocalsKey, sess)
		return c.Next()
	}
}

// SessionFromCtx возвращает сессию, установленную Session
func SessionFromCtx(c *fiber.Ctx) (*usecase.DashboardSession, bool) {
	sess, ok := c.Locals(sessionLocalsKey).(*usecase.DashboardSession)
	return sess, ok && sess != nil
}
