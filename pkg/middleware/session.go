package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
)

const SessionCookie = "sid"

const localSessionID = "sessionID"

// Session gives every client a stable anonymous session id, used to keep
// chat conversations apart. The id outlives the request as a map key, so it is
// copied out of the pooled request buffer.
func Session(lifetime time.Duration, secure bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := utils.CopyString(c.Cookies(SessionCookie))
		if _, err := uuid.Parse(sid); err != nil {
			sid = uuid.NewString()
			c.Cookie(&fiber.Cookie{
				Name:     SessionCookie,
				Value:    sid,
				Path:     "/",
				Expires:  time.Now().Add(lifetime),
				HTTPOnly: true,
				Secure:   secure,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}

		c.Locals(localSessionID, sid)
		return c.Next()
	}
}

func SessionID(c *fiber.Ctx) string {
	sid, _ := c.Locals(localSessionID).(string)
	return sid
}
