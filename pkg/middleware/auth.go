package middleware

import (
	"strings"

	"nyaay-saathi/pkg/auth"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const TokenCookie = "token"

const (
	localUserID = "userID"
	localEmail  = "email"
	localName   = "name"
)

// tokenFromRequest prefers the session cookie and falls back to a bearer token.
func tokenFromRequest(c *fiber.Ctx) string {
	if token := c.Cookies(TokenCookie); token != "" {
		return token
	}

	token := c.Get("Authorization")
	if strings.HasPrefix(token, "Bearer ") {
		return strings.TrimPrefix(token, "Bearer ")
	}
	return token
}

// AuthMiddleware rejects requests without a valid session token, answering
// with the given body. Claims are stored in the request locals.
func AuthMiddleware(jwtManager *auth.JWTManager, logger *zap.Logger, unauthorized fiber.Map) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := tokenFromRequest(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(unauthorized)
		}

		claims, err := jwtManager.ValidateToken(token)
		if err != nil {
			logger.Warn("Invalid token", zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(unauthorized)
		}

		c.Locals(localUserID, claims.UserID)
		c.Locals(localEmail, claims.Email)
		c.Locals(localName, claims.Name)

		return c.Next()
	}
}

// CurrentUser returns the identity stored by AuthMiddleware.
func CurrentUser(c *fiber.Ctx) (userID, email, name string) {
	userID, _ = c.Locals(localUserID).(string)
	email, _ = c.Locals(localEmail).(string)
	name, _ = c.Locals(localName).(string)
	return userID, email, name
}
