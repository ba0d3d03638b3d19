package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"campus-helper/internal/domain"
	"campus-helper/internal/service/auth"
)

const (
	UserIDContextKey    = "user_id"
	UserEmailContextKey = "user_email"
)

// AuthRequired rejects requests without a valid bearer token.
func AuthRequired(authService auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, email, ok := bearerUser(c, authService)
		if !ok {
			return domain.ErrSignInRequired
		}

		c.Locals(UserIDContextKey, userID)
		c.Locals(UserEmailContextKey, email)

		return c.Next()
	}
}

func bearerUser(c *fiber.Ctx, authService auth.Service) (uuid.UUID, string, bool) {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return uuid.Nil, "", false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return uuid.Nil, "", false
	}

	claims, err := authService.ValidateAccessToken(parts[1])
	if err != nil {
		return uuid.Nil, "", false
	}
	return claims.UserID, claims.Email, true
}

func GetCurrentUserID(c *fiber.Ctx) uuid.UUID {
	userID, ok := c.Locals(UserIDContextKey).(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return userID
}

// GetUserID returns the signed-in user or ErrSignInRequired.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	userID := GetCurrentUserID(c)
	if userID == uuid.Nil {
		return uuid.Nil, domain.ErrSignInRequired
	}
	return userID, nil
}
