package middleware

import (
	"github.com/gofiber/fiber/v2"

	"campus-helper/internal/pkg/i18n"
)

const LocaleContextKey = "locale"

// Locale returns the request locale, resolving Accept-Language once.
func Locale(c *fiber.Ctx) string {
	if locale, ok := c.Locals(LocaleContextKey).(string); ok {
		return locale
	}
	locale := i18n.Resolve(c.Get(fiber.HeaderAcceptLanguage))
	c.Locals(LocaleContextKey, locale)
	return locale
}

// T translates key into the request locale.
func T(c *fiber.Ctx, key string) string {
	return i18n.Translate(Locale(c), key)
}
