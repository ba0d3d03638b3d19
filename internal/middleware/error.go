package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"campus-helper/internal/domain"
	"campus-helper/internal/pkg/i18n"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	TraceID string `json:"trace_id,omitempty"`
}

func ErrorHandler(c *fiber.Ctx, err error) error {
	locale := Locale(c)
	code := fiber.StatusInternalServerError
	errorCode := "INTERNAL_ERROR"
	message := i18n.Translate(locale, "errors.internal")

	var (
		fe  *fiber.Error
		ve  *domain.ValidationError
		pe  *domain.ParticipantError
		se  *domain.SchemaError
		ste *domain.StoreError
	)

	switch {
	case errors.As(err, &fe):
		code = fe.Code
		message = fe.Message
		errorCode = fiberErrorCode(code)
	case errors.Is(err, domain.ErrSignInRequired):
		code = fiber.StatusUnauthorized
		errorCode = "UNAUTHORIZED"
		message = i18n.Translate(locale, domain.ErrSignInRequired.Key)
	case errors.As(err, &ve):
		code = fiber.StatusUnprocessableEntity
		errorCode = "VALIDATION_ERROR"
		message = i18n.Translate(locale, ve.Key)
	case errors.Is(err, domain.ErrPostNotFound),
		errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrCommentNotFound):
		code = fiber.StatusNotFound
		errorCode = "NOT_FOUND"
		message = i18n.Translate(locale, "errors.not_found")
	case errors.As(err, &pe):
		code = fiber.StatusBadGateway
		errorCode = "CONTACT_FAILED"
		message = i18n.Translate(locale, "errors.contact_failed")
	case errors.As(err, &se):
		errorCode = "STORE_ERROR"
		message = i18n.Translate(locale, "errors.store")
	case errors.As(err, &ste):
		errorCode = "STORE_ERROR"
		message = i18n.TranslateOr(locale, "store."+ste.Op, "errors.store")
	}

	traceID := uuid.New().String()[:8]

	if code >= fiber.StatusInternalServerError {
		log.Error().
			Err(err).
			Str("trace_id", traceID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("request failed")
	}

	return c.Status(code).JSON(ErrorResponse{
		Code:    errorCode,
		Message: message,
		TraceID: traceID,
	})
}

func fiberErrorCode(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusUnauthorized:
		return "UNAUTHORIZED"
	case fiber.StatusForbidden:
		return "FORBIDDEN"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusConflict:
		return "CONFLICT"
	case fiber.StatusUnprocessableEntity:
		return "VALIDATION_ERROR"
	}
	return "INTERNAL_ERROR"
}

func BadRequest(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusBadRequest, message)
}

func Unauthorized(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusUnauthorized, message)
}
