package middleware_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-helper/internal/domain"
	"campus-helper/internal/middleware"
	"campus-helper/internal/pkg/i18n"
	"campus-helper/internal/service/auth"
)

func TestMain(m *testing.M) {
	if err := i18n.LoadTranslations(filepath.Join("..", "..", "locales")); err != nil {
		panic(err)
	}
	i18n.SetDefaultLocale("ro")
	m.Run()
}

func decode(t *testing.T, body io.Reader) middleware.ErrorResponse {
	t.Helper()
	var resp middleware.ErrorResponse
	require.NoError(t, json.NewDecoder(body).Decode(&resp))
	return resp
}

func TestErrorHandler(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{"sign in", domain.ErrSignInRequired, fiber.StatusUnauthorized, "UNAUTHORIZED", "Please sign in to continue."},
		{"validation", domain.NewValidationError("rating", "rating.out_of_range"), fiber.StatusUnprocessableEntity, "VALIDATION_ERROR", "Rating must be between 1 and 5."},
		{"not found", fmt.Errorf("load: %w", domain.ErrItemNotFound), fiber.StatusNotFound, "NOT_FOUND", "Resource not found."},
		{"participant", &domain.ParticipantError{ConversationID: uuid.New(), Err: errors.New("denied")}, fiber.StatusBadGateway, "CONTACT_FAILED", "We could not start the conversation."},
		{"schema", &domain.SchemaError{Table: domain.CommentsTable, Err: errors.New("missing")}, fiber.StatusInternalServerError, "STORE_ERROR", "Something went wrong. Please try again."},
		{"store op", &domain.StoreError{Op: "comments.load", Err: errors.New("timeout")}, fiber.StatusInternalServerError, "STORE_ERROR", "Could not load comments."},
		{"store unknown op", &domain.StoreError{Op: "jobs.list", Err: errors.New("timeout")}, fiber.StatusInternalServerError, "STORE_ERROR", "Something went wrong. Please try again."},
		{"fiber", fiber.NewError(fiber.StatusBadRequest, "Invalid item ID"), fiber.StatusBadRequest, "BAD_REQUEST", "Invalid item ID"},
		{"unknown", errors.New("boom"), fiber.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})
			app.Get("/", func(c *fiber.Ctx) error { return tc.err })

			req := httptest.NewRequest(fiber.MethodGet, "/", nil)
			req.Header.Set(fiber.HeaderAcceptLanguage, "en-US,en;q=0.9")
			resp, err := app.Test(req)
			require.NoError(t, err)

			assert.Equal(t, tc.status, resp.StatusCode)
			body := decode(t, resp.Body)
			assert.Equal(t, tc.code, body.Code)
			assert.Equal(t, tc.message, body.Message)
			assert.Len(t, body.TraceID, 8)
		})
	}
}

func TestErrorHandler_DefaultLocale(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})
	app.Get("/", func(c *fiber.Ctx) error { return domain.ErrSignInRequired })

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)

	body := decode(t, resp.Body)
	assert.Equal(t, i18n.Translate("ro", "auth.sign_in_required"), body.Message)
	assert.NotEqual(t, "auth.sign_in_required", body.Message)
}

func TestAuthRequired(t *testing.T) {
	authService := auth.NewService("test-secret")
	userID := uuid.New()

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})
	app.Get("/me", middleware.AuthRequired(authService), func(c *fiber.Ctx) error {
		id, err := middleware.GetUserID(c)
		if err != nil {
			return err
		}
		return c.SendString(id.String())
	})

	t.Run("Valid token", func(t *testing.T) {
		token, err := authService.IssueAccessToken(userID, "ana@campus.test", time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, userID.String(), string(body))
	})

	rejected := map[string]string{
		"missing header": "",
		"wrong scheme":   "Basic abc",
		"garbage token":  "Bearer not-a-jwt",
	}
	for name, header := range rejected {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
			if header != "" {
				req.Header.Set(fiber.HeaderAuthorization, header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)

			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		})
	}

	t.Run("Expired token", func(t *testing.T) {
		token, err := authService.IssueAccessToken(userID, "", -time.Minute)
		require.NoError(t, err)

		req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Other secret", func(t *testing.T) {
		token, err := auth.NewService("other-secret").IssueAccessToken(userID, "", time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}
