package handler_test

import (
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-helper/internal/config"
	"campus-helper/internal/domain"
	"campus-helper/internal/handler"
	"campus-helper/internal/middleware"
	"campus-helper/internal/pkg/i18n"
	"campus-helper/internal/repository/memory"
	"campus-helper/internal/service"
)

type testApp struct {
	app   *fiber.App
	store *memory.Store
	token string
	post  uuid.UUID
	item  uuid.UUID
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	require.NoError(t, i18n.LoadTranslations(filepath.Join("..", "..", "locales")))
	i18n.SetDefaultLocale("ro")

	cfg := &config.Config{JWTSecret: "handler-test", MinIOBucket: "marketplace-images"}
	store := memory.NewStore()
	services := service.NewServices(store.Repositories(), nil, nil, cfg)
	h := handler.NewHandlers(services)

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})
	v1 := app.Group("/api/v1")
	v1.Get("/home", h.Home.Highlights)
	protected := v1.Group("", middleware.AuthRequired(services.Auth))
	protected.Get("/forum/posts/:postId/comments", h.Forum.ListComments)
	protected.Post("/forum/posts/:postId/comments", h.Forum.Reply)
	protected.Post("/marketplace/items/:itemId/contact", h.Marketplace.Contact)

	user, seller := uuid.New(), uuid.New()
	token, err := services.Auth.IssueAccessToken(user, "ion@campus.test", time.Hour)
	require.NoError(t, err)

	ta := &testApp{app: app, store: store, token: token, post: uuid.New(), item: uuid.New()}
	store.PutPost(domain.ForumPost{ID: ta.post, UserID: seller, Title: "Întrebare"})
	store.PutItem(domain.MarketplaceItem{ID: ta.item, UserID: seller, Title: "Lampă", Status: domain.ItemAvailable})
	return ta
}

func (ta *testApp) do(t *testing.T, method, path, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+ta.token)
	req.Header.Set(fiber.HeaderAcceptLanguage, "en")

	resp, err := ta.app.Test(req)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestForumHandler_ReplyAndList(t *testing.T) {
	ta := newTestApp(t)
	path := "/api/v1/forum/posts/" + ta.post.String() + "/comments"

	status, body := ta.do(t, fiber.MethodPost, path, `{"content":"Prima"}`)
	require.Equal(t, fiber.StatusCreated, status)
	parentID := body["comment"].(map[string]any)["id"].(string)

	status, _ = ta.do(t, fiber.MethodPost, path, `{"content":"A doua","parent_id":"`+parentID+`"}`)
	require.Equal(t, fiber.StatusCreated, status)

	status, body = ta.do(t, fiber.MethodGet, path, "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["threaded"])
	comments := body["comments"].([]any)
	require.Len(t, comments, 1)
	assert.Len(t, comments[0].(map[string]any)["replies"].([]any), 1)
}

func TestForumHandler_ReplyFlattenedNotice(t *testing.T) {
	ta := newTestApp(t)
	path := "/api/v1/forum/posts/" + ta.post.String() + "/comments"

	_, body := ta.do(t, fiber.MethodPost, path, `{"content":"Prima"}`)
	parentID := body["comment"].(map[string]any)["id"].(string)

	ta.store.WithoutParentColumn = true
	status, body := ta.do(t, fiber.MethodPost, path, `{"content":"A doua","parent_id":"`+parentID+`"}`)

	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, false, body["threaded"])
	assert.Equal(t, i18n.Translate("en", "comments.reply_flattened"), body["notice"])
}

func TestForumHandler_Errors(t *testing.T) {
	ta := newTestApp(t)

	status, body := ta.do(t, fiber.MethodPost, "/api/v1/forum/posts/not-a-uuid/comments", `{"content":"x"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "BAD_REQUEST", body["code"])

	status, body = ta.do(t, fiber.MethodPost, "/api/v1/forum/posts/"+ta.post.String()+"/comments", `{"content":"  "}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Equal(t, "Write a reply.", body["message"])

	status, _ = ta.do(t, fiber.MethodPost, "/api/v1/forum/posts/"+uuid.NewString()+"/comments", `{"content":"x"}`)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestMarketplaceHandler_Contact(t *testing.T) {
	ta := newTestApp(t)
	path := "/api/v1/marketplace/items/" + ta.item.String() + "/contact"

	status, first := ta.do(t, fiber.MethodPost, path, "")
	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, true, first["created"])
	assert.Equal(t, "/messages?id="+first["conversation_id"].(string), first["redirect"])

	status, second := ta.do(t, fiber.MethodPost, path, "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, false, second["created"])
	assert.Equal(t, first["conversation_id"], second["conversation_id"])
}

func TestHomeHandler_Public(t *testing.T) {
	ta := newTestApp(t)

	resp, err := ta.app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/home", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var h domain.Highlights
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&h))
	assert.Len(t, h.Posts, 1)
	assert.Len(t, h.Jobs, 3)
}

func TestAuthRequired_RejectsAnonymous(t *testing.T) {
	ta := newTestApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/api/v1/forum/posts/"+ta.post.String()+"/comments", nil)
	resp, err := ta.app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
