package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ai-realestate-be/internal/constant"
	"ai-realestate-be/internal/entity"
	"ai-realestate-be/internal/pkg/idgen"
	"ai-realestate-be/internal/pkg/logger"
	"ai-realestate-be/internal/pkg/serverutils"
	"ai-realestate-be/internal/repository/memory"
	"ai-realestate-be/internal/repository/unitofwork"
	"ai-realestate-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopNotifier struct{}

func (nopNotifier) NotifyChanged(ctx context.Context, keys []string) error { return nil }

type testApp struct {
	app   *fiber.App
	store *memory.KeyValueStore
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	log := logger.NewNopLogger()
	store := memory.NewKeyValueStore()
	factory := unitofwork.NewRepositoryFactory(store, nopNotifier{}, log)

	topics := service.NewTopicService(factory, log)
	require.NoError(t, topics.SeedDefaults(context.Background()))
	chats := service.NewChatSessionService(factory, idgen.NewClock(), log)
	conversations := service.NewConversationService(chats, memory.NewViewRepository(time.Minute), time.Millisecond, log)

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	api := app.Group("/api/v1")
	NewTopicController(topics, chats).RegisterRoutes(api)
	NewChatController(chats, conversations).RegisterRoutes(api)
	NewViewController(conversations).RegisterRoutes(api)

	return &testApp{app: app, store: store}
}

func (a *testApp) do(t *testing.T, method, path, body string) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)

	var out map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp, out
}

func TestCreateTopicValidation(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		body   string
		status int
	}{
		{"missing title", "/api/v1/compliance/topics", `{"description":"d"}`, http.StatusBadRequest},
		{"multiline title", "/api/v1/compliance/topics", `{"title":"a\nb","description":"d"}`, http.StatusBadRequest},
		{"malformed body", "/api/v1/compliance/topics", `{"title":`, http.StatusBadRequest},
		{"unknown product", "/api/v1/mortgage/topics", `{"title":"a","description":"d"}`, http.StatusBadRequest},
		{"valid", "/api/v1/compliance/topics", `{"title":"Lead Paint","description":"Pre-1978 disclosure"}`, http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp(t)
			resp, body := a.do(t, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.status, resp.StatusCode)
			if tt.status == http.StatusBadRequest {
				assert.Equal(t, false, body["success"])
			}
		})
	}
}

func TestCreateTopicValidationReportsFields(t *testing.T) {
	a := newTestApp(t)

	_, body := a.do(t, http.MethodPost, "/api/v1/coach/topics", `{"title":"","description":"x"}`)
	fields, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, fields, "title")

	_, list := a.do(t, http.MethodGet, "/api/v1/coach/topics", "")
	items, ok := list["data"].([]any)
	require.True(t, ok)
	assert.Len(t, items, len(constant.DefaultTopics[entity.ProductCoach]))
}

func TestShowChatRedirects(t *testing.T) {
	t.Run("unknown session", func(t *testing.T) {
		a := newTestApp(t)
		resp, body := a.do(t, http.MethodGet, "/api/v1/coach/chat/1718000000000", "")
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/coach", resp.Header.Get(fiber.HeaderLocation))
		assert.Equal(t, map[string]any{"redirect": "/coach"}, body["data"])
	})

	t.Run("corrupt collection", func(t *testing.T) {
		a := newTestApp(t)
		key := constant.ActiveChatsKey(entity.ProductCompliance)
		require.NoError(t, a.store.Set(context.Background(), key, []byte("not json")))

		resp, _ := a.do(t, http.MethodGet, "/api/v1/compliance/chat/1", "")
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/compliance", resp.Header.Get(fiber.HeaderLocation))

		raw, _, err := a.store.Get(context.Background(), key)
		require.NoError(t, err)
		assert.JSONEq(t, `[]`, string(raw))
	})
}

func TestOpenChatAndConverse(t *testing.T) {
	a := newTestApp(t)

	resp, body := a.do(t, http.MethodPost, "/api/v1/coach/chats", `{"title":"Objection Handling"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	session := body["data"].(map[string]any)
	assert.Equal(t, service.OutcomeCreated, session["outcome"])
	path := session["path"].(string)

	resp, _ = a.do(t, http.MethodGet, "/api/v1"+path, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = a.do(t, http.MethodPost, "/api/v1"+path+"/views", "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	viewID := body["data"].(map[string]any)["view_id"].(string)

	resp, body = a.do(t, http.MethodPost, "/api/v1/views/"+viewID+"/messages", `{"content":"They want to wait for spring"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	reply := body["data"].(map[string]any)["reply"].(map[string]any)
	assert.Equal(t, entity.SenderAI, reply["sender"])

	resp, _ = a.do(t, http.MethodDelete, "/api/v1/views/"+viewID, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = a.do(t, http.MethodGet, "/api/v1/views/"+viewID, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
