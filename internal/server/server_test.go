package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"ai-notecapture-be/internal/bootstrap"
	"ai-notecapture-be/internal/config"
	"ai-notecapture-be/internal/pkg/logger"
	"ai-notecapture-be/pkg/clipboard"
	"ai-notecapture-be/pkg/kvstore"
	"ai-notecapture-be/pkg/llm"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type switchableLLM struct {
	mu    sync.Mutex
	reply string
	err   error
}

func (s *switchableLLM) set(reply string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reply, s.err = reply, err
}

func (s *switchableLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return s.Generate(ctx, "", options...)
}

func (s *switchableLLM) Generate(context.Context, string, ...llm.Option) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reply, s.err
}

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T, provider llm.LLMProvider) *fiber.App {
	t.Helper()

	cfg := &config.Config{
		App:       config.AppConfig{Port: "0", Environment: "test", CorsAllowedOrigins: "*"},
		Store:     config.StoreConfig{Driver: kvstore.DriverMemory},
		Clipboard: config.ClipboardConfig{Enabled: true, PollInterval: 10 * time.Millisecond},
	}
	source := clipboard.NewStaticSource(
		[]string{clipboard.MimeText, "image/png"},
		map[string][]byte{clipboard.MimeText: []byte("const answer = 42"), "image/png": {1, 2, 3}},
	)

	container, err := bootstrap.NewContainer(context.Background(), cfg,
		bootstrap.WithLogger(logger.NewNopLogger()),
		bootstrap.WithStore(kvstore.NewMemoryStore()),
		bootstrap.WithLLMProvider(provider),
		bootstrap.WithClipboardSource(source),
	)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, container.Start(ctx))
	t.Cleanup(func() {
		cancel()
		_ = container.Shutdown(context.Background())
	})

	return New(cfg, container).GetApp()
}

func call(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

type idOnly struct {
	Id        string `json:"id"`
	ItemCount int    `json:"item_count"`
	Type      string `json:"type"`
}

func TestNotebookAndContentFlow(t *testing.T) {
	app := newTestApp(t, &switchableLLM{reply: "ok"})

	status, env := call(t, app, http.MethodPost, "/api/notebook/v1", map[string]string{"name": "Snippets"})
	require.Equal(t, http.StatusCreated, status)
	nb := decode[idOnly](t, env.Data)
	require.NotEmpty(t, nb.Id)

	status, env = call(t, app, http.MethodPost, "/api/content/v1", map[string]string{
		"notebook_id": nb.Id,
		"title":       "Loop",
		"content":     "for i := range items {}",
		"tags":        "go, loops",
	})
	require.Equal(t, http.StatusCreated, status)
	item := decode[idOnly](t, env.Data)
	assert.Equal(t, "script", item.Type)

	status, env = call(t, app, http.MethodGet, "/api/notebook/v1/"+nb.Id, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, decode[idOnly](t, env.Data).ItemCount)

	status, env = call(t, app, http.MethodGet, "/api/notebook/v1/"+nb.Id+"/content?type=script", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[[]idOnly](t, env.Data), 1)

	status, env = call(t, app, http.MethodGet, "/api/notebook/v1/"+nb.Id+"/content/stats", nil)
	require.Equal(t, http.StatusOK, status)
	stats := decode[struct {
		Total  int            `json:"total"`
		Counts map[string]int `json:"counts"`
	}](t, env.Data)
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 1, stats.Counts["script"])

	status, _ = call(t, app, http.MethodDelete, "/api/content/v1/"+item.Id, nil)
	require.Equal(t, http.StatusOK, status)

	status, env = call(t, app, http.MethodGet, "/api/notebook/v1/"+nb.Id, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Zero(t, decode[idOnly](t, env.Data).ItemCount)
}

func TestErrorsUseResponseEnvelope(t *testing.T) {
	app := newTestApp(t, &switchableLLM{reply: "ok"})

	status, env := call(t, app, http.MethodGet, "/api/notebook/v1/missing", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.False(t, env.Success)
	assert.Equal(t, "Notebook not found", env.Message)

	status, env = call(t, app, http.MethodPost, "/api/content/v1", map[string]string{"title": "no notebook"})
	assert.Equal(t, http.StatusBadRequest, status)
	fields := decode[map[string]string](t, env.Data)
	assert.Contains(t, fields, "notebook_id")
	assert.Contains(t, fields, "content")

	status, _ = call(t, app, http.MethodGet, "/api/ws", nil)
	assert.Equal(t, http.StatusUpgradeRequired, status)
}

func TestChatEndpoints(t *testing.T) {
	provider := &switchableLLM{reply: "A"}
	app := newTestApp(t, provider)

	_, env := call(t, app, http.MethodPost, "/api/notebook/v1", map[string]string{"name": "Chatty"})
	nb := decode[idOnly](t, env.Data)
	call(t, app, http.MethodPost, "/api/content/v1", map[string]string{"notebook_id": nb.Id, "title": "t", "content": "c"})

	status, env := call(t, app, http.MethodPost, "/api/chat/v1/"+nb.Id, map[string]string{"question": "Q"})
	require.Equal(t, http.StatusOK, status)
	res := decode[struct {
		Answer struct {
			Content string `json:"content"`
		} `json:"answer"`
	}](t, env.Data)
	assert.Equal(t, "A", res.Answer.Content)

	provider.set("", errors.New("upstream down"))
	status, env = call(t, app, http.MethodPost, "/api/chat/v1/"+nb.Id, map[string]string{"question": "again"})
	assert.Equal(t, http.StatusBadGateway, status)
	assert.Equal(t, "Failed to get AI response. Please try again.", env.Message)

	status, env = call(t, app, http.MethodGet, "/api/chat/v1/"+nb.Id, nil)
	require.Equal(t, http.StatusOK, status)
	history := decode[[]struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}](t, env.Data)
	require.Len(t, history, 3)
	assert.Equal(t, "user", history[2].Role)
	assert.Equal(t, "again", history[2].Content)

	status, _ = call(t, app, http.MethodDelete, "/api/chat/v1/"+nb.Id, nil)
	require.Equal(t, http.StatusOK, status)
	_, env = call(t, app, http.MethodGet, "/api/chat/v1/"+nb.Id, nil)
	assert.Empty(t, decode[[]json.RawMessage](t, env.Data))
}

func TestClipboardEndpoints(t *testing.T) {
	app := newTestApp(t, &switchableLLM{reply: "ok"})

	status, env := call(t, app, http.MethodPost, "/api/clipboard/v1/read", nil)
	require.Equal(t, http.StatusOK, status)
	data := decode[struct {
		Type          string `json:"type"`
		SuggestedType string `json:"suggested_type"`
		Image         string `json:"image"`
	}](t, env.Data)
	assert.Equal(t, "mixed", data.Type)
	assert.Equal(t, "script", data.SuggestedType)
	assert.Equal(t, "data:image/png;base64,AQID", data.Image)

	status, env = call(t, app, http.MethodPost, "/api/clipboard/v1/interaction", nil)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, decode[struct {
		Started bool `json:"started"`
	}](t, env.Data).Started)

	_, env = call(t, app, http.MethodPost, "/api/notebook/v1", map[string]string{"name": "Inbox"})
	nb := decode[idOnly](t, env.Data)

	status, env = call(t, app, http.MethodPost, "/api/content/v1/capture", map[string]string{"notebook_id": nb.Id})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "script", decode[idOnly](t, env.Data).Type)

	status, _ = call(t, app, http.MethodDelete, "/api/clipboard/v1/latest", nil)
	require.Equal(t, http.StatusOK, status)
}
