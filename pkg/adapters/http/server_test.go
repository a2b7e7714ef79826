package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/specdoc/pkg/adapters/memory"
	"github.com/aretw0/specdoc/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleArtifact() *domain.Artifact {
	return &domain.Artifact{
		Name: "travis",
		Entries: []domain.Entry{
			{Key: domain.Path{"addons"}, Format: "key value mapping"},
			{Key: domain.Path{"addons", "apt"}, Format: "string"},
			{Key: domain.ParsePath("matrix.include[].os"), Format: "string", Required: true},
		},
		Markdown:   "## The `travis` Format\n",
		JSONSchema: json.RawMessage(`{"type":"object"}`),
	}
}

func newTestHandler(t *testing.T, publish bool) http.Handler {
	t.Helper()
	store := memory.NewStore()
	if publish {
		require.NoError(t, store.Save(context.Background(), sampleArtifact()))
	}
	return NewHandler(store, "travis", WithVersion("1.2.3\n"))
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestServer_Entries(t *testing.T) {
	h := newTestHandler(t, true)

	w := get(h, "/entries")
	require.Equal(t, http.StatusOK, w.Code)
	var all []domain.Entry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	assert.Len(t, all, 3)

	w = get(h, "/entries?prefix=addons")
	require.Equal(t, http.StatusOK, w.Code)
	var filtered []domain.Entry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &filtered))
	assert.Len(t, filtered, 2)
}

func TestServer_Entry(t *testing.T) {
	h := newTestHandler(t, true)

	w := get(h, "/entries/matrix.include[].os")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var entry domain.Entry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entry))
	assert.True(t, entry.Required)
	assert.Equal(t, domain.Path{"matrix", "include", "[]", "os"}, entry.Key)

	w = get(h, "/entries/ghost")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_Documents(t *testing.T) {
	h := newTestHandler(t, true)

	w := get(h, "/reference.md")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "## The `travis` Format\n", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/markdown")

	w = get(h, "/schema.json")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"type":"object"}`, w.Body.String())
}

func TestServer_NotPublished(t *testing.T) {
	h := newTestHandler(t, false)

	w := get(h, "/entries")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = get(h, "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestServer_InfoAndCORS(t *testing.T) {
	h := newTestHandler(t, true)

	w := get(h, "/info")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"app":"specdoc-http","version":"1.2.3","artifact":"travis"}`, w.Body.String())
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/entries", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestServer_Metrics(t *testing.T) {
	h := newTestHandler(t, true)

	get(h, "/entries")
	get(h, "/entries/ghost")

	w := get(h, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `specdoc_http_requests_total{code="200",route="/entries"} 1`)
	assert.Contains(t, body, `specdoc_http_requests_total{code="404",route="/entries/{key}"} 1`)
}

func TestSubscribeEvents(t *testing.T) {
	streams := NewStreamManager()
	h := NewHandler(memory.NewStore(), "travis", WithStreams(streams))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/events", nil).WithContext(ctx)

	done := make(chan struct{})
	go func() {
		defer close(done)
		h.ServeHTTP(w, req)
	}()

	require.Eventually(t, func() bool { return streams.Subscribers() == 1 }, time.Second, 10*time.Millisecond)
	streams.Broadcast("travis")

	time.Sleep(50 * time.Millisecond)
	cancel()
	<-done

	output := w.Body.String()
	assert.True(t, strings.Contains(output, "event: ping"), "expected initial ping")
	assert.Contains(t, output, "event: reload\ndata: travis\n\n")
	assert.Equal(t, 0, streams.Subscribers())
}
