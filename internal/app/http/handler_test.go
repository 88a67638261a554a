package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	walog "go.mau.fi/whatsmeow/util/log"

	"github.com/hostelhub/notify-gateway/internal/app/usecase"
	"github.com/hostelhub/notify-gateway/internal/infra/wa"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	manager := wa.NewManager(t.TempDir(), walog.Noop, time.Second)
	t.Cleanup(manager.Shutdown)

	h := NewHandler(
		usecase.NewStartSessionUsecase(manager),
		usecase.NewSessionStatusUsecase(manager),
		usecase.NewRegenerateUsecase(manager),
		usecase.NewSendTextUsecase(manager, "91"),
		usecase.NewDispatchUsecase(manager, nil, "91"),
		usecase.NewSessionEventsUsecase(manager),
		"primary",
	)
	return NewRouter(h, nil)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestSendValidatesBody(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/send", `{"number":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp SendResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Error)
}

func TestSendWhileDisconnected(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/send", `{"number":"9876543210","message":"hi"}`)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp SendResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "not connected")
}

func TestQRSnapshotDisconnected(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/qr", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp QRResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "disconnected", resp.Status)
	assert.Empty(t, resp.QR)
}

func TestQRNamedSession(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/qr/dorm-a", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp QRResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "disconnected", resp.Status)
}

func TestEventsStreamEmitsSnapshotOnConnect(t *testing.T) {
	r := newTestRouter(t)

	// a pre-cancelled context lets the handler emit the initial snapshot
	// and return instead of blocking on the relay channel
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/api/session/primary/events", nil).WithContext(ctx)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))

	body := w.Body.String()
	assert.Contains(t, body, "event:status", "a client connecting mid-session sees the current state immediately")
	assert.Contains(t, body, `"status":"disconnected"`)
}

func TestDispatchReportsTriPartSummary(t *testing.T) {
	r := newTestRouter(t)

	// no session is connected, so sends fail while the no-number
	// recipient is skipped; the batch still runs to completion
	body := `{
		"template": "Hi {name}",
		"recipients": [
			{"id":"s1","displayName":"Asha","phoneNumber":"9876543210"},
			{"id":"s2","displayName":"Ravi","phoneNumber":""}
		]
	}`
	w := doJSON(t, r, http.MethodPost, "/api/dispatch", body)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp DispatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 0, resp.Summary.SuccessCount)
	assert.Equal(t, 1, resp.Summary.FailureCount)
	assert.Equal(t, 1, resp.Summary.SkippedCount)
	require.Len(t, resp.Results, 2)
}

func TestDispatchRequiresRecipients(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/dispatch", `{"template":"x","recipients":[]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRequestIDHeader(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/health", "")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "fixed-id", w.Header().Get("X-Request-ID"))
}
