package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platformbuilds/mirador-relay/internal/config"
	"github.com/platformbuilds/mirador-relay/internal/models"
	"github.com/platformbuilds/mirador-relay/internal/services"
	"github.com/platformbuilds/mirador-relay/pkg/logger"
)

func newServerForTest(t *testing.T, webhookURL string) *Server {
	t.Helper()
	cfg := &config.Config{
		Environment:   "test",
		ListenAddress: "127.0.0.1:0",
		LogLevel:      "error",
		Discord:       config.DiscordConfig{WebhookURL: webhookURL, Timeout: 500},
	}
	log := logger.New("error")
	discord := services.NewDiscordService(cfg.Discord, log)
	return NewServer(cfg, log, discord)
}

func TestServer_RelayRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer hook.Close()

	srv := newServerForTest(t, hook.URL)

	batch := models.AlertManagerMessage{
		Status: "firing",
		Alerts: []models.AlertManagerAlert{
			{Status: "firing", Labels: map[string]string{"alertname": "Up", "severity": "warning"}},
		},
	}
	b, err := json.Marshal(batch)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestServer_ReadyzRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer hook.Close()

	srv := newServerForTest(t, hook.URL)

	req := httptest.NewRequest(http.MethodGet, "/readyz?verbose", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "[+] Discord")
}

func TestServer_HealthAndMetricsRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := newServerForTest(t, "http://127.0.0.1:1/unused")

	for _, path := range []string{"/health", "/metrics"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}
