package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jamieb133/skyjo/internal/config"
)

func TestHealthz(t *testing.T) {
	hub := newTestHub(t)
	srv := New(config.ServerConfig{
		Address:        ":0",
		ReadTimeout:    time.Second,
		WriteTimeout:   time.Second,
		AllowedOrigins: []string{"*"},
	}, hub, zaptest.NewLogger(t))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestRequestLogging(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	hub := newTestHub(t)
	srv := New(config.ServerConfig{
		Address:        ":0",
		ReadTimeout:    time.Second,
		WriteTimeout:   time.Second,
		AllowedOrigins: []string{"*"},
	}, hub, zap.New(core))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	entries := logs.FilterMessage("http request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/healthz", fields["path"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
}
