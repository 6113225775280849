package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"social-media-backend/config"
	"social-media-backend/internal/testdb"
)

func TestServerHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testdb.Open(t)

	cfg := &config.Config{
		ServerHost:     "localhost",
		ServerPort:     "8080",
		JWTSecret:      "test-secret",
		AllowedOrigins: []string{"http://localhost:5173"},
	}

	srv := New(cfg, db, nil, nil)
	require.NotNil(t, srv)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestServerUploadsDisabledWithoutStorage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testdb.Open(t)

	cfg := &config.Config{
		JWTSecret:      "test-secret",
		AllowedOrigins: []string{"http://localhost:5173"},
	}
	srv := New(cfg, db, nil, nil)

	// Unauthenticated upload is rejected before the disabled uploader is hit.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/profiles/"+uuid.NewString()+"/avatar", nil)
	srv.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
