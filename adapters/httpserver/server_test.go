package httpserver_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AccountHub/backend/adapters/httpserver"
	"github.com/AccountHub/backend/pkg/config"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestHealthCheck(t *testing.T) {
	server, err := httpserver.New(&config.Config{}, zap.NewNop().Sugar())
	assert.NoError(t, err)

	response := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/healthz", nil)

	server.ServeHTTP(response, request)

	assert.Equal(t, http.StatusOK, response.Code)
	assert.Equal(t, "OK!!!", response.Body.String())
}
