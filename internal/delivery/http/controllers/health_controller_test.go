package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct{ err error }

func (f fakePinger) PingContext(ctx context.Context) error { return f.err }

func TestHealthController_Health(t *testing.T) {
	rr := httptest.NewRecorder()
	NewHealthController(testLogger, fakePinger{}).Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	var got HealthResponse
	require.Nil(t, decodeEnvelope(t, rr, &got))
	assert.Equal(t, "ok", got.Status)

	rr = httptest.NewRecorder()
	NewHealthController(testLogger, fakePinger{err: errors.New("refused")}).Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}
