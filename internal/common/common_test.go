package common_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kenod/invoice-api/internal/common"
)

func TestRenderErrorAppError(t *testing.T) {
	cause := errors.New("checksum failed")
	app := common.NewAppError("INVALID_ACCOUNT", "account number failed checksum validation", http.StatusUnprocessableEntity, cause)
	require.ErrorIs(t, app, cause)
	require.Equal(t, "checksum failed", app.Error())

	rr := httptest.NewRecorder()
	common.RenderError(rr, fmt.Errorf("encode: %w", app))
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	require.Contains(t, rr.Body.String(), "INVALID_ACCOUNT")
}

func TestRenderErrorOpaque(t *testing.T) {
	rr := httptest.NewRecorder()
	common.RenderError(rr, errors.New("boom"))
	require.Equal(t, http.StatusInternalServerError, rr.Code)
	require.Contains(t, rr.Body.String(), "INTERNAL")
	require.NotContains(t, rr.Body.String(), "boom")
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.9:4711"
	require.Equal(t, "10.0.0.9", common.ClientIP(req))

	req.Header.Set("X-Real-IP", "203.0.113.7")
	require.Equal(t, "203.0.113.7", common.ClientIP(req))

	req.Header.Set("X-Forwarded-For", "198.51.100.23, 10.0.0.1")
	require.Equal(t, "198.51.100.23", common.ClientIP(req))
}
