package httptransport_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httptransport "warden/internal/transport/http"
	"warden/internal/vault/auth"
	"warden/internal/vault/guard"
	"warden/internal/vault/registry"
	"warden/internal/vault/service"
	"warden/internal/vault/store"
	"warden/pkg/testutil"
)

func newRouter(t *testing.T, checks ...httptransport.HealthCheck) http.Handler {
	t.Helper()
	reg := registry.New(store.NewMemory())
	svc := service.New(reg, guard.New(reg, auth.NewEd25519Verifier()))
	return httptransport.NewRouter(svc, slog.New(slog.DiscardHandler), "", checks...)
}

func TestHealthzOK(t *testing.T) {
	router := newRouter(t, func(ctx context.Context) error { return nil })

	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, "/healthz", nil))
	testutil.AssertStatus(t, rr, http.StatusOK)
	resp := testutil.UnmarshalResponse[map[string]string](t, rr)
	assert.Equal(t, "ok", (*resp)["status"])
}

func TestHealthzReportsFailedDependency(t *testing.T) {
	router := newRouter(t, func(ctx context.Context) error { return errors.New("connection refused") })

	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, "/healthz", nil))
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
}

func TestMetricsEndpoint(t *testing.T) {
	router := newRouter(t)

	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, "/metrics", nil))
	testutil.AssertStatus(t, rr, http.StatusOK)
	require.NotEmpty(t, testutil.ReadBody(t, rr))
}

func TestRequestIDEchoed(t *testing.T) {
	router := newRouter(t)

	req := testutil.NewJSONRequest(t, http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rr := testutil.DoRequest(router, req)
	assert.Equal(t, "req-123", rr.Header().Get("X-Request-ID"))

	// A missing inbound ID still yields one on the response.
	rr = testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, "/healthz", nil))
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}

func TestUnknownRouteIs404(t *testing.T) {
	router := newRouter(t)

	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, "/nope", nil))
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}
