package handlers_integrated_test_suite

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rogerio-castellano/financial-data-api/internal/financials"
	api "github.com/rogerio-castellano/financial-data-api/internal/http"
	handler "github.com/rogerio-castellano/financial-data-api/internal/http/handlers"
	"github.com/rogerio-castellano/financial-data-api/internal/logger"
	"github.com/rogerio-castellano/financial-data-api/internal/observability"
	"github.com/rogerio-castellano/financial-data-api/internal/repo"
)

const testAPIKey = "test-key"

var upstreamTimeout = 200 * time.Millisecond

const upstreamStatements = `[
	{"date":"2023-09-30","symbol":"AAPL","revenue":383285,"netIncome":96995},
	{"date":"2022-09-24","symbol":"AAPL","revenue":394328,"netIncome":99803}
]`

// newRouter wires the service the way api/main does, pointed at baseURL.
func newRouter(baseURL, apiKey string) http.Handler {
	log := logger.NewWithOutput(io.Discard, "info", "text")
	metrics := observability.NewMetrics()

	statements := repo.NewFMPIncomeStatementRepository(repo.FMPConfig{
		BaseURL:  baseURL,
		APIKey:   apiKey,
		Timeout:  upstreamTimeout,
		Observer: metrics,
	})

	return api.NewRouter(api.RouterParams{
		Server:  handler.NewServer(financials.NewService(statements), log),
		Logger:  log,
		Metrics: metrics,
	})
}

// newUpstream starts a fake provider and counts the calls it receives.
func newUpstream(t *testing.T, h http.HandlerFunc) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	calls := new(atomic.Int32)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		h(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv, calls
}

func respondWith(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
