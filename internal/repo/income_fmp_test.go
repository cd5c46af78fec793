package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const upstreamBody = `[{"date":"2023-09-30","symbol":"AAPL","revenue":383285,"netIncome":96995},{"date":"2022-09-24","symbol":"AAPL","revenue":394328,"netIncome":99803}]`

type recordingObserver struct {
	mu       sync.Mutex
	outcomes []string
}

func (o *recordingObserver) ObserveUpstream(outcome string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.outcomes = append(o.outcomes, outcome)
}

func newUpstream(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestFMPGetAll_RequestShape(t *testing.T) {
	srv := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v3/income-statement/AAPL", r.URL.Path)
		assert.Equal(t, "annual", r.URL.Query().Get("period"))
		assert.Equal(t, "secret-key", r.URL.Query().Get("apikey"))
		assert.Len(t, r.URL.Query(), 2)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(upstreamBody))
	})

	observer := &recordingObserver{}
	r := NewFMPIncomeStatementRepository(FMPConfig{BaseURL: srv.URL + "/", APIKey: "secret-key", Observer: observer})

	records, err := r.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2023-09-30", records[0].Date)
	assert.Equal(t, int64(394328), records[1].Revenue)
	assert.Equal(t, []string{OutcomeOK}, observer.outcomes)

	out, err := json.Marshal(records[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2023-09-30","symbol":"AAPL","revenue":383285,"netIncome":96995}`, string(out))
}

func TestFMPGetAll_NonSuccessStatus(t *testing.T) {
	for _, status := range []int{http.StatusServiceUnavailable, http.StatusUnauthorized, http.StatusNotFound} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			srv := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"Error Message":"nope"}`, status)
			})
			observer := &recordingObserver{}
			r := NewFMPIncomeStatementRepository(FMPConfig{BaseURL: srv.URL, APIKey: "k", Observer: observer})

			_, err := r.GetAll(context.Background())

			var ue *UpstreamError
			require.True(t, errors.As(err, &ue))
			assert.Equal(t, status, ue.StatusCode)
			assert.Contains(t, err.Error(), "status")
			assert.Equal(t, []string{OutcomeUnavailable}, observer.outcomes)
		})
	}
}

func TestFMPGetAll_TimeoutIsUpstreamError(t *testing.T) {
	release := make(chan struct{})
	srv := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	r := NewFMPIncomeStatementRepository(FMPConfig{BaseURL: srv.URL, APIKey: "super-secret", Timeout: 50 * time.Millisecond})

	_, err := r.GetAll(context.Background())

	var ue *UpstreamError
	require.True(t, errors.As(err, &ue))
	assert.Zero(t, ue.StatusCode)
	assert.NotContains(t, err.Error(), "super-secret")
	assert.Contains(t, err.Error(), "REDACTED")
}

func TestFMPGetAll_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	r := NewFMPIncomeStatementRepository(FMPConfig{BaseURL: baseURL, APIKey: "super-secret"})

	_, err := r.GetAll(context.Background())

	var ue *UpstreamError
	require.True(t, errors.As(err, &ue))
	assert.NotContains(t, err.Error(), "super-secret")
}

func TestFMPGetAll_CanceledContext(t *testing.T) {
	srv := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(upstreamBody))
	})
	r := NewFMPIncomeStatementRepository(FMPConfig{BaseURL: srv.URL, APIKey: "k"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := r.GetAll(ctx)

	var ue *UpstreamError
	require.True(t, errors.As(err, &ue))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestFMPGetAll_DecodeFailures(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `<html>oops</html>`},
		{name: "object instead of list", body: `{"Error Message":"Invalid API KEY."}`},
		{name: "null", body: `null`},
		{name: "missing field", body: `[{"date":"2023-09-30","revenue":383285}]`},
		{name: "list of strings", body: `["2023-09-30"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})
			observer := &recordingObserver{}
			r := NewFMPIncomeStatementRepository(FMPConfig{BaseURL: srv.URL, APIKey: "k", Observer: observer})

			_, err := r.GetAll(context.Background())
			require.Error(t, err)

			var ue *UpstreamError
			assert.False(t, errors.As(err, &ue), "decode failures are not upstream failures")
			assert.Equal(t, []string{OutcomeDecodeError}, observer.outcomes)
		})
	}
}

func TestFMPGetAll_BodyLimit(t *testing.T) {
	srv := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(upstreamBody))
	})

	t.Run("at limit", func(t *testing.T) {
		r := NewFMPIncomeStatementRepository(FMPConfig{BaseURL: srv.URL, APIKey: "k", MaxBodyBytes: int64(len(upstreamBody))})
		records, err := r.GetAll(context.Background())
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("over limit", func(t *testing.T) {
		observer := &recordingObserver{}
		limit := int64(len(upstreamBody) - 1)
		r := NewFMPIncomeStatementRepository(FMPConfig{BaseURL: srv.URL, APIKey: "k", MaxBodyBytes: limit, Observer: observer})

		_, err := r.GetAll(context.Background())
		require.Error(t, err)
		assert.EqualError(t, err, fmt.Sprintf("upstream body exceeds %d bytes", limit))
		assert.Equal(t, []string{OutcomeDecodeError}, observer.outcomes)
	})
}

func TestFMPGetAll_EmptyList(t *testing.T) {
	srv := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})
	r := NewFMPIncomeStatementRepository(FMPConfig{BaseURL: srv.URL, APIKey: "k"})

	records, err := r.GetAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestNewFMPIncomeStatementRepository_Defaults(t *testing.T) {
	r := NewFMPIncomeStatementRepository(FMPConfig{APIKey: "a&b"})

	assert.Equal(t, DefaultFMPBaseURL+"/api/v3/income-statement/AAPL?apikey=a%26b&period=annual", r.endpoint)
	assert.Equal(t, DefaultFMPTimeout, r.client.Timeout)
	assert.Equal(t, int64(DefaultMaxBodyBytes), r.maxBody)
}
