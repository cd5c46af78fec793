package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rogerio-castellano/financial-data-api/internal/models"
)

const (
	DefaultFMPBaseURL = "https://financialmodelingprep.com"
	DefaultFMPTimeout = 10 * time.Second

	incomeStatementSymbol = "AAPL"
	incomeStatementPeriod = "annual"

	DefaultMaxBodyBytes = 10 << 20
)

// Upstream call outcomes reported to a FetchObserver.
const (
	OutcomeOK          = "ok"
	OutcomeUnavailable = "unavailable"
	OutcomeDecodeError = "decode_error"
)

// FetchObserver is notified once per upstream call.
type FetchObserver interface {
	ObserveUpstream(outcome string)
}

// FMPConfig configures the Financial Modeling Prep backed repository.
type FMPConfig struct {
	BaseURL  string
	APIKey   string
	Timeout  time.Duration
	Client   *http.Client
	Observer FetchObserver
	// MaxBodyBytes caps the accepted response size; zero means DefaultMaxBodyBytes.
	MaxBodyBytes int64
}

// FMPIncomeStatementRepository reads the annual income statements of a fixed
// symbol from Financial Modeling Prep.
type FMPIncomeStatementRepository struct {
	endpoint string
	apiKey   string
	client   *http.Client
	observer FetchObserver
	maxBody  int64
}

// NewFMPIncomeStatementRepository creates a repository from cfg. A zero Timeout
// falls back to DefaultFMPTimeout; a provided Client keeps its own timeout.
func NewFMPIncomeStatementRepository(cfg FMPConfig) *FMPIncomeStatementRepository {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultFMPBaseURL
	}

	client := cfg.Client
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultFMPTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}

	q := url.Values{}
	q.Set("period", incomeStatementPeriod)
	q.Set("apikey", cfg.APIKey)

	return &FMPIncomeStatementRepository{
		endpoint: fmt.Sprintf("%s/api/v3/income-statement/%s?%s", baseURL, incomeStatementSymbol, q.Encode()),
		apiKey:   cfg.APIKey,
		client:   client,
		observer: cfg.Observer,
		maxBody:  maxBody,
	}
}

// GetAll issues one GET to the provider and decodes the returned list.
func (r *FMPIncomeStatementRepository) GetAll(ctx context.Context) ([]models.FinancialRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building upstream request: %w", r.redact(err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		r.observe(OutcomeUnavailable)
		return nil, &UpstreamError{Err: r.redact(err)}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		r.observe(OutcomeUnavailable)
		return nil, &UpstreamError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, r.maxBody+1))
	if err != nil {
		r.observe(OutcomeUnavailable)
		return nil, &UpstreamError{Err: fmt.Errorf("reading upstream body: %w", r.redact(err))}
	}
	if int64(len(body)) > r.maxBody {
		r.observe(OutcomeDecodeError)
		return nil, fmt.Errorf("upstream body exceeds %d bytes", r.maxBody)
	}

	records, err := decodeIncomeStatements(body)
	if err != nil {
		r.observe(OutcomeDecodeError)
		return nil, err
	}

	r.observe(OutcomeOK)
	return records, nil
}

func decodeIncomeStatements(body []byte) ([]models.FinancialRecord, error) {
	var records []models.FinancialRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("decoding income statements: %w", err)
	}
	if records == nil {
		return nil, errors.New("decoding income statements: body is not a JSON array")
	}
	return records, nil
}

func (r *FMPIncomeStatementRepository) observe(outcome string) {
	if r.observer != nil {
		r.observer.ObserveUpstream(outcome)
	}
}

// redact keeps the API key out of error text that embeds the request URL.
func (r *FMPIncomeStatementRepository) redact(err error) error {
	if r.apiKey == "" {
		return err
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = strings.ReplaceAll(urlErr.URL, url.QueryEscape(r.apiKey), "REDACTED")
		urlErr.URL = strings.ReplaceAll(urlErr.URL, r.apiKey, "REDACTED")
	}
	return err
}
