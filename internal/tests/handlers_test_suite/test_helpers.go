package handlers_test_suite

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/rogerio-castellano/financial-data-api/internal/financials"
	api "github.com/rogerio-castellano/financial-data-api/internal/http"
	handler "github.com/rogerio-castellano/financial-data-api/internal/http/handlers"
	"github.com/rogerio-castellano/financial-data-api/internal/logger"
	"github.com/rogerio-castellano/financial-data-api/internal/models"
	"github.com/rogerio-castellano/financial-data-api/internal/repo"
)

const upstreamStatements = `[
	{"date":"2023-09-30","symbol":"AAPL","revenue":383285,"grossProfit":169148,"netIncome":96995,"eps":6.16},
	{"date":"2022-09-24","symbol":"AAPL","revenue":394328,"grossProfit":170782,"netIncome":99803,"eps":6.15}
]`

var statementRepo *repo.InMemoryIncomeStatementRepository

func init() {
	var records []models.FinancialRecord
	if err := json.Unmarshal([]byte(upstreamStatements), &records); err != nil {
		panic(fmt.Sprintf("error decoding statements: %v", err))
	}
	statementRepo = repo.NewInMemoryIncomeStatementRepository(records...)
}

func resetStatements() {
	var records []models.FinancialRecord
	_ = json.Unmarshal([]byte(upstreamStatements), &records)
	statementRepo.Clear()
	statementRepo.SetRecords(records...)
}

func newRouter() http.Handler {
	log := logger.NewWithOutput(io.Discard, "info", "text")
	return api.NewRouter(api.RouterParams{
		Server: handler.NewServer(financials.NewService(statementRepo), log),
		Logger: log,
	})
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeData(w *httptest.ResponseRecorder) ([]string, error) {
	var resp handler.DataResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("missing data array")
	}
	out := make([]string, len(resp.Data))
	for i, r := range resp.Data {
		out[i] = r.Date
	}
	return out, nil
}

func decodeError(w *httptest.ResponseRecorder) (handler.ErrorResponse, error) {
	var resp handler.ErrorResponse
	err := json.NewDecoder(w.Body).Decode(&resp)
	return resp, err
}
