package handlers

import (
	"errors"
	"net/http"

	"github.com/rogerio-castellano/financial-data-api/internal/export"
	"github.com/rogerio-castellano/financial-data-api/internal/financials"
	"github.com/rogerio-castellano/financial-data-api/internal/repo"
)

// GetDataHandler godoc
// @Summary Filter annual income statements
// @Description Fetches the annual AAPL income statements and keeps the ones matching every supplied bound. Empty values are ignored.
// @Tags data
// @Produce json
// @Param start_date query string false "Earliest statement date, compared as text (e.g. 2020-09-26)"
// @Param end_date query string false "Latest statement date, compared as text (e.g. 2024-09-28)"
// @Param min_revenue query int false "Minimum revenue"
// @Param max_revenue query int false "Maximum revenue"
// @Param min_net_income query int false "Minimum net income"
// @Param max_net_income query int false "Maximum net income"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameter value"
// @Failure 500 {object} ErrorResponse "Upstream or unexpected failure"
// @Router /data [get]
func (s *Server) GetDataHandler(w http.ResponseWriter, r *http.Request) {
	q, err := s.decodeIncomeQuery(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	records, err := s.statements.FilteredStatements(r.Context(), q)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, DataResponse{Data: records}); err != nil {
		s.logger.WithError(err).Error("failed to write data response")
	}
}

// ExportDataHandler godoc
// @Summary Export filtered annual income statements
// @Tags data
// @Produce text/csv, application/json
// @Param format query string true "Export format (csv or json)"
// @Param start_date query string false "Earliest statement date"
// @Param end_date query string false "Latest statement date"
// @Param min_revenue query int false "Minimum revenue"
// @Param max_revenue query int false "Maximum revenue"
// @Param min_net_income query int false "Minimum net income"
// @Param max_net_income query int false "Maximum net income"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse "Invalid query parameter value"
// @Failure 500 {object} ErrorResponse "Upstream or unexpected failure"
// @Router /data/export [get]
func (s *Server) ExportDataHandler(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format != "csv" && format != "json" {
		s.writeError(w, r, financials.InvalidParameter(&repo.ParamError{
			Param: "format",
			Err:   errors.New(`must be "csv" or "json"`),
		}))
		return
	}

	q, err := s.decodeIncomeQuery(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	records, err := s.statements.FilteredStatements(r.Context(), q)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	switch format {
	case "json":
		headers := http.Header{"Content-Disposition": []string{`attachment; filename="income-statements.json"`}}
		if err := writeJSON(w, http.StatusOK, records, headers); err != nil {
			s.logger.WithError(err).Error("failed to write json export")
		}

	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="income-statements.csv"`)
		if err := export.WriteCSV(w, records); err != nil {
			s.logger.WithError(err).Error("failed to write csv export")
		}
	}
}

// HealthHandler godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"}); err != nil {
		s.logger.WithError(err).Error("failed to write health response")
	}
}
