package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/rogerio-castellano/financial-data-api/internal/financials"
	"github.com/rogerio-castellano/financial-data-api/internal/repo"
)

// decodeIncomeQuery reads the six filter parameters. Repeated keys keep the last value.
func (s *Server) decodeIncomeQuery(r *http.Request) (repo.IncomeQuery, error) {
	var q repo.IncomeQuery
	if err := s.decoder.Decode(&q, r.URL.Query()); err != nil {
		return repo.IncomeQuery{}, financials.InvalidParameter(err)
	}
	return q, nil
}

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any, headers ...http.Header) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	if len(headers) > 0 {
		for key, value := range headers[0] {
			w.Header()[key] = value
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}

	return nil
}

// writeError is the only place a failure becomes an HTTP status.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind := financials.KindOf(err)
	status := http.StatusInternalServerError
	if kind == financials.KindInvalidParameter {
		status = http.StatusBadRequest
	}

	entry := s.logger.WithFields(logrus.Fields{
		"kind":       kind.String(),
		"status":     status,
		"path":       r.URL.Path,
		"request_id": middleware.GetReqID(r.Context()),
	}).WithError(err)
	if status >= http.StatusInternalServerError {
		entry.Error(kind.Summary())
	} else {
		entry.Warn(kind.Summary())
	}

	resp := ErrorResponse{Error: kind.Summary(), Details: err.Error()}
	if err := writeJSON(w, status, resp); err != nil {
		s.logger.WithError(err).Error("failed to write error response")
	}
}
