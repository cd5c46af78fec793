package repo

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rogerio-castellano/financial-data-api/internal/models"
)

// IncomeStatementRepository defines the interface for reading income statements.
type IncomeStatementRepository interface {
	GetAll(ctx context.Context) ([]models.FinancialRecord, error)
}

// UpstreamError reports that the upstream provider could not be reached or
// answered with a non-success status.
type UpstreamError struct {
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("upstream responded with status %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
