package repo

import (
	"context"
	"sync"

	"github.com/rogerio-castellano/financial-data-api/internal/models"
)

// InMemoryIncomeStatementRepository is an in-memory implementation of IncomeStatementRepository.
type InMemoryIncomeStatementRepository struct {
	mu      sync.Mutex
	records []models.FinancialRecord
	err     error
	fetches int
}

// NewInMemoryIncomeStatementRepository creates a repository serving the given records.
func NewInMemoryIncomeStatementRepository(records ...models.FinancialRecord) *InMemoryIncomeStatementRepository {
	return &InMemoryIncomeStatementRepository{records: records}
}

// GetAll returns a copy of the stored records, or the configured failure.
func (r *InMemoryIncomeStatementRepository) GetAll(ctx context.Context) ([]models.FinancialRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.fetches++
	if r.err != nil {
		return nil, r.err
	}
	if err := ctx.Err(); err != nil {
		return nil, &UpstreamError{Err: err}
	}
	out := make([]models.FinancialRecord, len(r.records))
	copy(out, r.records)
	return out, nil
}

// SetRecords replaces the stored records.
func (r *InMemoryIncomeStatementRepository) SetRecords(records ...models.FinancialRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = records
}

// SetError makes every following GetAll fail with err. A nil err clears it.
func (r *InMemoryIncomeStatementRepository) SetError(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

// Fetches reports how many times GetAll has been called.
func (r *InMemoryIncomeStatementRepository) Fetches() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fetches
}

func (r *InMemoryIncomeStatementRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = nil
	r.err = nil
	r.fetches = 0
}
