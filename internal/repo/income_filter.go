package repo

import (
	"fmt"
	"strconv"

	"github.com/rogerio-castellano/financial-data-api/internal/models"
)

// IncomeQuery holds the filter values exactly as they arrive in the query string.
type IncomeQuery struct {
	StartDate    string `schema:"start_date"`
	EndDate      string `schema:"end_date"`
	MinRevenue   string `schema:"min_revenue"`
	MaxRevenue   string `schema:"max_revenue"`
	MinNetIncome string `schema:"min_net_income"`
	MaxNetIncome string `schema:"max_net_income"`
}

// IncomeFilter holds the optional bounds of one request. A nil bound imposes no constraint.
type IncomeFilter struct {
	StartDate    *string
	EndDate      *string
	MinRevenue   *int64
	MaxRevenue   *int64
	MinNetIncome *int64
	MaxNetIncome *int64
}

// ParamError reports a filter value that could not be converted.
type ParamError struct {
	Param string
	Err   error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Param, e.Err)
}

func (e *ParamError) Unwrap() error {
	return e.Err
}

// ParseIncomeFilter normalizes raw query values. Empty strings count as absent;
// zero is a real bound.
func ParseIncomeFilter(q IncomeQuery) (IncomeFilter, error) {
	f := IncomeFilter{
		StartDate: parseStringPtr(q.StartDate),
		EndDate:   parseStringPtr(q.EndDate),
	}

	var err error
	if f.MinRevenue, err = parseInt64Ptr("min_revenue", q.MinRevenue); err != nil {
		return IncomeFilter{}, err
	}
	if f.MaxRevenue, err = parseInt64Ptr("max_revenue", q.MaxRevenue); err != nil {
		return IncomeFilter{}, err
	}
	if f.MinNetIncome, err = parseInt64Ptr("min_net_income", q.MinNetIncome); err != nil {
		return IncomeFilter{}, err
	}
	if f.MaxNetIncome, err = parseInt64Ptr("max_net_income", q.MaxNetIncome); err != nil {
		return IncomeFilter{}, err
	}
	return f, nil
}

func parseStringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func parseInt64Ptr(param, s string) (*int64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, &ParamError{Param: param, Err: err}
	}
	return &v, nil
}

func matchesFilter(r models.FinancialRecord, f IncomeFilter) bool {
	if f.StartDate != nil && r.Date < *f.StartDate {
		return false
	}
	if f.EndDate != nil && r.Date > *f.EndDate {
		return false
	}
	if f.MinRevenue != nil && r.Revenue < *f.MinRevenue {
		return false
	}
	if f.MaxRevenue != nil && r.Revenue > *f.MaxRevenue {
		return false
	}
	if f.MinNetIncome != nil && r.NetIncome < *f.MinNetIncome {
		return false
	}
	if f.MaxNetIncome != nil && r.NetIncome > *f.MaxNetIncome {
		return false
	}
	return true
}

// FilterRecords returns the records satisfying every bound of f, in input order.
// The result is never nil.
func FilterRecords(records []models.FinancialRecord, f IncomeFilter) []models.FinancialRecord {
	filtered := make([]models.FinancialRecord, 0, len(records))
	for _, r := range records {
		if matchesFilter(r, f) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
