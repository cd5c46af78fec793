// Package financials fetches the upstream income statements and applies the
// caller's filter bounds.
package financials

import (
	"context"
	"errors"

	"github.com/rogerio-castellano/financial-data-api/internal/models"
	"github.com/rogerio-castellano/financial-data-api/internal/repo"
)

// Kind classifies a failure of FilteredStatements.
type Kind int

const (
	KindUnexpected Kind = iota
	KindInvalidParameter
	KindUpstreamUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindInvalidParameter:
		return "invalid_parameter"
	case KindUpstreamUnavailable:
		return "upstream_unavailable"
	default:
		return "unexpected"
	}
}

// Summary is the caller-facing description of the failure kind.
func (k Kind) Summary() string {
	switch k {
	case KindInvalidParameter:
		return "Invalid query parameter value"
	case KindUpstreamUnavailable:
		return "Failed to fetch data from the external API"
	default:
		return "An unexpected error occurred"
	}
}

// Error is returned by Service for every failure.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// InvalidParameter builds an Error of KindInvalidParameter.
func InvalidParameter(err error) *Error {
	return &Error{Kind: KindInvalidParameter, Err: err}
}

// KindOf reports the Kind of err. Errors not produced by this package are unexpected.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnexpected
}

func classify(err error) *Error {
	var fe *Error
	var pe *repo.ParamError
	var ue *repo.UpstreamError
	switch {
	case errors.As(err, &fe):
		return fe
	case errors.As(err, &pe):
		return &Error{Kind: KindInvalidParameter, Err: err}
	case errors.As(err, &ue):
		return &Error{Kind: KindUpstreamUnavailable, Err: err}
	default:
		return &Error{Kind: KindUnexpected, Err: err}
	}
}

// Service combines the statement repository with request filtering.
type Service struct {
	statements repo.IncomeStatementRepository
}

func NewService(statements repo.IncomeStatementRepository) *Service {
	return &Service{statements: statements}
}

// FilteredStatements parses q, fetches every statement once and keeps the ones
// matching all bounds, in upstream order. Parameters are validated before any
// upstream call. Every returned error is an *Error.
func (s *Service) FilteredStatements(ctx context.Context, q repo.IncomeQuery) ([]models.FinancialRecord, error) {
	filter, err := repo.ParseIncomeFilter(q)
	if err != nil {
		return nil, classify(err)
	}

	records, err := s.statements.GetAll(ctx)
	if err != nil {
		return nil, classify(err)
	}

	return repo.FilterRecords(records, filter), nil
}
