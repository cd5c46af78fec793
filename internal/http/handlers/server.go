package handlers

import (
	"context"

	"github.com/gorilla/schema"
	"github.com/sirupsen/logrus"

	"github.com/rogerio-castellano/financial-data-api/internal/models"
	"github.com/rogerio-castellano/financial-data-api/internal/repo"
)

// StatementService returns the filtered income statements for one request.
type StatementService interface {
	FilteredStatements(ctx context.Context, q repo.IncomeQuery) ([]models.FinancialRecord, error)
}

// Server holds the dependencies shared by every handler. It has no mutable
// state, so one Server serves concurrent requests.
type Server struct {
	statements StatementService
	logger     logrus.FieldLogger
	decoder    *schema.Decoder
}

func NewServer(statements StatementService, logger logrus.FieldLogger) *Server {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	return &Server{
		statements: statements,
		logger:     logger,
		decoder:    decoder,
	}
}
