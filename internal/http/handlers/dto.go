package handlers

import "github.com/rogerio-castellano/financial-data-api/internal/models"

type DataResponse struct {
	Data []models.FinancialRecord `json:"data"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
