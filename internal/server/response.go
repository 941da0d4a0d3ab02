package server

import (
	"github.com/retplan/retplan/internal/domain"
	"github.com/retplan/retplan/internal/portfolio"
)

// Calculation outcomes surfaced in the response metadata.
const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)

// CalculationMetadata describes one calculation run: its identifier, timing
// and outcome.
type CalculationMetadata struct {
	CalculationID          string `json:"calculationId"`
	CalculationStartedAt   string `json:"calculationStartedAt"`
	CalculationCompletedAt string `json:"calculationCompletedAt"`
	CalculationDurationMs  int64  `json:"calculationDurationMs"`
	CalculationOutcome     string `json:"calculationOutcome"`
}

// CalculateResponse is the envelope for POST /api/v1/calculate.
type CalculateResponse struct {
	Metadata CalculationMetadata     `json:"metadata"`
	Result   domain.ProjectionResult `json:"result"`
}

// OptimizeResponse is the envelope for POST /api/v1/optimize.
type OptimizeResponse struct {
	Metadata CalculationMetadata `json:"metadata"`
	Result   portfolio.Analysis  `json:"result"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Outcome string `json:"outcome"`
	Message string `json:"message"`
}
