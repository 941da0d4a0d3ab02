package server

import (
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/retplan/retplan/internal/domain"
)

func (s *Server) handleHealth(ctx *fasthttp.RequestCtx) {
	ctx.SetContentType("application/json")
	ctx.SetBodyString(`{"status":"ok"}`)
}

func (s *Server) handleCalculate(ctx *fasthttp.RequestCtx) {
	household, ok := s.decodeHousehold(ctx)
	if !ok {
		return
	}

	start := time.Now()
	result := s.engine.CalculateRetirement(household)
	completed := time.Now()

	resp := CalculateResponse{
		Metadata: runMetadata(start, completed),
		Result:   result,
	}
	s.log.Info("calculation served",
		zap.String("calculationId", resp.Metadata.CalculationID),
		zap.Int64("durationMs", resp.Metadata.CalculationDurationMs))

	s.writeJSON(ctx, resp)
}

func (s *Server) handleOptimize(ctx *fasthttp.RequestCtx) {
	household, ok := s.decodeHousehold(ctx)
	if !ok {
		return
	}

	start := time.Now()
	analysis := s.optimizer.Analyze(household)
	completed := time.Now()

	resp := OptimizeResponse{
		Metadata: runMetadata(start, completed),
		Result:   analysis,
	}
	s.log.Info("optimization served",
		zap.String("calculationId", resp.Metadata.CalculationID),
		zap.Int("rebalanceActions", len(analysis.Rebalancing)))

	s.writeJSON(ctx, resp)
}

// decodeHousehold parses the request body into planner inputs and normalizes
// them. Malformed documents are the only client error; missing fields coerce
// per the engine's tolerant-input rules.
func (s *Server) decodeHousehold(ctx *fasthttp.RequestCtx) (domain.Household, bool) {
	var inputs domain.PlannerInputs
	if err := json.Unmarshal(ctx.PostBody(), &inputs); err != nil {
		s.writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return domain.Household{}, false
	}
	if err := s.parser.ValidateInputs(&inputs); err != nil {
		s.writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return domain.Household{}, false
	}
	return domain.NormalizeHousehold(inputs), true
}

func runMetadata(start, completed time.Time) CalculationMetadata {
	return CalculationMetadata{
		CalculationID:          uuid.New().String(),
		CalculationStartedAt:   start.UTC().Format(time.RFC3339Nano),
		CalculationCompletedAt: completed.UTC().Format(time.RFC3339Nano),
		CalculationDurationMs:  completed.Sub(start).Milliseconds(),
		CalculationOutcome:     OutcomeSuccess,
	}
}

func (s *Server) writeJSON(ctx *fasthttp.RequestCtx, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		s.writeError(ctx, fasthttp.StatusInternalServerError, "failed to encode response")
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}

func (s *Server) writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	body, _ := json.Marshal(ErrorResponse{Status: status, Outcome: OutcomeFailure, Message: message})
	ctx.SetBody(body)
}
