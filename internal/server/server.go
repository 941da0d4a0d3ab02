// Package server exposes the planning engine over HTTP.
package server

import (
	"fmt"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/retplan/retplan/internal/calculation"
	"github.com/retplan/retplan/internal/config"
	"github.com/retplan/retplan/internal/portfolio"
)

// Server routes planning requests to the calculation engine and the
// portfolio optimizer.
type Server struct {
	engine    *calculation.CalculationEngine
	optimizer *portfolio.Optimizer
	parser    *config.InputParser
	log       *zap.Logger
}

// New creates a Server. A nil logger disables request logging.
func New(logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	engine := calculation.NewCalculationEngine()
	engine.SetLogger(logger.Sugar())

	parser := config.NewInputParser()
	parser.SetLogger(logger.Sugar())

	return &Server{
		engine:    engine,
		optimizer: portfolio.NewOptimizer(),
		parser:    parser,
		log:       logger,
	}
}

// ListenAndServe blocks serving HTTP on the given port.
func (s *Server) ListenAndServe(port string) error {
	s.log.Info("planning server starting", zap.String("port", port))
	if err := fasthttp.ListenAndServe(":"+port, s.route); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func (s *Server) route(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())

	switch path {
	case "/healthz":
		s.handleHealth(ctx)
	case "/api/v1/calculate":
		s.requirePost(ctx, s.handleCalculate)
	case "/api/v1/optimize":
		s.requirePost(ctx, s.handleOptimize)
	default:
		s.writeError(ctx, fasthttp.StatusNotFound, "not found: "+path)
	}
}

func (s *Server) requirePost(ctx *fasthttp.RequestCtx, h func(*fasthttp.RequestCtx)) {
	if !ctx.IsPost() {
		s.writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
		return
	}
	h(ctx)
}
