package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/waterjug"
	"github.com/aretw0/waterjug/api"
	"github.com/aretw0/waterjug/pkg/domain"
	"github.com/aretw0/waterjug/pkg/observability"
	"github.com/aretw0/waterjug/pkg/ports"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// maxBodyBytes caps request bodies; a puzzle is three integers.
const maxBodyBytes = 1 << 16

// requestSchema names the component validating POST /solution bodies.
const requestSchema = "SolutionRequest"

// SolutionResponse is the body of every successful POST /solution.
// Solution holds either a domain.Trace or the domain.NoSolution sentinel.
type SolutionResponse struct {
	Solution any `json:"solution"`
}

// ErrorResponse is the body of rejected requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Server serves the solver over HTTP.
type Server struct {
	Solver ports.Solver

	logger   *slog.Logger
	metrics  *observability.Metrics
	gatherer prometheus.Gatherer
	spec     *openapi3.T
	request  *openapi3.Schema
}

// Option configures the handler built by NewHandler.
type Option func(*Server)

// WithLogger sets the logger used for rejected requests and encode failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetrics counts requests on m and serves g on GET /metrics.
func WithMetrics(m *observability.Metrics, g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.metrics = m
		s.gatherer = g
	}
}

// LoadSpec parses and validates the embedded OpenAPI document.
func LoadSpec(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(api.Spec)
	if err != nil {
		return nil, fmt.Errorf("failed to load openapi spec: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid openapi spec: %w", err)
	}
	return doc, nil
}

// NewHandler creates a new HTTP handler for the solver.
func NewHandler(solver ports.Solver, opts ...Option) (http.Handler, error) {
	doc, err := LoadSpec(context.Background())
	if err != nil {
		return nil, err
	}
	ref, ok := doc.Components.Schemas[requestSchema]
	if !ok || ref.Value == nil {
		return nil, fmt.Errorf("openapi spec has no %s schema", requestSchema)
	}

	server := &Server{
		Solver:  solver,
		logger:  slog.Default(),
		spec:    doc,
		request: ref.Value,
	}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	if server.metrics != nil {
		r.Use(server.countRequests)
	}

	r.Post("/solution", server.Solve)
	r.Get("/health", server.GetHealth)
	r.Get("/info", server.GetInfo)

	// Swagger UI
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(api.Spec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})

	if server.gatherer != nil {
		r.Method(http.MethodGet, "/metrics", observability.Handler(server.gatherer))
	}

	return enableCORS(r), nil
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// countRequests labels requests with the matched route pattern, not the raw path.
func (s *Server) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		s.metrics.Requests.WithLabelValues(r.Method, route, fmt.Sprint(status)).Inc()
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Water Jug API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// Solve handles the POST /solution request.
func (s *Server) Solve(w http.ResponseWriter, r *http.Request) {
	puzzle, err := s.decodePuzzle(r)
	if err != nil {
		s.logger.Warn("Solve: Invalid request body", "error", err, "request_id", middleware.GetReqID(r.Context()))
		s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: domain.InvalidInputMessage})
		return
	}

	res, err := s.Solver.Solve(r.Context(), puzzle)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: domain.InvalidInputMessage})
			return
		}
		s.logger.Error("Solve failed", "error", err, "request_id", middleware.GetReqID(r.Context()))
		s.writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Solve failed"})
		return
	}

	if !res.Solved() {
		s.writeJSON(w, http.StatusOK, SolutionResponse{Solution: domain.NoSolution})
		return
	}
	s.writeJSON(w, http.StatusOK, SolutionResponse{Solution: res.Trace})
}

// decodePuzzle reads the body as generic JSON, validates it against the SolutionRequest
// schema and only then converts it, so nulls, strings, fractions and missing fields are
// all rejected the same way instead of decoding to zero.
func (s *Server) decodePuzzle(r *http.Request) (domain.Puzzle, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return domain.Puzzle{}, fmt.Errorf("read body: %w", err)
	}
	if len(body) > maxBodyBytes {
		return domain.Puzzle{}, fmt.Errorf("body exceeds %d bytes", maxBodyBytes)
	}

	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return domain.Puzzle{}, fmt.Errorf("decode body: %w", err)
	}
	if err := s.request.VisitJSON(raw); err != nil {
		return domain.Puzzle{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	fields := raw.(map[string]any)
	return domain.Puzzle{
		X: int(fields[domain.KeyCapacityX].(float64)),
		Y: int(fields[domain.KeyCapacityY].(float64)),
		Z: int(fields[domain.KeyAmountWanted].(float64)),
	}, nil
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if s.spec.Info != nil {
		apiVersion = s.spec.Info.Version
	}

	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":         "waterjug-http",
		"version":     strings.TrimSpace(waterjug.Version),
		"api_version": apiVersion,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Response encode failed", "error", err)
	}
}
