// Package chi implements the HTTP transport over the analysis engine.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kailas-cloud/biaslens/internal/domain"
	"github.com/kailas-cloud/biaslens/internal/domain/analysis"
	"github.com/kailas-cloud/biaslens/internal/metrics"
	analyzeuc "github.com/kailas-cloud/biaslens/internal/usecase/analyze"
	healthuc "github.com/kailas-cloud/biaslens/internal/usecase/health"
)

// Error codes returned in JSON error responses.
const (
	codeBadRequest    = "bad_request"
	codeInvalidInput  = "invalid_input"
	codeInternalError = "internal_error"
)

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the analysis engine over HTTP.
type Server struct {
	analyzer      *analyzeuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	maxTextBytes  int64
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(analyzer *analyzeuc.Service, health *healthuc.Service, logger *zap.Logger) *Server {
	s := &Server{
		analyzer:     analyzer,
		health:       health,
		logger:       logger,
		maxTextBytes: 1 << 20,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidInput, http.StatusBadRequest, codeInvalidInput),
		sentinelHandler(domain.ErrDataLoad, http.StatusInternalServerError, codeInternalError),
	}
	return s
}

// WithMaxTextBytes sets the request body size limit for /analyze.
func (s *Server) WithMaxTextBytes(n int) *Server {
	if n > 0 {
		s.maxTextBytes = int64(n)
	}
	return s
}

// Register mounts all API routes on the router.
func (s *Server) Register(r chi.Router) {
	r.Get("/", s.Root)
	r.Post("/analyze", s.AnalyzeText)
	r.Get("/categories", s.ListCategories)
	r.Get("/health", s.Health)
}

// analyzeRequest is the POST /analyze body.
type analyzeRequest struct {
	Text string `json:"text"`
}

// analyzeResponse mirrors the original wire format of the analysis API.
type analyzeResponse struct {
	Text            string                   `json:"text"`
	BiasScores      analysis.ScoreVector     `json:"bias_scores"`
	OverallBias     string                   `json:"overall_bias"`
	Confidence      float64                  `json:"confidence"`
	DetectedPhrases analysis.DetectedPhrases `json:"detected_phrases"`
}

// AnalyzeText handles POST /analyze.
func (s *Server) AnalyzeText(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxTextBytes)

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	start := time.Now()
	report, err := s.analyzer.Analyze(r.Context(), req.Text)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	metrics.AnalysisDuration.Observe(time.Since(start).Seconds())
	metrics.AnalysesTotal.WithLabelValues(report.Label()).Inc()
	for category, phrases := range report.Phrases() {
		metrics.PhraseMatchesTotal.WithLabelValues(category).Add(float64(len(phrases)))
	}

	writeJSON(w, http.StatusOK, analyzeResponse{
		Text:            report.Text(),
		BiasScores:      report.Scores(),
		OverallBias:     report.Label(),
		Confidence:      report.Confidence(),
		DetectedPhrases: report.Phrases(),
	})
}

// categoriesResponse is the GET /categories body.
type categoriesResponse struct {
	Categories  []string `json:"categories"`
	Description string   `json:"description"`
}

// ListCategories handles GET /categories.
func (s *Server) ListCategories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, categoriesResponse{
		Categories:  s.analyzer.Categories(),
		Description: "Available bias categories for analysis",
	})
}

// Root handles GET / as a liveness probe.
func (s *Server) Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Bias Analyzer API is running",
	})
}

// healthResponse is the GET /health body.
type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Health handles GET /health.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for name, result := range report.Checks {
		checks[name] = string(result)
	}

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, healthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	for _, h := range s.errorHandlers {
		if h(w, err, err.Error()) {
			return
		}
	}
	// Unexpected engine failure: attach the detail string, never swallow.
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError,
		domain.ErrAnalysisFailed.Error()+": "+err.Error())
}
