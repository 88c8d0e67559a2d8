// Package http exposes the balancing engine as a stateless JSON API.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/stoich/internal/observability"
	"github.com/aretw0/stoich/pkg/balance"
	"github.com/aretw0/stoich/pkg/chem"
	"github.com/aretw0/stoich/pkg/ports"
	"github.com/aretw0/stoich/pkg/session"
)

// Server holds the handler dependencies.
type Server struct {
	Sessions *session.Manager
	Metrics  *observability.Metrics
}

// NewHandler builds the router. sessions may be nil for a purely stateless
// API; metrics may be nil to skip instrumentation and the /metrics endpoint.
func NewHandler(sessions *session.Manager, metrics *observability.Metrics) http.Handler {
	s := &Server{Sessions: sessions, Metrics: metrics}

	r := chi.NewRouter()
	r.Get("/healthz", s.Health)
	r.Post("/balance", s.Balance)
	r.Post("/work", s.Work)
	r.Get("/elements/{symbol}", s.Element)
	r.Get("/history", s.History)
	if metrics != nil {
		r.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
	}
	return enableCORS(r)
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

// BalanceRequest is the body of POST /balance and POST /work.
type BalanceRequest struct {
	Equation string `json:"equation"`
}

// BalanceResponse is the success payload of POST /balance.
type BalanceResponse struct {
	Balanced             string `json:"balanced"`
	ReactantCoefficients []int  `json:"reactant_coefficients"`
	ProductCoefficients  []int  `json:"product_coefficients"`
	Arrow                string `json:"arrow"`
}

// ErrorResponse is the failure payload for every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// Health handles GET /healthz.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Balance handles POST /balance.
func (s *Server) Balance(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeBalanceRequest(w, r)
	if !ok {
		return
	}

	started := time.Now()
	res, err := balance.Balance(req.Equation)
	s.observe(err, started)
	if err != nil {
		slog.Debug("balance rejected", "equation", req.Equation, "error", err)
		writeBalanceError(w, err)
		return
	}

	if s.Sessions != nil {
		s.Sessions.Record(r.Context(), req.Equation, res)
	}

	writeJSON(w, http.StatusOK, BalanceResponse{
		Balanced:             res.String(),
		ReactantCoefficients: res.ReactantCoefficients(),
		ProductCoefficients:  res.ProductCoefficients(),
		Arrow:                res.Equation.Arrow,
	})
}

// WorkResponse is the payload of POST /work.
type WorkResponse struct {
	Balanced string `json:"balanced"`
	Work     string `json:"work"` // markdown
}

// Work handles POST /work: balance and return the full trace as markdown.
func (s *Server) Work(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeBalanceRequest(w, r)
	if !ok {
		return
	}

	started := time.Now()
	res, err := balance.Balance(req.Equation)
	s.observe(err, started)
	if err != nil {
		writeBalanceError(w, err)
		return
	}

	if s.Sessions != nil {
		s.Sessions.Record(r.Context(), req.Equation, res)
	}

	writeJSON(w, http.StatusOK, WorkResponse{
		Balanced: res.String(),
		Work:     res.Trace.Markdown(),
	})
}

// ElementResponse is the payload of GET /elements/{symbol}.
type ElementResponse struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// Element handles GET /elements/{symbol}.
func (s *Server) Element(w http.ResponseWriter, r *http.Request) {
	sym := chem.Symbol(chi.URLParam(r, "symbol"))
	name, ok := chem.ElementName(sym)
	if !ok {
		writeJSON(w, http.StatusNotFound, ErrorResponse{
			Error: fmt.Sprintf("%q is not a known element symbol", sym),
			Kind:  "unknown_element",
		})
		return
	}
	writeJSON(w, http.StatusOK, ElementResponse{Symbol: string(sym), Name: name})
}

// History handles GET /history.
func (s *Server) History(w http.ResponseWriter, r *http.Request) {
	if s.Sessions == nil {
		writeJSON(w, http.StatusOK, []ports.HistoryEntry{})
		return
	}
	entries, err := s.Sessions.Recent(r.Context(), 20)
	if err != nil {
		if errors.Is(err, ports.ErrHistoryEmpty) {
			writeJSON(w, http.StatusOK, []ports.HistoryEntry{})
			return
		}
		slog.Error("history fetch failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "history unavailable", Kind: "internal"})
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) decodeBalanceRequest(w http.ResponseWriter, r *http.Request) (BalanceRequest, bool) {
	var req BalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Warn("invalid request body", "error", err)
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Kind: "bad_request"})
		return req, false
	}
	if req.Equation == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "equation is required", Kind: "bad_request"})
		return req, false
	}
	return req, true
}

func (s *Server) observe(err error, started time.Time) {
	if s.Metrics == nil {
		return
	}
	outcome := observability.OutcomeBalanced
	var pe *chem.ParseError
	var be *chem.BalanceError
	switch {
	case errors.As(err, &pe):
		outcome = observability.OutcomeParseError
	case errors.As(err, &be):
		outcome = observability.OutcomeUnsolvable
	}
	s.Metrics.ObserveBalance(outcome, time.Since(started))
}

// writeBalanceError maps the error taxonomy to HTTP. Both parse failures and
// unsolvable equations come back as 422 with a machine-readable kind.
func writeBalanceError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
		Error: err.Error(),
		Kind:  errorKind(err),
	})
}

func errorKind(err error) string {
	for sentinel, kind := range map[error]string{
		chem.ErrEmptyFormula:           "empty_formula",
		chem.ErrEmptyReactantSide:      "empty_reactant_side",
		chem.ErrEmptyProductSide:       "empty_product_side",
		chem.ErrUnknownElement:         "unknown_element",
		chem.ErrNumeralInPlaceOfSymbol: "numeral_in_place_of_symbol",
		chem.ErrInvalidCharacter:       "invalid_character",
		chem.ErrInvalidMultiplier:      "invalid_multiplier",
		chem.ErrUnbalancedBrackets:     "unbalanced_brackets",
		chem.ErrMissingSeparator:       "missing_separator",
		chem.ErrNoSolution:             "no_solution",
		chem.ErrAmbiguousSolution:      "ambiguous_solution",
		chem.ErrDisconnectedSystem:     "disconnected_system",
		chem.ErrNonPositiveCoefficient: "non_positive_coefficient",
	} {
		if errors.Is(err, sentinel) {
			return kind
		}
	}
	return "internal"
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}
