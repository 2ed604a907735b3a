package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/iwvelando/loan-calculator/internal/quote"
	"github.com/iwvelando/loan-calculator/pkg/constants"
	"github.com/iwvelando/loan-calculator/pkg/mathutil"
	"go.uber.org/zap"
)

type handler struct {
	logger        *zap.Logger
	calculator    *quote.Calculator
	defaultAmount float64
	defaultYears  float64
	maxBodySize   int64
	version       string
}

// Options holds the optional handler settings.
// A nil default selects the built-in slider default; zero is a valid value.
type Options struct {
	DefaultAmount *float64
	DefaultYears  *float64
	MaxBodySize   int64
	Version       string
}

type quoteRequest struct {
	Amount *float64 `json:"amount"`
	Years  *float64 `json:"years"`
}

// NewHandler constructs the HTTP handler that serves the quote API.
func NewHandler(logger *zap.Logger, calculator *quote.Calculator, opts Options) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if calculator == nil {
		calculator = quote.NewCalculator(logger)
	}
	defaultAmount, defaultYears := constants.AmountDefault, constants.YearsDefault
	if opts.DefaultAmount != nil {
		defaultAmount = *opts.DefaultAmount
	}
	if opts.DefaultYears != nil {
		defaultYears = *opts.DefaultYears
	}
	if opts.MaxBodySize <= 0 {
		opts.MaxBodySize = constants.DefaultMaxBodyBytes
	}

	trimmedVersion := strings.TrimSpace(opts.Version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:        logger,
		calculator:    calculator,
		defaultAmount: defaultAmount,
		defaultYears:  defaultYears,
		maxBodySize:   opts.MaxBodySize,
		version:       trimmedVersion,
	}

	mux := http.NewServeMux()

	// Recalculated by the UI on every slider change
	mux.HandleFunc("/api/quote", h.handleQuote)

	// "Get your quote" action
	mux.HandleFunc("/api/quote/submit", h.handleSubmit)

	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

func (h *handler) handleQuote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()
	amount, err := parseNumber(query.Get("amount"), h.defaultAmount)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("invalid amount: %v", err), "server.handleQuote")
		return
	}
	years, err := parseNumber(query.Get("years"), h.defaultYears)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("invalid years: %v", err), "server.handleQuote")
		return
	}

	h.writeJSON(w, http.StatusOK, h.calculator.Calculate(amount, years))
}

func (h *handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxBodySize), "server.handleSubmit")
			return
		}
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to read quote request: %v", err), "server.handleSubmit")
		return
	}

	var req quoteRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode quote request: %v", err), "server.handleSubmit")
		return
	}

	amount, years := h.defaultAmount, h.defaultYears
	if req.Amount != nil {
		amount = *req.Amount
	}
	if req.Years != nil {
		years = *req.Years
	}

	q := h.calculator.Calculate(amount, years)
	if err := h.calculator.Submit(q); err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to submit quote: %v", err), "server.handleSubmit")
		return
	}

	h.writeJSON(w, http.StatusAccepted, q)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

// parseNumber parses a query value, returning fallback when it is empty.
// Any finite number is accepted; range checks are left to the UI. NaN and
// infinities are refused since they cannot be echoed back as JSON.
func parseNumber(value string, fallback float64) (float64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback, nil
	}
	n, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, err
	}
	if !mathutil.IsFinite(n) {
		return 0, fmt.Errorf("%s is not a finite number", trimmed)
	}
	return n, nil
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("quote request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
