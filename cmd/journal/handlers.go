package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"trade-journal-go/internal/config"
	"trade-journal-go/internal/importer"
	"trade-journal-go/internal/journal"
	"trade-journal-go/internal/models"
)

// APIHandler holds dependencies for the API endpoints.
type APIHandler struct {
	log *zap.Logger
	svc *journal.Service
	imp *importer.Importer
	cfg *config.Config
}

// NewAPIHandler creates a new APIHandler.
func NewAPIHandler(log *zap.Logger, svc *journal.Service, imp *importer.Importer, cfg *config.Config) *APIHandler {
	return &APIHandler{log: log, svc: svc, imp: imp, cfg: cfg}
}

func (h *APIHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps the error taxonomy onto HTTP statuses. Validation
// failures carry their field and code through so the UI can attach the
// message to the right input.
func (h *APIHandler) writeError(w http.ResponseWriter, err error) {
	var verr *journal.ValidationError
	if errors.As(err, &verr) {
		h.writeJSON(w, http.StatusBadRequest, verr)
		return
	}
	var ferr *importer.FormatError
	if errors.As(err, &ferr) {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"reason": ferr.Error()})
		return
	}
	if errors.Is(err, journal.ErrNotFound) {
		h.writeJSON(w, http.StatusNotFound, map[string]string{"reason": err.Error()})
		return
	}
	h.log.Error("Request failed", zap.Error(err))
	h.writeJSON(w, http.StatusInternalServerError, map[string]string{"reason": err.Error()})
}

// StatusHandler reports service health and the stored trade count.
func (h *APIHandler) StatusHandler(w http.ResponseWriter, r *http.Request) {
	trades, err := h.svc.List()
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"trades": len(trades),
	})
}

// TradesHandler lists, adds or updates trades.
func (h *APIHandler) TradesHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listTrades(w, r)
	case http.MethodPost:
		h.addTrade(w, r)
	case http.MethodPut:
		h.updateTrade(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *APIHandler) listTrades(w http.ResponseWriter, r *http.Request) {
	trades, err := h.svc.List()
	if err != nil {
		h.writeError(w, err)
		return
	}

	q := r.URL.Query()
	f := journal.Filter{
		StartDate: q.Get("from"),
		EndDate:   q.Get("to"),
		Search:    q.Get("search"),
	}
	if s := q.Get("symbol"); s != "" {
		f.Symbols = []string{s}
	}
	if s := q.Get("status"); s != "" {
		f.Statuses = []string{s}
	}
	if s := q.Get("strategy"); s != "" {
		f.Strategies = []models.Strategy{models.Strategy(s)}
	}

	h.writeJSON(w, http.StatusOK, f.Apply(trades))
}

func (h *APIHandler) addTrade(w http.ResponseWriter, r *http.Request) {
	var t models.Trade
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"reason": "invalid JSON: " + err.Error()})
		return
	}
	added, err := h.svc.Add(t)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, added)
}

func (h *APIHandler) updateTrade(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"reason": "missing key parameter"})
		return
	}
	var t models.Trade
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"reason": "invalid JSON: " + err.Error()})
		return
	}
	updated, err := h.svc.Update(key, t)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, updated)
}

// CloseHandler closes an open position: sets the exit price on the
// trade identified by its dedup key, P&L and status follow.
func (h *APIHandler) CloseHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Key       string          `json:"key"`
		ExitPrice decimal.Decimal `json:"exit_price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"reason": "invalid JSON: " + err.Error()})
		return
	}
	closed, err := h.svc.Close(req.Key, req.ExitPrice)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, closed)
}

// StatsHandler returns summary statistics over the stored trades.
func (h *APIHandler) StatsHandler(w http.ResponseWriter, r *http.Request) {
	trades, err := h.svc.List()
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, journal.Summarize(trades))
}

// ImportHandler accepts a multipart CSV upload and runs the
// reconciliation pipeline. The response always carries the import
// count, the duplicate count and the per-row skip reasons.
func (h *APIHandler) ImportHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"reason": "missing file upload"})
		return
	}
	defer file.Close()

	opts := importer.Options{SkipDuplicates: h.cfg.Importer.SkipDuplicates}
	if s := r.URL.Query().Get("skip_duplicates"); s != "" {
		opts.SkipDuplicates = s == "true" || s == "1"
	}

	res, err := h.imp.ImportCSV(file, opts)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}
