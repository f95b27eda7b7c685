package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"presale-ledger/internal/core/port"
)

// Handler is the inbound HTTP adapter. It holds the presale use case and
// a logger for structured logging; routes are registered on a chi.Router.
// The caller account is taken from the X-Account header — authentication
// is outside this service's scope.
type Handler struct {
	svc    port.PresaleUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.PresaleUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/presales", h.handleStartPresales)
		r.Get("/presales", h.handleListPresales)
		r.Get("/presales/{id}", h.handleGetPresale)
		r.Post("/presales/{id}/buy", h.handleBuy)
		r.Post("/presales/{id}/end", h.handleEndPresale)
		r.Post("/presales/{id}/withdraw", h.handleWithdraw)
		r.Get("/fee", h.handleGetFee)
		r.Put("/fee", h.handleSetFee)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func caller(r *http.Request) string {
	return r.Header.Get("X-Account")
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps ledger errors onto HTTP statuses while preserving the
// exact error text callers match on.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, port.ErrInvalidID):
		status = http.StatusNotFound
	case errors.Is(err, port.ErrNotAdmin), errors.Is(err, port.ErrNotOwner):
		status = http.StatusForbidden
	case errors.Is(err, port.ErrNotEnoughEther):
		status = http.StatusPaymentRequired
	case errors.Is(err, port.ErrNotEnoughTokens),
		errors.Is(err, port.ErrSaleNotStarted),
		errors.Is(err, port.ErrSaleEnded),
		errors.Is(err, port.ErrNotEnded),
		errors.Is(err, port.ErrAlreadyClosed),
		errors.Is(err, port.ErrNotClosed),
		errors.Is(err, port.ErrNothingLeft),
		errors.Is(err, port.ErrReentrancy):
		status = http.StatusConflict
	case errors.Is(err, port.ErrLengthMismatch),
		errors.Is(err, port.ErrEndBeforeStart),
		errors.Is(err, port.ErrZeroAmount),
		errors.Is(err, port.ErrInvalidPrice):
		status = http.StatusUnprocessableEntity
	}
	if status == http.StatusInternalServerError {
		h.logger.Error("internal error", slog.Any("error", err))
	}
	h.writeJSON(w, status, map[string]string{"error": err.Error()})
}
