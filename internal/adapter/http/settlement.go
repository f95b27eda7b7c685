package httpadapter

import (
	"net/http"

	"presale-ledger/internal/core/port"
)

// handleEndPresale closes a campaign after its window, routing proceeds
// into the liquidity pool. Owner only.
func (h *Handler) handleEndPresale(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeError(w, port.ErrInvalidID)
		return
	}
	result, err := h.svc.EndPresale(r.Context(), caller(r), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

// handleWithdraw releases unsold inventory of a closed campaign to its
// owner.
func (h *Handler) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeError(w, port.ErrInvalidID)
		return
	}
	amount, err := h.svc.Withdraw(r.Context(), caller(r), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"amount": amount.String()})
}
