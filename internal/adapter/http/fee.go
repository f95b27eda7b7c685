package httpadapter

import (
	"encoding/json"
	"net/http"
)

type setFeeRequest struct {
	Bip int64 `json:"bip"`
}

// handleSetFee updates the usage fee rate. Admin only.
func (h *Handler) handleSetFee(w http.ResponseWriter, r *http.Request) {
	var req setFeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.svc.SetUsageFee(r.Context(), caller(r), req.Bip); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]int64{"bip": req.Bip})
}

// handleGetFee returns the current usage fee rate.
func (h *Handler) handleGetFee(w http.ResponseWriter, r *http.Request) {
	bip, err := h.svc.UsageFee(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]int64{"bip": bip})
}
