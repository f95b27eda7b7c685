package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"presale-ledger/internal/core/domain"
	"presale-ledger/internal/core/port"
)

// startPresalesRequest carries the batched parallel arrays of a creation
// call, mirroring the wire format of the historical interface.
type startPresalesRequest struct {
	StartTimes []int64           `json:"start_times"`
	EndTimes   []int64           `json:"end_times"`
	UnitPrices []decimal.Decimal `json:"unit_prices"`
	Amounts    []decimal.Decimal `json:"amounts"`
	SaleTokens []string          `json:"sale_tokens"`
}

type campaignView struct {
	ID          int64           `json:"id"`
	Owner       string          `json:"owner"`
	StartTime   int64           `json:"start_time"`
	EndTime     int64           `json:"end_time"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	AmountLeft  decimal.Decimal `json:"amount_left"`
	Raised      decimal.Decimal `json:"raised"`
	State       string          `json:"state"`
	SaleToken   string          `json:"sale_token"`
}

func viewOf(c *domain.Campaign) campaignView {
	return campaignView{
		ID:          c.ID,
		Owner:       c.Owner,
		StartTime:   c.StartTime,
		EndTime:     c.EndTime,
		UnitPrice:   c.UnitPrice,
		TotalAmount: c.TotalAmount,
		AmountLeft:  c.AmountLeft,
		Raised:      c.Raised,
		State:       c.State.String(),
		SaleToken:   c.SaleToken,
	}
}

func campaignID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// handleStartPresales records a batch of campaigns for the caller. The
// whole batch is rejected on any shape error; on success the assigned
// IDs are returned.
func (h *Handler) handleStartPresales(w http.ResponseWriter, r *http.Request) {
	var req startPresalesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	ids, err := h.svc.StartPresales(r.Context(), caller(r), port.StartPresalesRequest{
		StartTimes: req.StartTimes,
		EndTimes:   req.EndTimes,
		UnitPrices: req.UnitPrices,
		Amounts:    req.Amounts,
		SaleTokens: req.SaleTokens,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string][]int64{"ids": ids})
}

// handleListPresales returns all campaign records.
func (h *Handler) handleListPresales(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.svc.ListPresales(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	views := make([]campaignView, 0, len(campaigns))
	for _, c := range campaigns {
		views = append(views, viewOf(c))
	}
	h.writeJSON(w, http.StatusOK, views)
}

// handleGetPresale returns one campaign record. Unknown IDs produce 404
// with the canonical error text.
func (h *Handler) handleGetPresale(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeError(w, port.ErrInvalidID)
		return
	}
	c, err := h.svc.Presale(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, viewOf(c))
}

type buyRequest struct {
	TokenAmount decimal.Decimal `json:"token_amount"`
	Payment     decimal.Decimal `json:"payment"`
}

// handleBuy executes a purchase for the caller account.
func (h *Handler) handleBuy(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeError(w, port.ErrInvalidID)
		return
	}
	var req buyRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	receipt, err := h.svc.Buy(r.Context(), caller(r), id, req.TokenAmount, req.Payment)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, receipt)
}
