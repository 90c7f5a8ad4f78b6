package rest

import (
	"net/http"

	"glowdesk-be/internal/payout"
	"glowdesk-be/internal/transport"
	"glowdesk-be/internal/utils"

	"github.com/google/uuid"
)

type createPayoutRequest struct {
	VendorID string `json:"vendorId"`
}

type processPayoutRequest struct {
	ExternalRef string `json:"externalRef"`
}

func payoutFilter(r *http.Request) payout.ListFilter {
	return payout.ListFilter{
		Status: payout.Status(transport.QueryString(r, "status")),
		Limit:  transport.QueryInt(r, "limit", 0),
		Page:   transport.QueryInt(r, "page", 1),
	}
}

func (h *Handler) createPayout(w http.ResponseWriter, r *http.Request) {
	var req createPayoutRequest
	if !transport.DecodeJSON(w, r, &req) {
		return
	}

	vendorID, err := uuid.Parse(req.VendorID)
	if err != nil {
		utils.WriteJSONError(w, "invalid vendorId", http.StatusBadRequest)
		return
	}

	p, err := h.Payouts.Create(r.Context(), vendorID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, payout.ToResponse(p))
}

func (h *Handler) listPayouts(w http.ResponseWriter, r *http.Request) {
	filter := payoutFilter(r)

	vendorID, ok := transport.QueryUUID(w, r, "vendorId")
	if !ok {
		return
	}
	filter.VendorID = vendorID

	list, err := h.Payouts.List(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, payout.ToResponses(list))
}

func (h *Handler) myPayouts(w http.ResponseWriter, r *http.Request) {
	list, err := h.Payouts.ListMine(r.Context(), payoutFilter(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, payout.ToResponses(list))
}

func (h *Handler) processPayout(w http.ResponseWriter, r *http.Request) {
	id, ok := transport.PathUUID(w, r, "id")
	if !ok {
		return
	}

	var req processPayoutRequest
	if !transport.DecodeJSON(w, r, &req) {
		return
	}

	p, err := h.Payouts.Process(r.Context(), id, req.ExternalRef)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, payout.ToResponse(p))
}

func (h *Handler) failPayout(w http.ResponseWriter, r *http.Request) {
	id, ok := transport.PathUUID(w, r, "id")
	if !ok {
		return
	}

	var req reasonRequest
	if !transport.DecodeJSON(w, r, &req) {
		return
	}

	p, err := h.Payouts.Fail(r.Context(), id, req.Reason)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, payout.ToResponse(p))
}
