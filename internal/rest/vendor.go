package rest

import (
	"net/http"

	"glowdesk-be/internal/transport"
	"glowdesk-be/internal/utils"
	"glowdesk-be/internal/vendor"

	"github.com/google/uuid"
)

type applyVendorRequest struct {
	BusinessName string `json:"businessName"`
	Description  string `json:"description"`
	Phone        string `json:"phone"`
	City         string `json:"city"`
}

type reasonRequest struct {
	Reason string `json:"reason"`
}

type commissionRequest struct {
	CommissionBps *int `json:"commissionBps"`
}

type offeringRequest struct {
	CategoryID      string `json:"categoryId"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	PriceMinor      int64  `json:"priceMinor"`
	DurationMinutes int    `json:"durationMinutes"`
}

type offeringActiveRequest struct {
	IsActive *bool `json:"isActive"`
}

func (h *Handler) applyVendor(w http.ResponseWriter, r *http.Request) {
	var req applyVendorRequest
	if !transport.DecodeJSON(w, r, &req) {
		return
	}

	v, err := h.Vendors.Apply(r.Context(), vendor.ApplyInput{
		BusinessName: req.BusinessName,
		Description:  req.Description,
		Phone:        req.Phone,
		City:         req.City,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, vendor.ToResponse(v))
}

func (h *Handler) vendorFilter(w http.ResponseWriter, r *http.Request) (vendor.ListFilter, bool) {
	categoryID, ok := transport.QueryUUID(w, r, "categoryId")
	if !ok {
		return vendor.ListFilter{}, false
	}
	return vendor.ListFilter{
		Status:     vendor.Status(transport.QueryString(r, "status")),
		City:       transport.QueryString(r, "city"),
		CategoryID: categoryID,
		Limit:      transport.QueryInt(r, "limit", 0),
		Page:       transport.QueryInt(r, "page", 1),
	}, true
}

func (h *Handler) listVendors(w http.ResponseWriter, r *http.Request) {
	filter, ok := h.vendorFilter(w, r)
	if !ok {
		return
	}

	list, err := h.Vendors.ListPublic(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, vendor.ToResponses(list))
}

func (h *Handler) adminListVendors(w http.ResponseWriter, r *http.Request) {
	filter, ok := h.vendorFilter(w, r)
	if !ok {
		return
	}

	list, err := h.Vendors.ListForAdmin(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, vendor.ToResponses(list))
}

func (h *Handler) getVendor(w http.ResponseWriter, r *http.Request) {
	id, ok := transport.PathUUID(w, r, "id")
	if !ok {
		return
	}

	v, err := h.Vendors.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, vendor.ToResponse(v))
}

func (h *Handler) myVendor(w http.ResponseWriter, r *http.Request) {
	v, err := h.Vendors.Mine(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, vendor.ToResponse(v))
}

func (h *Handler) listVendorOfferings(w http.ResponseWriter, r *http.Request) {
	id, ok := transport.PathUUID(w, r, "id")
	if !ok {
		return
	}

	list, err := h.Vendors.ListOfferings(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, vendor.ToOfferingResponses(list))
}

func (h *Handler) myOfferings(w http.ResponseWriter, r *http.Request) {
	list, err := h.Vendors.MyOfferings(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, vendor.ToOfferingResponses(list))
}

func (h *Handler) addOffering(w http.ResponseWriter, r *http.Request) {
	var req offeringRequest
	if !transport.DecodeJSON(w, r, &req) {
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		utils.WriteJSONError(w, "invalid categoryId", http.StatusBadRequest)
		return
	}

	o, err := h.Vendors.AddOffering(r.Context(), vendor.OfferingInput{
		CategoryID:      categoryID,
		Name:            req.Name,
		Description:     req.Description,
		PriceMinor:      req.PriceMinor,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, vendor.ToOfferingResponse(o))
}

func (h *Handler) setOfferingActive(w http.ResponseWriter, r *http.Request) {
	id, ok := transport.PathUUID(w, r, "id")
	if !ok {
		return
	}

	var req offeringActiveRequest
	if !transport.DecodeJSON(w, r, &req) {
		return
	}
	if req.IsActive == nil {
		utils.WriteJSONError(w, "isActive is required", http.StatusBadRequest)
		return
	}

	o, err := h.Vendors.SetOfferingActive(r.Context(), id, *req.IsActive)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, vendor.ToOfferingResponse(o))
}

func (h *Handler) approveVendor(w http.ResponseWriter, r *http.Request) {
	id, ok := transport.PathUUID(w, r, "id")
	if !ok {
		return
	}

	v, err := h.Vendors.Approve(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, vendor.ToResponse(v))
}

func (h *Handler) rejectVendor(w http.ResponseWriter, r *http.Request) {
	id, ok := transport.PathUUID(w, r, "id")
	if !ok {
		return
	}

	var req reasonRequest
	if !transport.DecodeJSON(w, r, &req) {
		return
	}

	v, err := h.Vendors.Reject(r.Context(), id, req.Reason)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, vendor.ToResponse(v))
}

// suspendVendor accepts an empty body; the reason is optional.
func (h *Handler) suspendVendor(w http.ResponseWriter, r *http.Request) {
	id, ok := transport.PathUUID(w, r, "id")
	if !ok {
		return
	}

	var req reasonRequest
	if r.ContentLength != 0 && !transport.DecodeJSON(w, r, &req) {
		return
	}

	v, err := h.Vendors.Suspend(r.Context(), id, req.Reason)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, vendor.ToResponse(v))
}

func (h *Handler) setVendorCommission(w http.ResponseWriter, r *http.Request) {
	id, ok := transport.PathUUID(w, r, "id")
	if !ok {
		return
	}

	var req commissionRequest
	if !transport.DecodeJSON(w, r, &req) {
		return
	}
	if req.CommissionBps == nil {
		utils.WriteJSONError(w, "commissionBps is required", http.StatusBadRequest)
		return
	}

	v, err := h.Vendors.SetCommission(r.Context(), id, *req.CommissionBps)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, vendor.ToResponse(v))
}
