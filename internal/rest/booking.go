package rest

import (
	"net/http"

	"glowdesk-be/internal/booking"
	"glowdesk-be/internal/transport"
	"glowdesk-be/internal/utils"

	"github.com/google/uuid"
)

type createBookingRequest struct {
	OfferingID  string  `json:"offeringId"`
	ScheduledAt string  `json:"scheduledAt"`
	AddressID   *string `json:"addressId"`
	Notes       string  `json:"notes"`
}

type bookingStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) createBooking(w http.ResponseWriter, r *http.Request) {
	var req createBookingRequest
	if !transport.DecodeJSON(w, r, &req) {
		return
	}

	offeringID, err := uuid.Parse(req.OfferingID)
	if err != nil {
		utils.WriteJSONError(w, "invalid offeringId", http.StatusBadRequest)
		return
	}
	scheduledAt, ok := transport.ParseTime(w, req.ScheduledAt, "scheduledAt")
	if !ok {
		return
	}

	input := booking.CreateInput{
		OfferingID:  offeringID,
		ScheduledAt: scheduledAt,
		Notes:       req.Notes,
	}
	if req.AddressID != nil && *req.AddressID != "" {
		addressID, err := uuid.Parse(*req.AddressID)
		if err != nil {
			utils.WriteJSONError(w, "invalid addressId", http.StatusBadRequest)
			return
		}
		input.AddressID = &addressID
	}

	b, err := h.Bookings.Create(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, booking.ToResponse(b))
}

func bookingFilter(r *http.Request) booking.ListFilter {
	return booking.ListFilter{
		Status: booking.Status(transport.QueryString(r, "status")),
		Limit:  transport.QueryInt(r, "limit", 0),
		Page:   transport.QueryInt(r, "page", 1),
	}
}

func (h *Handler) listMyBookings(w http.ResponseWriter, r *http.Request) {
	list, err := h.Bookings.ListMine(r.Context(), bookingFilter(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, booking.ToResponses(list))
}

func (h *Handler) listVendorBookings(w http.ResponseWriter, r *http.Request) {
	list, err := h.Bookings.ListForVendor(r.Context(), bookingFilter(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, booking.ToResponses(list))
}

func (h *Handler) adminListBookings(w http.ResponseWriter, r *http.Request) {
	filter := bookingFilter(r)

	vendorID, ok := transport.QueryUUID(w, r, "vendorId")
	if !ok {
		return
	}
	filter.VendorID = vendorID

	list, err := h.Bookings.ListAll(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, booking.ToResponses(list))
}

func (h *Handler) getBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := transport.PathUUID(w, r, "id")
	if !ok {
		return
	}

	b, err := h.Bookings.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, booking.ToResponse(b))
}

func (h *Handler) cancelBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := transport.PathUUID(w, r, "id")
	if !ok {
		return
	}

	b, err := h.Bookings.Cancel(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, booking.ToResponse(b))
}

func (h *Handler) updateBookingStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := transport.PathUUID(w, r, "id")
	if !ok {
		return
	}

	var req bookingStatusRequest
	if !transport.DecodeJSON(w, r, &req) {
		return
	}

	b, err := h.Bookings.UpdateStatusAsVendor(r.Context(), id, booking.Status(req.Status))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, booking.ToResponse(b))
}
