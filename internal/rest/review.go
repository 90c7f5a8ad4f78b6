package rest

import (
	"net/http"

	"glowdesk-be/internal/review"
	"glowdesk-be/internal/transport"
	"glowdesk-be/internal/utils"

	"github.com/google/uuid"
)

type createReviewRequest struct {
	BookingID string `json:"bookingId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	var req createReviewRequest
	if !transport.DecodeJSON(w, r, &req) {
		return
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		utils.WriteJSONError(w, "invalid bookingId", http.StatusBadRequest)
		return
	}

	rv, err := h.Reviews.Create(r.Context(), review.CreateInput{
		BookingID: bookingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, review.ToResponse(rv))
}

func (h *Handler) listVendorReviews(w http.ResponseWriter, r *http.Request) {
	vendorID, ok := transport.PathUUID(w, r, "id")
	if !ok {
		return
	}

	list, summary, err := h.Reviews.ListByVendor(r.Context(), vendorID,
		transport.QueryInt(r, "limit", 0),
		transport.QueryInt(r, "page", 1),
	)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, review.ToListResponse(list, summary))
}

func (h *Handler) deleteReview(w http.ResponseWriter, r *http.Request) {
	id, ok := transport.PathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.Reviews.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, messageResponse{Message: "Review deleted"})
}
