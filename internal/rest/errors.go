package rest

import (
	"errors"
	"net/http"

	"glowdesk-be/internal/address"
	"glowdesk-be/internal/analytics"
	"glowdesk-be/internal/booking"
	"glowdesk-be/internal/category"
	"glowdesk-be/internal/logger"
	"glowdesk-be/internal/notification"
	"glowdesk-be/internal/payout"
	"glowdesk-be/internal/review"
	"glowdesk-be/internal/user"
	"glowdesk-be/internal/utils"
	"glowdesk-be/internal/validation"
	"glowdesk-be/internal/vendor"

	"go.uber.org/zap"
)

const msgInternal = "internal server error"

type errorResponse struct {
	Message string            `json:"message"`
	Fields  validation.Errors `json:"fields,omitempty"`
}

type errorMapping struct {
	err     error
	status  int
	message string // empty means err.Error()
}

var errorTable = []errorMapping{
	{address.ErrAddressNotFound, http.StatusNotFound, "Address not found"},
	{address.ErrNotAuthorized, http.StatusUnauthorized, "Not authorized"},
	{notification.ErrNotAuthorized, http.StatusUnauthorized, "Not authorized"},

	{address.ErrUnauthenticated, http.StatusUnauthorized, "Not authorized"},
	{user.ErrUnauthenticated, http.StatusUnauthorized, "Not authorized"},
	{vendor.ErrUnauthenticated, http.StatusUnauthorized, "Not authorized"},
	{booking.ErrUnauthenticated, http.StatusUnauthorized, "Not authorized"},
	{payout.ErrUnauthenticated, http.StatusUnauthorized, "Not authorized"},
	{review.ErrUnauthenticated, http.StatusUnauthorized, "Not authorized"},
	{notification.ErrUnauthenticated, http.StatusUnauthorized, "Not authorized"},
	{user.ErrInvalidCredentials, http.StatusUnauthorized, ""},

	{vendor.ErrNotAuthorized, http.StatusForbidden, "forbidden"},
	{booking.ErrNotAuthorized, http.StatusForbidden, "forbidden"},
	{review.ErrNotAuthorized, http.StatusForbidden, "forbidden"},
	{vendor.ErrVendorNotApproved, http.StatusForbidden, ""},

	{user.ErrUserNotFound, http.StatusNotFound, ""},
	{category.ErrCategoryNotFound, http.StatusNotFound, ""},
	{vendor.ErrVendorNotFound, http.StatusNotFound, ""},
	{vendor.ErrOfferingNotFound, http.StatusNotFound, ""},
	{booking.ErrBookingNotFound, http.StatusNotFound, ""},
	{payout.ErrPayoutNotFound, http.StatusNotFound, ""},
	{review.ErrReviewNotFound, http.StatusNotFound, ""},
	{notification.ErrNotificationNotFound, http.StatusNotFound, ""},

	{user.ErrEmailExists, http.StatusConflict, ""},
	{category.ErrCategoryExists, http.StatusConflict, ""},
	{category.ErrCategoryInUse, http.StatusConflict, ""},
	{vendor.ErrVendorExists, http.StatusConflict, ""},
	{vendor.ErrInvalidTransition, http.StatusConflict, ""},
	{booking.ErrInvalidTransition, http.StatusConflict, ""},
	{payout.ErrInvalidTransition, http.StatusConflict, ""},
	{review.ErrReviewExists, http.StatusConflict, ""},

	{payout.ErrNothingToSettle, http.StatusUnprocessableEntity, ""},
	{booking.ErrOfferingUnavailable, http.StatusUnprocessableEntity, ""},
	{review.ErrBookingNotCompleted, http.StatusUnprocessableEntity, ""},

	{user.ErrInvalidRole, http.StatusBadRequest, ""},
	{analytics.ErrInvalidPeriod, http.StatusBadRequest, ""},
}

// statusFor maps a service error to its HTTP status and public message.
// Unknown errors are reported as 500 without their cause.
func statusFor(err error) (int, string) {
	for _, m := range errorTable {
		if errors.Is(err, m.err) {
			if m.message == "" {
				return m.status, m.err.Error()
			}
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, msgInternal
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr validation.Errors
	if errors.As(err, &verr) {
		utils.WriteJSON(w, http.StatusBadRequest, errorResponse{
			Message: "validation failed",
			Fields:  verr,
		})
		return
	}

	status, msg := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.FromCtx(r.Context()).Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
	utils.WriteJSONError(w, msg, status)
}
