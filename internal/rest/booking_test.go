package rest

import (
	"net/http"
	"testing"
	"time"

	"glowdesk-be/internal/address"
	"glowdesk-be/internal/booking"
	"glowdesk-be/internal/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestBookingHandlers(t *testing.T) {
	offeringID := uuid.New()
	addressID := uuid.New()
	bookingID := uuid.New()
	scheduled := time.Date(2030, 1, 2, 10, 0, 0, 0, time.UTC)

	sample := &booking.Booking{
		ID: bookingID, Reference: "BK-1", CustomerID: 7, OfferingID: offeringID,
		ScheduledAt: scheduled, Status: booking.StatusPending, AmountMinor: 59900,
	}

	t.Run("Create with address", func(t *testing.T) {
		svc := new(mockBookingService)
		router := newTestRouter(&Handler{Bookings: svc}, 7, utils.RoleUser)

		svc.On("Create", mock.Anything, mock.MatchedBy(func(in booking.CreateInput) bool {
			return in.OfferingID == offeringID && in.AddressID != nil && *in.AddressID == addressID &&
				in.ScheduledAt.Equal(scheduled)
		})).Return(sample, nil)

		w := doRequest(router, http.MethodPost, "/api/bookings",
			`{"offeringId":"`+offeringID.String()+`","scheduledAt":"2030-01-02T10:00:00Z","addressId":"`+addressID.String()+`"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		var res booking.Response
		decodeBody(t, w, &res)
		assert.Equal(t, "BK-1", res.Reference)
		assert.Equal(t, int64(59900), res.AmountMinor)
	})

	t.Run("Foreign address surfaces as 401", func(t *testing.T) {
		svc := new(mockBookingService)
		router := newTestRouter(&Handler{Bookings: svc}, 7, utils.RoleUser)
		svc.On("Create", mock.Anything, mock.Anything).Return(nil, address.ErrNotAuthorized)

		w := doRequest(router, http.MethodPost, "/api/bookings",
			`{"offeringId":"`+offeringID.String()+`","scheduledAt":"2030-01-02T10:00:00Z","addressId":"`+addressID.String()+`"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"message":"Not authorized"}`, w.Body.String())
	})

	t.Run("Bad timestamp", func(t *testing.T) {
		svc := new(mockBookingService)
		router := newTestRouter(&Handler{Bookings: svc}, 7, utils.RoleUser)

		w := doRequest(router, http.MethodPost, "/api/bookings",
			`{"offeringId":"`+offeringID.String()+`","scheduledAt":"next week"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Offering unavailable", func(t *testing.T) {
		svc := new(mockBookingService)
		router := newTestRouter(&Handler{Bookings: svc}, 7, utils.RoleUser)
		svc.On("Create", mock.Anything, mock.Anything).Return(nil, booking.ErrOfferingUnavailable)

		w := doRequest(router, http.MethodPost, "/api/bookings",
			`{"offeringId":"`+offeringID.String()+`","scheduledAt":"2030-01-02T10:00:00Z"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("List mine passes status filter", func(t *testing.T) {
		svc := new(mockBookingService)
		router := newTestRouter(&Handler{Bookings: svc}, 7, utils.RoleUser)
		svc.On("ListMine", mock.Anything, booking.ListFilter{
			Status: booking.StatusPending, Limit: 5, Page: 2,
		}).Return([]*booking.Booking{sample}, nil)

		w := doRequest(router, http.MethodGet, "/api/bookings?status=pending&limit=5&page=2", "")

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("Cancel conflict", func(t *testing.T) {
		svc := new(mockBookingService)
		router := newTestRouter(&Handler{Bookings: svc}, 7, utils.RoleUser)
		svc.On("Cancel", mock.Anything, bookingID).Return(nil, booking.ErrInvalidTransition)

		w := doRequest(router, http.MethodPatch, "/api/bookings/"+bookingID.String()+"/cancel", "")

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Vendor confirms", func(t *testing.T) {
		svc := new(mockBookingService)
		router := newTestRouter(&Handler{Bookings: svc}, 3, utils.RoleVendor)

		confirmed := *sample
		confirmed.Status = booking.StatusConfirmed
		svc.On("UpdateStatusAsVendor", mock.Anything, bookingID, booking.StatusConfirmed).Return(&confirmed, nil)

		w := doRequest(router, http.MethodPatch, "/api/vendor/bookings/"+bookingID.String()+"/status", `{"status":"confirmed"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		var res booking.Response
		decodeBody(t, w, &res)
		assert.Equal(t, "confirmed", res.Status)
	})

	t.Run("Viewing someone else's booking", func(t *testing.T) {
		svc := new(mockBookingService)
		router := newTestRouter(&Handler{Bookings: svc}, 8, utils.RoleUser)
		svc.On("Get", mock.Anything, bookingID).Return(nil, booking.ErrNotAuthorized)

		w := doRequest(router, http.MethodGet, "/api/bookings/"+bookingID.String(), "")

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
