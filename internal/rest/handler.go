// Package rest exposes the domain services over JSON HTTP.
package rest

import (
	"net/http"

	"glowdesk-be/internal/address"
	"glowdesk-be/internal/analytics"
	"glowdesk-be/internal/booking"
	"glowdesk-be/internal/category"
	"glowdesk-be/internal/middleware"
	"glowdesk-be/internal/notification"
	"glowdesk-be/internal/payout"
	"glowdesk-be/internal/review"
	"glowdesk-be/internal/user"
	"glowdesk-be/internal/utils"
	"glowdesk-be/internal/vendor"

	"github.com/gorilla/mux"
)

type Handler struct {
	Users         user.Service
	Addresses     address.Service
	Categories    category.Service
	Vendors       vendor.Service
	Bookings      booking.Service
	Payouts       payout.Service
	Reviews       review.Service
	Notifications notification.Service
	Analytics     analytics.Service

	// SecureCookies marks the access_token cookie Secure.
	SecureCookies bool
}

type messageResponse struct {
	Message string `json:"message"`
}

// Register mounts every /api route on r.
func (h *Handler) Register(r *mux.Router) {
	api := r.PathPrefix("/api").Subrouter()

	authed := func(fn http.HandlerFunc) http.Handler {
		return middleware.RequireAuth(fn)
	}

	// auth
	api.HandleFunc("/auth/register", h.register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", h.login).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", h.logout).Methods(http.MethodPost)
	api.Handle("/auth/me", authed(h.me)).Methods(http.MethodGet)

	// addresses
	addr := api.PathPrefix("/user/addresses").Subrouter()
	addr.Use(middleware.RequireAuth)
	addr.HandleFunc("", h.createAddress).Methods(http.MethodPost)
	addr.HandleFunc("", h.listAddresses).Methods(http.MethodGet)
	addr.HandleFunc("/{id}", h.updateAddress).Methods(http.MethodPut)
	addr.HandleFunc("/{id}", h.deleteAddress).Methods(http.MethodDelete)
	addr.HandleFunc("/{id}/default", h.setDefaultAddress).Methods(http.MethodPatch)

	// public catalogue
	api.HandleFunc("/categories", h.listCategories).Methods(http.MethodGet)
	api.HandleFunc("/vendors", h.listVendors).Methods(http.MethodGet)
	api.Handle("/vendors", authed(h.applyVendor)).Methods(http.MethodPost)
	api.HandleFunc("/vendors/{id}", h.getVendor).Methods(http.MethodGet)
	api.HandleFunc("/vendors/{id}/offerings", h.listVendorOfferings).Methods(http.MethodGet)
	api.HandleFunc("/vendors/{id}/reviews", h.listVendorReviews).Methods(http.MethodGet)

	// customer
	api.Handle("/bookings", authed(h.createBooking)).Methods(http.MethodPost)
	api.Handle("/bookings", authed(h.listMyBookings)).Methods(http.MethodGet)
	api.Handle("/bookings/{id}", authed(h.getBooking)).Methods(http.MethodGet)
	api.Handle("/bookings/{id}/cancel", authed(h.cancelBooking)).Methods(http.MethodPatch)
	api.Handle("/reviews", authed(h.createReview)).Methods(http.MethodPost)

	api.Handle("/notifications", authed(h.listNotifications)).Methods(http.MethodGet)
	api.Handle("/notifications/read-all", authed(h.markAllNotificationsRead)).Methods(http.MethodPatch)
	api.Handle("/notifications/{id}/read", authed(h.markNotificationRead)).Methods(http.MethodPatch)

	// vendor back-office; the vendor is resolved from the caller, not the role claim
	vend := api.PathPrefix("/vendor").Subrouter()
	vend.Use(middleware.RequireAuth)
	vend.HandleFunc("/me", h.myVendor).Methods(http.MethodGet)
	vend.HandleFunc("/offerings", h.addOffering).Methods(http.MethodPost)
	vend.HandleFunc("/offerings", h.myOfferings).Methods(http.MethodGet)
	vend.HandleFunc("/offerings/{id}", h.setOfferingActive).Methods(http.MethodPatch)
	vend.HandleFunc("/bookings", h.listVendorBookings).Methods(http.MethodGet)
	vend.HandleFunc("/bookings/{id}/status", h.updateBookingStatus).Methods(http.MethodPatch)
	vend.HandleFunc("/payouts", h.myPayouts).Methods(http.MethodGet)

	// admin
	adm := api.PathPrefix("/admin").Subrouter()
	adm.Use(middleware.RequireRole(utils.RoleAdmin))
	adm.HandleFunc("/categories", h.createCategory).Methods(http.MethodPost)
	adm.HandleFunc("/categories/{id}", h.updateCategory).Methods(http.MethodPut)
	adm.HandleFunc("/categories/{id}", h.deleteCategory).Methods(http.MethodDelete)
	adm.HandleFunc("/vendors", h.adminListVendors).Methods(http.MethodGet)
	adm.HandleFunc("/vendors/{id}/approve", h.approveVendor).Methods(http.MethodPatch)
	adm.HandleFunc("/vendors/{id}/reject", h.rejectVendor).Methods(http.MethodPatch)
	adm.HandleFunc("/vendors/{id}/suspend", h.suspendVendor).Methods(http.MethodPatch)
	adm.HandleFunc("/vendors/{id}/commission", h.setVendorCommission).Methods(http.MethodPatch)
	adm.HandleFunc("/bookings", h.adminListBookings).Methods(http.MethodGet)
	adm.HandleFunc("/payouts", h.createPayout).Methods(http.MethodPost)
	adm.HandleFunc("/payouts", h.listPayouts).Methods(http.MethodGet)
	adm.HandleFunc("/payouts/{id}/process", h.processPayout).Methods(http.MethodPatch)
	adm.HandleFunc("/payouts/{id}/fail", h.failPayout).Methods(http.MethodPatch)
	adm.HandleFunc("/reviews/{id}", h.deleteReview).Methods(http.MethodDelete)
	adm.HandleFunc("/analytics/dashboard", h.dashboard).Methods(http.MethodGet)
	adm.HandleFunc("/analytics/revenue", h.revenue).Methods(http.MethodGet)
	adm.HandleFunc("/analytics/top-vendors", h.topVendors).Methods(http.MethodGet)
}
