package rest

import (
	"net/http"

	"glowdesk-be/internal/analytics"
	"glowdesk-be/internal/transport"
	"glowdesk-be/internal/utils"
)

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.Analytics.Dashboard(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, analytics.ToDashboardResponse(d))
}

func (h *Handler) revenue(w http.ResponseWriter, r *http.Request) {
	period := analytics.Period(transport.QueryString(r, "period"))
	if period == "" {
		period = analytics.PeriodMonthly
	}

	points, err := h.Analytics.Revenue(r.Context(), period)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, analytics.ToRevenueResponse(period, points))
}

func (h *Handler) topVendors(w http.ResponseWriter, r *http.Request) {
	list, err := h.Analytics.TopVendors(r.Context(), transport.QueryInt(r, "limit", 0))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, analytics.ToTopVendorResponses(list))
}
