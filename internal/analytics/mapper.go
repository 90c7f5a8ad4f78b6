package analytics

type DashboardResponse struct {
	TotalUsers            int64            `json:"totalUsers"`
	VendorsByStatus       map[string]int64 `json:"vendorsByStatus"`
	BookingsByStatus      map[string]int64 `json:"bookingsByStatus"`
	GrossRevenueMinor     int64            `json:"grossRevenueMinor"`
	CommissionEarnedMinor int64            `json:"commissionEarnedMinor"`
	PendingPayoutMinor    int64            `json:"pendingPayoutMinor"`
}

type RevenueResponse struct {
	Labels   []string `json:"labels"`
	Gross    []int64  `json:"grossMinor"`
	Bookings []int64  `json:"bookings"`
}

type TopVendorResponse struct {
	VendorID     string `json:"vendorId"`
	BusinessName string `json:"businessName"`
	GrossMinor   int64  `json:"grossMinor"`
	Bookings     int64  `json:"bookings"`
}

func ToDashboardResponse(d *Dashboard) DashboardResponse {
	return DashboardResponse{
		TotalUsers:            d.TotalUsers,
		VendorsByStatus:       d.VendorsByStatus,
		BookingsByStatus:      d.BookingsByStatus,
		GrossRevenueMinor:     d.GrossRevenueMinor,
		CommissionEarnedMinor: d.CommissionEarnedMinor,
		PendingPayoutMinor:    d.PendingPayoutMinor,
	}
}

var labelLayouts = map[Period]string{
	PeriodDaily:   "2006-01-02",
	PeriodWeekly:  "2006-01-02",
	PeriodMonthly: "2006-01",
	PeriodYearly:  "2006",
}

func ToRevenueResponse(period Period, points []RevenuePoint) RevenueResponse {
	layout, ok := labelLayouts[period]
	if !ok {
		layout = labelLayouts[PeriodMonthly]
	}

	res := RevenueResponse{
		Labels:   make([]string, 0, len(points)),
		Gross:    make([]int64, 0, len(points)),
		Bookings: make([]int64, 0, len(points)),
	}
	for _, p := range points {
		res.Labels = append(res.Labels, p.Bucket.Format(layout))
		res.Gross = append(res.Gross, p.GrossMinor)
		res.Bookings = append(res.Bookings, p.Bookings)
	}
	return res
}

func ToTopVendorResponses(list []TopVendor) []TopVendorResponse {
	out := make([]TopVendorResponse, 0, len(list))
	for _, tv := range list {
		out = append(out, TopVendorResponse{
			VendorID:     tv.VendorID.String(),
			BusinessName: tv.BusinessName,
			GrossMinor:   tv.GrossMinor,
			Bookings:     tv.Bookings,
		})
	}
	return out
}
