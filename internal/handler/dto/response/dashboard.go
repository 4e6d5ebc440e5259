package response

import (
	"marketplace-api/internal/usecase/queries"
)

type AdminDashboardResponse struct {
	TotalUsers        int64 `json:"totalUsers"`
	TotalProviders    int64 `json:"totalProviders"`
	TotalServices     int64 `json:"totalServices"`
	TotalBookings     int64 `json:"totalBookings"`
	PendingBookings   int64 `json:"pendingBookings"`
	ConfirmedBookings int64 `json:"confirmedBookings"`
	RevenueCents      int64 `json:"revenueCents"`
}

type ProviderDashboardResponse struct {
	TotalServices     int64 `json:"totalServices"`
	TotalBookings     int64 `json:"totalBookings"`
	UpcomingBookings  int64 `json:"upcomingBookings"`
	CompletedBookings int64 `json:"completedBookings"`
	RevenueCents      int64 `json:"revenueCents"`
}

func FromAdminDashboard(v *queries.AdminDashboardView) *AdminDashboardResponse {
	return &AdminDashboardResponse{
		TotalUsers:        v.TotalUsers,
		TotalProviders:    v.TotalProviders,
		TotalServices:     v.TotalServices,
		TotalBookings:     v.TotalBookings,
		PendingBookings:   v.PendingBookings,
		ConfirmedBookings: v.ConfirmedBookings,
		RevenueCents:      v.RevenueCents,
	}
}

func FromProviderDashboard(v *queries.ProviderDashboardView) *ProviderDashboardResponse {
	return &ProviderDashboardResponse{
		TotalServices:     v.TotalServices,
		TotalBookings:     v.TotalBookings,
		UpcomingBookings:  v.UpcomingBookings,
		CompletedBookings: v.CompletedBookings,
		RevenueCents:      v.RevenueCents,
	}
}
