package queries

import (
	"context"

	"github.com/google/uuid"
)

type AdminDashboardView struct {
	TotalUsers        int64 `json:"total_users"`
	TotalProviders    int64 `json:"total_providers"`
	TotalServices     int64 `json:"total_services"`
	TotalBookings     int64 `json:"total_bookings"`
	PendingBookings   int64 `json:"pending_bookings"`
	ConfirmedBookings int64 `json:"confirmed_bookings"`
	RevenueCents      int64 `json:"revenue_cents"`
}

type ProviderDashboardView struct {
	TotalServices     int64 `json:"total_services"`
	TotalBookings     int64 `json:"total_bookings"`
	UpcomingBookings  int64 `json:"upcoming_bookings"`
	CompletedBookings int64 `json:"completed_bookings"`
	RevenueCents      int64 `json:"revenue_cents"`
}

type DashboardQueries interface {
	AdminOverview(ctx context.Context, companyID *uuid.UUID) (*AdminDashboardView, error)
	ProviderOverview(ctx context.Context, providerUserID uuid.UUID) (*ProviderDashboardView, error)
}

type DashboardViewRepo interface {
	AdminAggregates(ctx context.Context, companyID *uuid.UUID) (*AdminDashboardView, error)
	ProviderAggregates(ctx context.Context, providerUserID uuid.UUID) (*ProviderDashboardView, error)
}

type dashboardQueriesImpl struct {
	repo DashboardViewRepo
}

func NewDashboardQueries(repo DashboardViewRepo) DashboardQueries {
	return &dashboardQueriesImpl{repo: repo}
}

func (q *dashboardQueriesImpl) AdminOverview(ctx context.Context, companyID *uuid.UUID) (*AdminDashboardView, error) {
	return q.repo.AdminAggregates(ctx, companyID)
}

func (q *dashboardQueriesImpl) ProviderOverview(ctx context.Context, providerUserID uuid.UUID) (*ProviderDashboardView, error) {
	return q.repo.ProviderAggregates(ctx, providerUserID)
}
