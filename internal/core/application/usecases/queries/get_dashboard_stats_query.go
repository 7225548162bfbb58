package queries

import (
	"errors"

	"pathlab/internal/pkg/guard"
)

var ErrGetDashboardStatsQueryIsNotConstructed = errors.New(
	"GetDashboardStatsQuery must be created via NewGetDashboardStatsQuery constructor",
)

// GetDashboardStatsQuery retrieves the counters shown on the lab dashboard.
type GetDashboardStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardStatsQuery creates a dashboard statistics query.
func NewGetDashboardStatsQuery() GetDashboardStatsQuery {
	return GetDashboardStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardStatsQueryIsNotConstructed)
}

// GetDashboardStatsQueryResponse aggregates the dashboard counters. Order
// counts are split by workflow status; TodayOrders counts orders whose
// order date is the current calendar day regardless of status.
type GetDashboardStatsQueryResponse struct {
	ActiveTests      int64
	DraftOrders      int64
	OrderedOrders    int64
	CompletedOrders  int64
	CancelledOrders  int64
	TodayOrders      int64
	PendingResults   int64
	CompletedResults int64
}
