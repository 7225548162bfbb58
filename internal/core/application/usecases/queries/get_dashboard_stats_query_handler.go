package queries

import (
	"context"
	"time"

	"pathlab/internal/core/domain/model/order"
	"pathlab/internal/core/domain/model/result"

	"gorm.io/gorm"
)

// GetDashboardStatsQueryHandler computes the lab dashboard counters in a
// single round trip.
type GetDashboardStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetDashboardStatsQueryHandler creates a handler for dashboard
// statistics.
func NewGetDashboardStatsQueryHandler(db *gorm.DB) GetDashboardStatsQueryHandler {
	return GetDashboardStatsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetDashboardStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardStatsQuery,
) (GetDashboardStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	today := order.DayOf(time.Now())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM tests WHERE is_active),
			(SELECT COUNT(*) FROM orders WHERE status = ?),
			(SELECT COUNT(*) FROM orders WHERE status = ?),
			(SELECT COUNT(*) FROM orders WHERE status = ?),
			(SELECT COUNT(*) FROM orders WHERE status = ?),
			(SELECT COUNT(*) FROM orders WHERE order_date >= ? AND order_date < ?),
			(SELECT COUNT(*) FROM results WHERE status = ?),
			(SELECT COUNT(*) FROM results WHERE status = ?)
	`,
		order.Draft, order.Ordered, order.Completed, order.Cancelled,
		today, today.AddDate(0, 0, 1),
		result.Draft, result.Completed,
	).Rows()
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}
	defer rows.Close()

	var resp GetDashboardStatsQueryResponse
	if rows.Next() {
		err = rows.Scan(
			&resp.ActiveTests,
			&resp.DraftOrders,
			&resp.OrderedOrders,
			&resp.CompletedOrders,
			&resp.CancelledOrders,
			&resp.TodayOrders,
			&resp.PendingResults,
			&resp.CompletedResults,
		)
		if err != nil {
			return GetDashboardStatsQueryResponse{}, err
		}
	}

	if err = rows.Err(); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	return resp, nil
}
