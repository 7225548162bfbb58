package queries

import (
	"errors"
	"strings"

	"pathlab/internal/core/domain/model/order"
	"pathlab/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves lab test orders for the worklist, optionally
// filtered by status, a patient-name/order-code search term, and today's
// orders only. Filters combine with AND.
//
// Example:
//
//	query, err := NewGetOrdersQuery("Ordered", "", true)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	status    *order.Status
	search    string
	todayOnly bool

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a worklist query. A blank status means all
// statuses; anything else must parse as a workflow status. The search term
// is trimmed and may be blank.
func NewGetOrdersQuery(status string, search string, todayOnly bool) (GetOrdersQuery, error) {
	q := GetOrdersQuery{
		search:    strings.TrimSpace(search),
		todayOnly: todayOnly,
		guard:     guard.NewConstructorGuard(),
	}

	if strings.TrimSpace(status) != "" {
		parsed, err := order.StatusFromString(status)
		if err != nil {
			return GetOrdersQuery{}, err
		}
		q.status = &parsed
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status returns the status filter, or nil for all statuses.
func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}

// Search returns the trimmed search term, possibly blank.
func (q GetOrdersQuery) Search() string {
	return q.search
}

// TodayOnly reports whether only today's orders are requested.
func (q GetOrdersQuery) TodayOnly() bool {
	return q.todayOnly
}
