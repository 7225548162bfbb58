package queries

import (
	"context"

	"pathlab/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order from the database, by UUID or by
// series code.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Fails with an ObjectNotFoundError when the
// order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	stmt := `
		SELECT
			o.id,
			o.code,
			o.patient_name,
			o.patient_phone,
			o.test_id,
			t.name,
			o.order_date,
			o.status
		FROM orders o
		JOIN tests t ON t.id = o.test_id
	`

	var (
		arg        any
		identifier string
	)
	if orderID := query.OrderID(); orderID != nil {
		stmt += ` WHERE o.id = ?`
		arg = orderID.Bytes()
		identifier = orderID.String()
	} else {
		stmt += ` WHERE o.code = ?`
		arg = query.Code()
		identifier = query.Code()
	}

	rows, err := h.db.WithContext(ctx).Raw(stmt, arg).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("orderId", identifier)
	}

	return scanOrderRow(rows)
}
