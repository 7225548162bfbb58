package queries

import (
	"context"
	"database/sql"
	"time"

	"pathlab/internal/core/domain/model/kernel"
	"pathlab/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler reads the order worklist from the database.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for worklist queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders are joined with their catalog test for
// display and returned newest first.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
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
		WHERE 1=1
	`
	args := make([]any, 0)

	if status := query.Status(); status != nil {
		stmt += ` AND o.status = ?`
		args = append(args, int(*status))
	}

	if search := query.Search(); search != "" {
		pattern := "%" + search + "%"
		stmt += ` AND (o.patient_name ILIKE ? OR o.code ILIKE ?)`
		args = append(args, pattern, pattern)
	}

	if query.TodayOnly() {
		today := order.DayOf(time.Now())
		stmt += ` AND o.order_date >= ? AND o.order_date < ?`
		args = append(args, today, today.AddDate(0, 0, 1))
	}

	stmt += ` ORDER BY o.created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		resp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var (
		id     uuid.UUID
		testID uuid.UUID
		status int
		resp   OrderResponse
	)

	err := rows.Scan(
		&id,
		&resp.Code,
		&resp.PatientName,
		&resp.PatientPhone,
		&testID,
		&resp.TestName,
		&resp.OrderDate,
		&status,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.ID = orderID

	orderTestID, err := kernel.UUIDFromBytes(testID[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.TestID = orderTestID

	resp.Status = order.Status(status).String()
	return resp, nil
}
