package queries

import (
	"context"

	"pathlab/internal/core/domain/model/kernel"
	"pathlab/internal/core/domain/model/result"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetResultsQueryHandler reads recorded results from the database.
type GetResultsQueryHandler struct {
	db *gorm.DB
}

// NewGetResultsQueryHandler creates a handler for result listings.
func NewGetResultsQueryHandler(db *gorm.DB) GetResultsQueryHandler {
	return GetResultsQueryHandler{db: db}
}

// Handle executes the query. Results are returned newest first.
func (h GetResultsQueryHandler) Handle(ctx context.Context, query GetResultsQuery) ([]ResultResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := `
		SELECT
			id,
			order_id,
			value,
			notes,
			status
		FROM results
		WHERE 1=1
	`
	args := make([]any, 0)

	if orderID := query.OrderID(); orderID != nil {
		stmt += ` AND order_id = ?`
		args = append(args, orderID.Bytes())
	}

	if query.CompletedOnly() {
		stmt += ` AND status = ?`
		args = append(args, result.Completed)
	}

	stmt += ` ORDER BY created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]ResultResponse, 0)
	for rows.Next() {
		var (
			id      uuid.UUID
			orderID uuid.UUID
			status  int
			resp    ResultResponse
		)

		err = rows.Scan(&id, &orderID, &resp.Value, &resp.Notes, &status)
		if err != nil {
			return nil, err
		}

		resultID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = resultID

		resultOrderID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.OrderID = resultOrderID

		resp.Status = result.Status(status).String()
		results = append(results, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
