package queries

import (
	"context"

	"pathlab/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetTestByIDQueryHandler reads one catalog test from the database.
type GetTestByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetTestByIDQueryHandler creates a handler for single-test lookups.
func NewGetTestByIDQueryHandler(db *gorm.DB) GetTestByIDQueryHandler {
	return GetTestByIDQueryHandler{db: db}
}

// Handle executes the query. Fails with an ObjectNotFoundError when the
// test does not exist.
func (h GetTestByIDQueryHandler) Handle(ctx context.Context, query GetTestByIDQuery) (TestResponse, error) {
	if err := query.Validate(); err != nil {
		return TestResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			code,
			sample_type,
			normal_range,
			price_cents,
			is_active
		FROM tests
		WHERE id = ?
	`, query.TestID().Bytes()).Rows()
	if err != nil {
		return TestResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return TestResponse{}, err
		}
		return TestResponse{}, errs.NewObjectNotFoundError("testId", query.TestID().String())
	}

	return scanTestRow(rows)
}
