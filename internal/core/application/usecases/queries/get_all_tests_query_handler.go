package queries

import (
	"context"
	"database/sql"

	"pathlab/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllTestsQueryHandler reads the test catalog from the database.
type GetAllTestsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllTestsQueryHandler creates a handler for catalog listing.
// Requires a GORM database connection for query execution.
func NewGetAllTestsQueryHandler(db *gorm.DB) GetAllTestsQueryHandler {
	return GetAllTestsQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by test name for stable
// catalog listings.
func (h GetAllTestsQueryHandler) Handle(ctx context.Context, query GetAllTestsQuery) ([]TestResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := `
		SELECT
			id,
			name,
			code,
			sample_type,
			normal_range,
			price_cents,
			is_active
		FROM tests
	`
	if query.ActiveOnly() {
		stmt += ` WHERE is_active`
	}
	stmt += ` ORDER BY name`

	rows, err := h.db.WithContext(ctx).Raw(stmt).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTestRows(rows)
}

// collectTestRows scans catalog rows sharing the column order used by all
// test queries in this package.
func collectTestRows(rows *sql.Rows) ([]TestResponse, error) {
	tests := make([]TestResponse, 0)

	for rows.Next() {
		test, err := scanTestRow(rows)
		if err != nil {
			return nil, err
		}
		tests = append(tests, test)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tests, nil
}

func scanTestRow(rows *sql.Rows) (TestResponse, error) {
	var (
		id         uuid.UUID
		resp       TestResponse
		priceCents int64
	)

	err := rows.Scan(
		&id,
		&resp.Name,
		&resp.Code,
		&resp.SampleType,
		&resp.NormalRange,
		&priceCents,
		&resp.IsActive,
	)
	if err != nil {
		return TestResponse{}, err
	}

	testID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return TestResponse{}, err
	}
	resp.ID = testID

	price, err := kernel.NewPriceFromCents(priceCents)
	if err != nil {
		return TestResponse{}, err
	}
	resp.Price = price

	return resp, nil
}
