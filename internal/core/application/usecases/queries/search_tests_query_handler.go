package queries

import (
	"context"

	"gorm.io/gorm"
)

// SearchTestsQueryHandler searches the test catalog by name or code.
type SearchTestsQueryHandler struct {
	db *gorm.DB
}

// NewSearchTestsQueryHandler creates a handler for catalog search.
func NewSearchTestsQueryHandler(db *gorm.DB) SearchTestsQueryHandler {
	return SearchTestsQueryHandler{db: db}
}

// Handle executes the query. Matching is a case-insensitive substring
// match on name and code; a blank term returns the whole catalog.
func (h SearchTestsQueryHandler) Handle(ctx context.Context, query SearchTestsQuery) ([]TestResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pattern := "%" + query.Term() + "%"

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
		WHERE name ILIKE ? OR code ILIKE ?
		ORDER BY name
	`, pattern, pattern).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTestRows(rows)
}
