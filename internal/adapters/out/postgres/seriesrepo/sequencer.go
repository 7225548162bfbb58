package seriesrepo

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// GormSequencer implements Sequencer using GORM.
type GormSequencer struct {
	db *gorm.DB
}

// NewGormSequencer creates a new GORM naming-series sequencer.
func NewGormSequencer(db *gorm.DB) *GormSequencer {
	return &GormSequencer{db: db}
}

// Next issues the next value of the series. The increment and the read are
// one statement, so Postgres serializes concurrent callers on the series
// row and no two of them can observe the same counter value. A missing
// series is created on first use with start+1, making the first issued
// code prefix+(start+1).
func (s *GormSequencer) Next(ctx context.Context, seriesName string, prefix string, start int64) (string, error) {
	var current int64
	err := s.db.WithContext(ctx).Raw(`
		INSERT INTO naming_series (series_name, current_number)
		VALUES (?, ?)
		ON CONFLICT (series_name)
		DO UPDATE SET current_number = naming_series.current_number + 1
		RETURNING current_number
	`, seriesName, start+1).Scan(&current).Error
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s%d", prefix, current), nil
}
