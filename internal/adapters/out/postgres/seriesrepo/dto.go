// Package seriesrepo implements the naming-series sequencer on Postgres.
// A series is one row holding the last issued counter value; issuing the
// next value is a single atomic upsert.
package seriesrepo

// NamingSeriesDTO represents the database structure for a naming series.
type NamingSeriesDTO struct {
	SeriesName    string `gorm:"primaryKey"`
	CurrentNumber int64  `gorm:"not null"`
}

// TableName specifies the database table name for naming series.
func (NamingSeriesDTO) TableName() string {
	return "naming_series"
}
