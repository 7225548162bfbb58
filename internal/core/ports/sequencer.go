package ports

import "context"

// Sequencer issues unique, monotonically increasing human-readable
// identifiers, scoped by a named series.
//
// Next atomically increments the stored counter for seriesName, lazily
// creating the series with start on first use, and returns prefix plus the
// new counter value (first call yields prefix + (start+1), e.g. "LTO-1001"
// for start 1000). Implementations must serialize the read-modify-write so
// that concurrent callers can never observe the same counter value, and
// values are never reused even if the order they were minted for is later
// cancelled.
type Sequencer interface {
	Next(ctx context.Context, seriesName string, prefix string, start int64) (string, error)
}
