package fetcher

import (
	"context"
	"time"
)

// DataFetcher retrieves the remote data file covering a calendar date and
// returns the local path it was written to.
type DataFetcher interface {
	Fetch(ctx context.Context, date time.Time, force bool) (string, error)
}
