package app

import (
	"context"
	"fmt"
	"os"
)

// Fetch downloads the data file covering the requested date and prints its
// local path.
func (a *App) Fetch(ctx context.Context, opts FetchOptions) error {
	local, err := a.newFetcher().Fetch(ctx, opts.Date, opts.Force)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}
	fmt.Fprintln(os.Stdout, local)
	return nil
}
