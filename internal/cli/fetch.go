package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"cdf-compare/internal/app"
)

var (
	fetchDate  string
	fetchForce bool
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the OMNI2 hourly CDF file covering a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDate(fetchDate)
		if err != nil {
			return err
		}

		opts := app.FetchOptions{
			Date:  date,
			Force: fetchForce,
		}

		return getApp().Fetch(cmd.Context(), opts)
	},
}

func init() {
	fetchCmd.Flags().StringVar(&fetchDate, "date", "", "Calendar date inside the wanted half-year file (YYYY-MM-DD, defaults to today)")
	fetchCmd.Flags().BoolVar(&fetchForce, "force", false, "Re-download even when the file is already cached")
}

func parseDate(v string) (time.Time, error) {
	if v == "" {
		return time.Now().UTC(), nil
	}
	date, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date value: %w", err)
	}
	return date, nil
}
