package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"cdf-compare/internal/app"
)

var (
	compareDate    string
	compareFile    string
	compareVar     string
	compareFrom    string
	compareTo      string
	comparePNGPath string
	compareCSVPath string
	compareForce   bool
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Read one variable through both backends and render stacked charts",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDate(compareDate)
		if err != nil {
			return err
		}

		opts := app.CompareOptions{
			Date:     date,
			FilePath: compareFile,
			Variable: compareVar,
			PNGPath:  comparePNGPath,
			CSVPath:  compareCSVPath,
			Force:    compareForce,
		}

		if compareFrom != "" {
			from, err := time.Parse(time.RFC3339, compareFrom)
			if err != nil {
				return fmt.Errorf("invalid --from value: %w", err)
			}
			opts.From = &from
		}

		if compareTo != "" {
			to, err := time.Parse(time.RFC3339, compareTo)
			if err != nil {
				return fmt.Errorf("invalid --to value: %w", err)
			}
			opts.To = &to
		}

		if opts.From != nil && opts.To != nil && !opts.From.Before(*opts.To) {
			return fmt.Errorf("--from must be before --to")
		}

		return getApp().Compare(cmd.Context(), opts)
	},
}

func init() {
	compareCmd.Flags().StringVar(&compareDate, "date", "", "Calendar date inside the wanted half-year file (YYYY-MM-DD)")
	compareCmd.Flags().StringVar(&compareFile, "file", "", "Compare an already-downloaded file instead of fetching")
	compareCmd.Flags().StringVar(&compareVar, "var", "", "Variable to extract (defaults to config)")
	compareCmd.Flags().StringVar(&compareFrom, "from", "", "Window start (RFC3339, inclusive)")
	compareCmd.Flags().StringVar(&compareTo, "to", "", "Window end (RFC3339, exclusive)")
	compareCmd.Flags().StringVar(&comparePNGPath, "png", "compare.png", "Path to write the stacked chart")
	compareCmd.Flags().StringVar(&compareCSVPath, "csv", "", "Path to write windowed values as CSV")
	compareCmd.Flags().BoolVar(&compareForce, "force", false, "Re-download even when the file is already cached")
}
