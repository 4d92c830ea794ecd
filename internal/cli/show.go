package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"cdf-compare/internal/app"
)

var (
	showFile    string
	showVar     string
	showBackend string
	showLimit   int
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Display a variable's metadata and leading samples",
	RunE: func(cmd *cobra.Command, args []string) error {
		if showFile == "" {
			return fmt.Errorf("--file must be provided")
		}
		if showLimit <= 0 {
			return fmt.Errorf("--limit must be greater than zero")
		}

		opts := app.ShowOptions{
			FilePath: showFile,
			Variable: showVar,
			Backend:  showBackend,
			Limit:    showLimit,
		}

		return getApp().Show(cmd.Context(), opts)
	},
}

func init() {
	showCmd.Flags().StringVar(&showFile, "file", "", "Local CDF file to inspect")
	showCmd.Flags().StringVar(&showVar, "var", "", "Variable to inspect (defaults to config)")
	showCmd.Flags().StringVar(&showBackend, "backend", "", "Backend to read with: classic or native (defaults to classic)")
	showCmd.Flags().IntVar(&showLimit, "limit", 20, "Number of samples to display")
}
