// Package cli wires the cobra commands: load, init, and version.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tabload",
	Short: "Bulk-load tabular files into PostgreSQL",
	Long: `tabload ingests every CSV, XLSX, and XLS file from a directory into
PostgreSQL, creating one new all-text table per file. Table and column
names are derived from file names and header rows, sanitized into safe
lowercase identifiers.

Loads are one-shot and fail-fast: a table that already exists is an
error, and the first file that fails stops the run.

Exit Codes:
  0 - Success
  1 - General error (load failed, bad configuration, connection failed)
  2 - CLI usage error (invalid arguments or flags)
  3 - Panic or unexpected system error`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for tabload")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
