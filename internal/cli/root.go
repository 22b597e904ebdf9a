// Package cli implements the pageprobe command line.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/tsawler/pageobject/internal/logger"
)

// version is set at build time with -ldflags.
var version = "dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "pageprobe",
	Short: "Resolve page object schemas against HTML documents",
	Long: `pageprobe loads a page object schema (YAML, JSON or TOML) and an HTML
document, and shows what every selector in the schema resolves to.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Trace every lookup to stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
