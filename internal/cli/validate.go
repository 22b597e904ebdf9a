package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsawler/pageobject/schema"
)

var validateCmd = &cobra.Command{
	Use:   "validate [schema-file]",
	Short: "Check a schema file and print it normalised",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

var validateFormat string

func init() {
	validateCmd.Flags().StringVarP(&validateFormat, "format", "f", "yaml", "Output format: yaml, json or toml")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	f := schema.ParseFormat(validateFormat)
	if f == schema.Unknown {
		return fmt.Errorf("unknown output format %q", validateFormat)
	}

	s, err := schema.Load(args[0])
	if err != nil {
		return err
	}

	out, err := schema.Encode(s, f)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
