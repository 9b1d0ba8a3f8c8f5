package cmd

import (
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "fragment",
		Short:        "fragment",
		SilenceUsage: true,
		Long:         `CLI for classifying the syntactic context around a cursor in a code fragment, as used by completion engines and editor tooling.`,
	}

	format string
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "", "output format: text, json or repr; overrides the config file")
	return rootCmd.Execute()
}
