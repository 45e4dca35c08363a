package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for genstandards.
// Running it without a subcommand generates both reports.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genstandards",
		Short: "Generate a checklist of W3C standards",
		Long: `genstandards reads the W3C technical reports index and writes two reports:

  - a markdown checklist with, per family, the most mature documents
    (statements first, then the first non-empty tier of standards,
    candidate standards, draft standards and notes);
  - the list of working groups delivering those documents.

The index page is cached in a local file. Delete the cache to fetch a
fresh copy on the next run.`,
		Version:       getVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runGenerateCmd,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("json-log", false, "Write logs as JSON")

	addGenerateFlags(cmd)

	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
