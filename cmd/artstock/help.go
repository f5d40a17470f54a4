package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Cobra's built-in help command never touches the store, which would break
// the contract that every invocation opens it and ensures the schema. This
// replacement boots first, then behaves the same: `artstock help` for full
// usage, `artstock help add` for one command.
var helpCmd = &cobra.Command{
	Use:   "help [command]",
	Short: "Show help for a command",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := bootDB(); err != nil {
			return err
		}
		if len(args) == 0 {
			return rootCmd.Help()
		}
		target, _, err := rootCmd.Find(args)
		if err != nil || target == rootCmd {
			fmt.Fprintf(cmd.OutOrStdout(), "Unknown command: %s\n", args[0])
			return nil
		}
		return target.Help()
	},
}
