package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "artstock",
	Short: "Artstock — artwork inventory CLI",
	Long:  "Artstock manages a local artwork product inventory backed by a single database table.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// A bare invocation still opens the store and ensures the schema.
		if _, err := bootDB(); err != nil {
			return err
		}
		return cmd.Help()
	},
}

// dbPath overrides the configured store location for one invocation.
var dbPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "",
		"store file or DSN (default artwork_inventory.db, or DATABASE_DSN from config)")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetHelpCommand(helpCmd)

	// Store
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(seedCmd)

	// Inventory
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(updateQtyCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
}
