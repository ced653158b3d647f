// Package main is the entry point for the battle CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-battle",
	Short: "Deterministic two-player battle engine",
	Long:  `rpg-battle hosts seeded two-player battles and can simulate complete battles between bots.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.IsUnavailable(err) {
			fmt.Fprintln(os.Stderr, "Check that the redis server is reachable.")
		}
		os.Exit(errors.GetCode(err).ExitCode())
	}
}

func init() {
	rootCmd.AddCommand(newSimulateCmd())
	rootCmd.AddCommand(newPruneCmd())
}
