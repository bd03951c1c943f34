// Package main is the entry point for the shopctl CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shopctl",
	Short: "shopctl - storefront client for the NS Luxurious shop",
	Long: `shopctl is a command line client for the NS Luxurious storefront.

It browses the catalog, manages a local cart, places orders, and drives the
administration surface (product management, global theme control). Session
tokens and the cart live in ~/.shopctl/ and survive between invocations.`,
	Version: Version,
	// Show help when no subcommand is provided
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("shopctl version {{.Version}}\n")
}
