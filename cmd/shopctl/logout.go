package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and discard the session",
	Long: `Log out of the storefront.

Both stored credentials (user and admin) are removed and the cart is
emptied; logging out discards the session's cart.`,
	Args: cobra.NoArgs,
	RunE: runLogout,
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}

	if err := a.session.Logout(); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}
