package main

import (
	"fmt"
	"strings"

	"github.com/nslux/shopctl/internal/cli"
	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Log in to the storefront",
	Long: `Log in with your account email. The password is prompted without echo.

The returned credential is stored in ~/.shopctl/ and attached as the bearer
on every subsequent request until you log out.`,
	Args: cobra.ExactArgs(1),
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	email := strings.TrimSpace(args[0])
	if email == "" {
		return &cli.ValidationError{Field: "email", Message: "must not be empty"}
	}

	password, err := cli.ReadPassword("Password: ")
	if err != nil {
		return err
	}
	if password == "" {
		return &cli.ValidationError{Field: "password", Message: "must not be empty"}
	}

	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}

	profile, err := a.session.Login(cmd.Context(), email, password)
	if err != nil {
		return err
	}

	fmt.Printf("Logged in as %s <%s>\n", profile.Name, profile.Email)
	return nil
}
