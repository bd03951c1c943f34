package main

import (
	"fmt"
	"strings"

	"github.com/nslux/shopctl/internal/api"
	"github.com/nslux/shopctl/internal/cli"
	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a storefront account",
	Long: `Create an account and log in with it.

The password is prompted twice without echo; both entries must match before
any request is sent.

Examples:
  shopctl register --name "Amel B" --email amel@example.com
  shopctl register --name "Amel B" --email amel@example.com --phone 0550123456`,
	RunE: runRegister,
}

var (
	registerName  string
	registerEmail string
	registerPhone string
)

func init() {
	registerCmd.Flags().StringVar(&registerName, "name", "", "full name")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "account email")
	registerCmd.Flags().StringVar(&registerPhone, "phone", "", "phone number")
	registerCmd.MarkFlagRequired("name")
	registerCmd.MarkFlagRequired("email")

	rootCmd.AddCommand(registerCmd)
}

func runRegister(cmd *cobra.Command, args []string) error {
	name := strings.TrimSpace(registerName)
	email := strings.TrimSpace(registerEmail)
	if name == "" {
		return &cli.ValidationError{Field: "name", Message: "must not be empty"}
	}
	if email == "" {
		return &cli.ValidationError{Field: "email", Message: "must not be empty"}
	}

	password, err := cli.ReadPassword("Password: ")
	if err != nil {
		return err
	}
	confirm, err := cli.ReadPassword("Confirm password: ")
	if err != nil {
		return err
	}
	if err := validateNewPassword(password, confirm); err != nil {
		return err
	}

	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}

	profile, err := a.session.Register(cmd.Context(), api.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
		Phone:    strings.TrimSpace(registerPhone),
	})
	if err != nil {
		return err
	}

	fmt.Printf("Account created. Logged in as %s <%s>\n", profile.Name, profile.Email)
	return nil
}

// validateNewPassword applies the client-side password rules checked before
// any network call.
func validateNewPassword(password, confirm string) error {
	if password == "" {
		return &cli.ValidationError{Field: "password", Message: "must not be empty"}
	}
	if len(password) < 6 {
		return &cli.ValidationError{Field: "password", Message: "must be at least 6 characters"}
	}
	if password != confirm {
		return &cli.ValidationError{Field: "password", Message: "passwords do not match"}
	}
	return nil
}
