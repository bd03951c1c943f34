package main

import (
	"fmt"

	"github.com/nslux/shopctl/internal/api"
	"github.com/nslux/shopctl/internal/model"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or edit your profile",
	Long: `Show the logged-in user's profile. With edit flags, update it.

The backend refreshes the credential on profile changes; the new token
replaces the stored one automatically.

Examples:
  shopctl profile
  shopctl profile --phone 0550123456
  shopctl profile --street "12 Rue Didouche" --city Algiers`,
	Args: cobra.NoArgs,
	RunE: runProfile,
}

var (
	profileName   string
	profileEmail  string
	profilePhone  string
	profileStreet string
	profileCity   string
)

func init() {
	profileCmd.Flags().StringVar(&profileName, "name", "", "update full name")
	profileCmd.Flags().StringVar(&profileEmail, "email", "", "update email")
	profileCmd.Flags().StringVar(&profilePhone, "phone", "", "update phone number")
	profileCmd.Flags().StringVar(&profileStreet, "street", "", "update street address")
	profileCmd.Flags().StringVar(&profileCity, "city", "", "update city")

	rootCmd.AddCommand(profileCmd)
}

func runProfile(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	if err := a.requireUser(); err != nil {
		return err
	}

	update := api.ProfileUpdate{
		Name:  profileName,
		Email: profileEmail,
		Phone: profilePhone,
	}
	if profileStreet != "" || profileCity != "" {
		update.Address = &model.Address{Street: profileStreet, City: profileCity}
	}

	profile := a.session.Current().Profile
	if update != (api.ProfileUpdate{}) {
		profile, err = a.session.UpdateProfile(cmd.Context(), update)
		if err != nil {
			return err
		}
		fmt.Println("Profile updated.")
	}

	fmt.Printf("Name:    %s\n", profile.Name)
	fmt.Printf("Email:   %s\n", profile.Email)
	if profile.Phone != "" {
		fmt.Printf("Phone:   %s\n", profile.Phone)
	}
	if profile.Address.Street != "" || profile.Address.City != "" {
		fmt.Printf("Address: %s, %s\n", profile.Address.Street, profile.Address.City)
	}
	return nil
}
