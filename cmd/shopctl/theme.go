package main

import (
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/nslux/shopctl/internal/api"
	"github.com/nslux/shopctl/internal/cli"
	"github.com/nslux/shopctl/internal/model"
	"github.com/nslux/shopctl/internal/theme"
	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show or control the global theme",
	Long: `Show the storefront's global theme, or change it (admin).

The theme is a single shared configuration: whichever admin posts a new one
last wins, and every client picks it up on its next poll. The theme
mutation endpoints authenticate with explicit email/password headers rather
than the bearer credential; 'theme set' and 'theme preset' prompt for the
admin password for that reason.`,
	Args: cobra.NoArgs,
	RunE: runThemeShow,
}

var themeWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow theme changes until interrupted",
	Long: `Fetch the theme, apply it to the output palette, and keep polling
on the configured interval. Prints a line whenever the theme changes.

Examples:
  shopctl theme watch
  shopctl theme watch --interval 10`,
	Args: cobra.NoArgs,
	RunE: runThemeWatch,
}

var themeSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Replace the global theme (admin)",
	Long: `Replace the global theme. Token flags not given keep the current
value, so a single color can be changed in place.

Examples:
  shopctl theme set --name "Midnight" --primary "#1a237e" --email admin@example.com
  shopctl theme set --accent "#ff4081" --email admin@example.com`,
	Args: cobra.NoArgs,
	RunE: runThemeSet,
}

var themePresetCmd = &cobra.Command{
	Use:   "preset <name>",
	Short: "Apply a named preset theme (admin)",
	Args:  cobra.ExactArgs(1),
	RunE:  runThemePreset,
}

var themePresetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List available preset themes",
	Args:  cobra.NoArgs,
	RunE:  runThemePresets,
}

var (
	themeWatchInterval int
	themeAdminEmail    string

	themePrimary    string
	themeSecondary  string
	themeAccent     string
	themeBackground string
	themeCardBg     string
	themeText       string
	themeBorder     string
	themeName       string
)

func init() {
	themeWatchCmd.Flags().IntVar(&themeWatchInterval, "interval", 0, "poll interval in seconds (defaults to config)")

	themeSetCmd.Flags().StringVar(&themePrimary, "primary", "", "primary color")
	themeSetCmd.Flags().StringVar(&themeSecondary, "secondary", "", "secondary color")
	themeSetCmd.Flags().StringVar(&themeAccent, "accent", "", "accent color")
	themeSetCmd.Flags().StringVar(&themeBackground, "background", "", "background gradient")
	themeSetCmd.Flags().StringVar(&themeCardBg, "card-background", "", "card background")
	themeSetCmd.Flags().StringVar(&themeText, "text", "", "text color")
	themeSetCmd.Flags().StringVar(&themeBorder, "border", "", "border color")
	themeSetCmd.Flags().StringVar(&themeName, "name", "", "theme name")
	themeSetCmd.Flags().StringVar(&themeAdminEmail, "email", "", "admin email for the theme endpoint")
	themeSetCmd.MarkFlagRequired("email")

	themePresetCmd.Flags().StringVar(&themeAdminEmail, "email", "", "admin email for the theme endpoint")
	themePresetCmd.MarkFlagRequired("email")

	themeCmd.AddCommand(themeWatchCmd)
	themeCmd.AddCommand(themeSetCmd)
	themeCmd.AddCommand(themePresetCmd)
	themeCmd.AddCommand(themePresetsCmd)
	rootCmd.AddCommand(themeCmd)
}

func renderTheme(cfg model.ThemeConfig) {
	fmt.Println(cli.Primary(cfg.ThemeName))
	table := cli.NewTable()
	table.AddRow("primary", cli.Swatch(cfg.Primary))
	table.AddRow("secondary", cli.Swatch(cfg.Secondary))
	table.AddRow("accent", cli.Swatch(cfg.Accent))
	table.AddRow("text", cli.Swatch(cfg.TextColor))
	table.AddRow("border", cli.Swatch(cfg.BorderColor))
	table.AddRow("background", cfg.Background)
	table.AddRow("card", cfg.CardBackground)
	table.Render(os.Stdout)
}

func runThemeShow(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}

	// A failed fetch still leaves the default applied and cached.
	if err := a.theme.Refresh(cmd.Context()); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		fmt.Fprintln(os.Stderr, "showing fallback theme")
	}

	renderTheme(a.theme.Current())
	return nil
}

func runThemeWatch(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}

	interval := a.cfg.ThemePollInterval()
	if themeWatchInterval > 0 {
		interval = time.Duration(themeWatchInterval) * time.Second
	}
	sync := theme.NewSynchronizer(a.client, theme.ApplierFunc(cli.ApplyTheme), interval)

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	last := ""
	sync.Start(ctx)
	defer sync.Stop()

	fmt.Printf("Watching theme (every %s). Ctrl-C to stop.\n", interval)
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			fmt.Println()
			return nil
		case <-ticker.C:
			current := sync.Current()
			if current.ThemeName != last {
				last = current.ThemeName
				fmt.Printf("%s theme is now %s\n",
					time.Now().Format("15:04:05"), cli.Primary(current.ThemeName))
			}
		}
	}
}

func runThemeSet(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}

	// Start from the server's current theme so unset flags keep their value.
	a.theme.Refresh(cmd.Context())
	cfg := a.theme.Current()
	applyThemeFlags(&cfg)

	creds, err := promptAdminCreds()
	if err != nil {
		return err
	}

	if err := a.theme.UpdateTheme(cmd.Context(), cfg, creds); err != nil {
		return err
	}

	fmt.Printf("Theme updated to %s\n", cli.Primary(cfg.ThemeName))
	return nil
}

func runThemePreset(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}

	creds, err := promptAdminCreds()
	if err != nil {
		return err
	}

	cfg, err := a.theme.ApplyPreset(cmd.Context(), args[0], creds)
	if err != nil {
		return err
	}

	fmt.Printf("Applied preset %s\n", cli.Primary(cfg.ThemeName))
	return nil
}

func runThemePresets(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}

	presets, err := a.client.ListPresets(cmd.Context())
	if err != nil {
		return err
	}
	if len(presets) == 0 {
		fmt.Println("No presets available.")
		return nil
	}

	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)

	table := cli.NewTable()
	for _, name := range names {
		cfg := presets[name]
		table.AddRow(name, cfg.ThemeName, cli.Swatch(cfg.Primary))
	}
	table.Render(os.Stdout)
	return nil
}

func applyThemeFlags(cfg *model.ThemeConfig) {
	if themePrimary != "" {
		cfg.Primary = themePrimary
	}
	if themeSecondary != "" {
		cfg.Secondary = themeSecondary
	}
	if themeAccent != "" {
		cfg.Accent = themeAccent
	}
	if themeBackground != "" {
		cfg.Background = themeBackground
	}
	if themeCardBg != "" {
		cfg.CardBackground = themeCardBg
	}
	if themeText != "" {
		cfg.TextColor = themeText
	}
	if themeBorder != "" {
		cfg.BorderColor = themeBorder
	}
	if themeName != "" {
		cfg.ThemeName = themeName
	}
}

func promptAdminCreds() (api.AdminCreds, error) {
	password, err := cli.ReadPassword("Admin password: ")
	if err != nil {
		return api.AdminCreds{}, err
	}
	if password == "" {
		return api.AdminCreds{}, &cli.ValidationError{Field: "password", Message: "must not be empty"}
	}
	return api.AdminCreds{Email: themeAdminEmail, Password: password}, nil
}
