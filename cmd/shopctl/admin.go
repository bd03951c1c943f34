package main

import (
	"fmt"
	"strings"

	"github.com/nslux/shopctl/internal/cli"
	"github.com/nslux/shopctl/internal/model"
	"github.com/spf13/cobra"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administration commands",
	Long: `Administration surface: dashboard stats, order management, product
management, and theme control. Requires an admin login.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var adminLoginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Log in as administrator",
	Long: `Log in to the administration panel. The admin credential is stored
under its own key, separate from a user credential, and becomes the active
bearer for subsequent requests.`,
	Args: cobra.ExactArgs(1),
	RunE: runAdminLogin,
}

var adminStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dashboard statistics",
	Args:  cobra.NoArgs,
	RunE:  runAdminStats,
}

var adminOrdersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List all orders",
	Args:  cobra.NoArgs,
	RunE:  runAdminOrders,
}

var adminOrderStatusCmd = &cobra.Command{
	Use:   "order-status <order-id> <status>",
	Short: "Update an order's status",
	Long: `Update an order's status. Valid statuses: pending, confirmed,
processing, shipped, delivered, cancelled.`,
	Args: cobra.ExactArgs(2),
	RunE: runAdminOrderStatus,
}

func init() {
	adminCmd.AddCommand(adminLoginCmd)
	adminCmd.AddCommand(adminStatsCmd)
	adminCmd.AddCommand(adminOrdersCmd)
	adminCmd.AddCommand(adminOrderStatusCmd)
	rootCmd.AddCommand(adminCmd)
}

func runAdminLogin(cmd *cobra.Command, args []string) error {
	email := strings.TrimSpace(args[0])
	if email == "" {
		return &cli.ValidationError{Field: "email", Message: "must not be empty"}
	}

	password, err := cli.ReadPassword("Admin password: ")
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

	admin, err := a.session.AdminLogin(cmd.Context(), email, password)
	if err != nil {
		return err
	}

	fmt.Printf("Logged in as admin <%s>\n", admin.Email)
	return nil
}

func runAdminStats(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	if err := a.requireAdmin(); err != nil {
		return err
	}

	stats, err := a.client.GetAdminStats(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("Orders:   %d (%d pending)\n", stats.TotalOrders, stats.PendingOrders)
	fmt.Printf("Products: %d\n", stats.TotalProducts)
	fmt.Printf("Users:    %d\n", stats.TotalUsers)
	fmt.Printf("Revenue:  %s\n", cli.Primary(model.FormatPrice(stats.TotalRevenue)))
	return nil
}

func runAdminOrders(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	if err := a.requireAdmin(); err != nil {
		return err
	}

	orders, err := a.client.AdminListOrders(cmd.Context())
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		fmt.Println("No orders.")
		return nil
	}

	renderOrders(orders)
	return nil
}

func runAdminOrderStatus(cmd *cobra.Command, args []string) error {
	orderID, status := args[0], args[1]
	if !validOrderStatus(status) {
		return &cli.ValidationError{Field: "status", Message: fmt.Sprintf("unknown status %q", status)}
	}

	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	if err := a.requireAdmin(); err != nil {
		return err
	}

	if err := a.client.UpdateOrderStatus(cmd.Context(), orderID, status); err != nil {
		return err
	}
	fmt.Printf("Order %s is now %s\n", orderID, formatOrderStatus(status))
	return nil
}

func validOrderStatus(status string) bool {
	switch status {
	case "pending", "confirmed", "processing", "shipped", "delivered", "cancelled":
		return true
	}
	return false
}
