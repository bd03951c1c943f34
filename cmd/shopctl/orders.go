package main

import (
	"fmt"
	"os"

	"github.com/nslux/shopctl/internal/cli"
	"github.com/nslux/shopctl/internal/model"
	"github.com/spf13/cobra"
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Show your order history",
	Args:  cobra.NoArgs,
	RunE:  runOrders,
}

func init() {
	rootCmd.AddCommand(ordersCmd)
}

func runOrders(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	if err := a.requireUser(); err != nil {
		return err
	}
	a.loadTheme(cmd.Context())

	orders, err := a.client.MyOrders(cmd.Context())
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		fmt.Println("No orders yet.")
		return nil
	}

	renderOrders(orders)
	return nil
}

func renderOrders(orders []model.Order) {
	table := cli.NewTable()
	table.AlignRight(3)
	for _, o := range orders {
		table.AddRow(
			cli.Accent(o.OrderNumber),
			o.CreatedAt.Format("2006-01-02"),
			formatOrderStatus(o.Status),
			cli.Primary(model.FormatPrice(o.TotalPrice)),
			fmt.Sprintf("%d item(s)", len(o.Items)),
		)
	}
	table.Render(os.Stdout)
}

func formatOrderStatus(status string) string {
	switch status {
	case "pending":
		return cli.Yellow("[pending]")
	case "confirmed", "processing":
		return cli.Green("[" + status + "]")
	case "shipped", "delivered":
		return cli.Green("[" + status + "]")
	case "cancelled":
		return cli.Red("[cancelled]")
	default:
		return cli.Gray("[" + status + "]")
	}
}
