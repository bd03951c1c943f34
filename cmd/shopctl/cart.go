package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/nslux/shopctl/internal/cli"
	"github.com/nslux/shopctl/internal/model"
	"github.com/spf13/cobra"
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Show or modify the cart",
	Long: `Show the cart, or modify it with the subcommands.

The cart lives locally in ~/.shopctl/ and persists between invocations.
Every change writes the full snapshot back to disk.

Examples:
  shopctl cart
  shopctl cart add 64f1a2 --qty 2
  shopctl cart set 64f1a2 5
  shopctl cart rm 64f1a2
  shopctl cart clear`,
	Args: cobra.NoArgs,
	RunE: runCartShow,
}

var cartAddQty int

var cartAddCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Add a product to the cart",
	Long: `Add a product to the cart. The product's current name, price and
image are snapshotted into the cart line; adding the same product again
merges into the existing line.`,
	Args: cobra.ExactArgs(1),
	RunE: runCartAdd,
}

var cartRmCmd = &cobra.Command{
	Use:   "rm <product-id>",
	Short: "Remove a line from the cart",
	Args:  cobra.ExactArgs(1),
	RunE:  runCartRm,
}

var cartSetCmd = &cobra.Command{
	Use:   "set <product-id> <quantity>",
	Short: "Set a line's quantity",
	Long: `Set a cart line to exactly the given quantity. Zero or negative
removes the line.`,
	Args: cobra.ExactArgs(2),
	RunE: runCartSet,
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	Args:  cobra.NoArgs,
	RunE:  runCartClear,
}

func init() {
	cartAddCmd.Flags().IntVar(&cartAddQty, "qty", 1, "quantity to add")

	cartCmd.AddCommand(cartAddCmd)
	cartCmd.AddCommand(cartRmCmd)
	cartCmd.AddCommand(cartSetCmd)
	cartCmd.AddCommand(cartClearCmd)
	rootCmd.AddCommand(cartCmd)
}

func runCartShow(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	a.loadTheme(cmd.Context())

	if a.cart.IsEmpty() {
		fmt.Println("Your cart is empty.")
		return nil
	}

	table := cli.NewTable()
	table.SetMaxWidth(1, cli.DefaultMaxNameWidth)
	table.AlignRight(2)
	table.AlignRight(3)
	for _, line := range a.cart.Lines() {
		table.AddRow(
			cli.Gray(line.ProductID),
			line.Name,
			fmt.Sprintf("x%d", line.Quantity),
			cli.Primary(model.FormatPrice(line.Price*float64(line.Quantity))),
		)
	}
	table.Render(os.Stdout)

	fmt.Printf("\n%d item(s), total %s\n",
		a.cart.ItemCount(), cli.Accent(model.FormatPrice(a.cart.Total())))
	return nil
}

func runCartAdd(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}

	product, err := a.client.GetProduct(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	// Stock is checked here, at add time; the cart itself never validates it.
	if product.Stock <= 0 {
		return &cli.ValidationError{Field: "product", Message: fmt.Sprintf("%q is out of stock", product.Name)}
	}

	if err := a.cart.Add(product, cartAddQty); err != nil {
		return err
	}

	line := a.cart.Lines().Find(product.ID)
	fmt.Printf("Added %s (x%d in cart)\n", product.Name, line.Quantity)
	return nil
}

func runCartRm(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}

	if err := a.cart.Remove(args[0]); err != nil {
		return err
	}
	fmt.Println("Removed.")
	return nil
}

func runCartSet(cmd *cobra.Command, args []string) error {
	qty, err := strconv.Atoi(args[1])
	if err != nil {
		return &cli.ValidationError{Field: "quantity", Message: "must be an integer"}
	}

	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}

	if err := a.cart.SetQuantity(args[0], qty); err != nil {
		return err
	}

	if qty <= 0 {
		fmt.Println("Removed.")
	} else {
		fmt.Printf("Quantity set to %d.\n", qty)
	}
	return nil
}

func runCartClear(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}

	if err := a.cart.Clear(); err != nil {
		return err
	}
	fmt.Println("Cart cleared.")
	return nil
}
