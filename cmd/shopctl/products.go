package main

import (
	"fmt"
	"os"

	"github.com/nslux/shopctl/internal/api"
	"github.com/nslux/shopctl/internal/cli"
	"github.com/nslux/shopctl/internal/model"
	"github.com/spf13/cobra"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List catalog products",
	Long: `List the catalog, optionally filtered.

Examples:
  shopctl products
  shopctl products --search "silk"
  shopctl products --category fragrance --featured`,
	Args: cobra.NoArgs,
	RunE: runProducts,
}

var (
	productsSearch   string
	productsCategory string
	productsFeatured bool
)

func init() {
	productsCmd.Flags().StringVar(&productsSearch, "search", "", "search by name")
	productsCmd.Flags().StringVar(&productsCategory, "category", "", "filter by category")
	productsCmd.Flags().BoolVar(&productsFeatured, "featured", false, "only featured products")

	rootCmd.AddCommand(productsCmd)
}

func runProducts(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	a.loadTheme(cmd.Context())

	products, err := a.client.ListProducts(cmd.Context(), api.ProductQuery{
		Search:   productsSearch,
		Category: productsCategory,
		Featured: productsFeatured,
	})
	if err != nil {
		return err
	}

	if len(products) == 0 {
		fmt.Println("No products found.")
		return nil
	}

	renderProducts(products)
	return nil
}

func renderProducts(products []model.Product) {
	table := cli.NewTable()
	table.SetMaxWidth(1, cli.DefaultMaxNameWidth)
	table.AlignRight(2)
	for _, p := range products {
		name := p.Name
		if p.Featured {
			name = cli.Accent("★ ") + name
		}
		table.AddRow(
			cli.Gray(p.ID),
			name,
			cli.Primary(model.FormatPrice(p.Price)),
			formatStock(p.Stock),
		)
	}
	table.Render(os.Stdout)
}

func formatStock(stock int) string {
	switch {
	case stock <= 0:
		return cli.Red("out of stock")
	case stock < 5:
		return cli.Yellow(fmt.Sprintf("%d left", stock))
	default:
		return cli.Green("in stock")
	}
}

var productsSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Ask the backend to create its demo catalog",
	Args:  cobra.NoArgs,
	RunE:  runProductsSeed,
}

func init() {
	productsCmd.AddCommand(productsSeedCmd)
}

func runProductsSeed(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}

	if err := a.client.SeedSampleProducts(cmd.Context()); err != nil {
		return err
	}
	fmt.Println("Sample products created.")
	return nil
}

var productCmd = &cobra.Command{
	Use:   "product <id>",
	Short: "Show one product",
	Args:  cobra.ExactArgs(1),
	RunE:  runProduct,
}

func init() {
	rootCmd.AddCommand(productCmd)
}

func runProduct(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	a.loadTheme(cmd.Context())

	p, err := a.client.GetProduct(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	fmt.Println(cli.Primary(p.Name))
	fmt.Printf("Price:    %s\n", model.FormatPrice(p.Price))
	fmt.Printf("Stock:    %s\n", formatStock(p.Stock))
	if p.Category != "" {
		fmt.Printf("Category: %s\n", p.Category)
	}
	if len(p.Sizes) > 0 {
		fmt.Printf("Sizes:    %v\n", p.Sizes)
	}
	if p.Description != "" {
		fmt.Printf("\n%s\n", p.Description)
	}
	return nil
}
