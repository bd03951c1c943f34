package main

import (
	"fmt"

	"github.com/nslux/shopctl/internal/api"
	"github.com/nslux/shopctl/internal/cli"
	"github.com/spf13/cobra"
)

var adminProductsCmd = &cobra.Command{
	Use:   "products",
	Short: "Manage catalog products",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var adminProductsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all products",
	Args:  cobra.NoArgs,
	RunE:  runAdminProductsList,
}

var adminProductsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a product",
	Long: `Create a catalog product.

Examples:
  shopctl admin products create --name "Silk Dress" --price 259.99 --stock 10
  shopctl admin products create --name "Oud Parfum" --price 450 --stock 5 --category fragrance --featured`,
	Args: cobra.NoArgs,
	RunE: runAdminProductsCreate,
}

var adminProductsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a product",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminProductsUpdate,
}

var adminProductsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a product",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminProductsDelete,
}

var (
	productName        string
	productDescription string
	productPrice       float64
	productImage       string
	productCategory    string
	productStock       int
	productFeatured    bool
	productSizes       []string
)

func addProductFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&productName, "name", "", "product name")
	cmd.Flags().StringVar(&productDescription, "description", "", "product description")
	cmd.Flags().Float64Var(&productPrice, "price", 0, "price in DA")
	cmd.Flags().StringVar(&productImage, "image", "", "image URL")
	cmd.Flags().StringVar(&productCategory, "category", "", "category")
	cmd.Flags().IntVar(&productStock, "stock", 0, "units in stock")
	cmd.Flags().BoolVar(&productFeatured, "featured", false, "feature on the home page")
	cmd.Flags().StringArrayVar(&productSizes, "size", nil, "available size (can be repeated)")
}

func init() {
	addProductFlags(adminProductsCreateCmd)
	addProductFlags(adminProductsUpdateCmd)

	adminProductsCmd.AddCommand(adminProductsListCmd)
	adminProductsCmd.AddCommand(adminProductsCreateCmd)
	adminProductsCmd.AddCommand(adminProductsUpdateCmd)
	adminProductsCmd.AddCommand(adminProductsDeleteCmd)
	adminCmd.AddCommand(adminProductsCmd)
}

func productInputFromFlags() (api.ProductInput, error) {
	if productName == "" {
		return api.ProductInput{}, &cli.ValidationError{Field: "name", Message: "required"}
	}
	if productPrice <= 0 {
		return api.ProductInput{}, &cli.ValidationError{Field: "price", Message: "must be positive"}
	}
	if productStock < 0 {
		return api.ProductInput{}, &cli.ValidationError{Field: "stock", Message: "must not be negative"}
	}
	return api.ProductInput{
		Name:        productName,
		Description: productDescription,
		Price:       productPrice,
		Image:       productImage,
		Category:    productCategory,
		Stock:       productStock,
		Featured:    productFeatured,
		Sizes:       productSizes,
	}, nil
}

func runAdminProductsList(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	if err := a.requireAdmin(); err != nil {
		return err
	}

	products, err := a.client.AdminListProducts(cmd.Context())
	if err != nil {
		return err
	}
	if len(products) == 0 {
		fmt.Println("No products.")
		return nil
	}

	renderProducts(products)
	return nil
}

func runAdminProductsCreate(cmd *cobra.Command, args []string) error {
	input, err := productInputFromFlags()
	if err != nil {
		return err
	}

	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	if err := a.requireAdmin(); err != nil {
		return err
	}

	product, err := a.client.CreateProduct(cmd.Context(), input)
	if err != nil {
		return err
	}
	fmt.Printf("Created %s (%s)\n", product.Name, product.ID)
	return nil
}

func runAdminProductsUpdate(cmd *cobra.Command, args []string) error {
	input, err := productInputFromFlags()
	if err != nil {
		return err
	}

	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	if err := a.requireAdmin(); err != nil {
		return err
	}

	product, err := a.client.UpdateProduct(cmd.Context(), args[0], input)
	if err != nil {
		return err
	}
	fmt.Printf("Updated %s\n", product.Name)
	return nil
}

func runAdminProductsDelete(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	if err := a.requireAdmin(); err != nil {
		return err
	}

	if err := a.client.DeleteProduct(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Println("Deleted.")
	return nil
}
