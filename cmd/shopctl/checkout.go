package main

import (
	"fmt"

	"github.com/nslux/shopctl/internal/api"
	"github.com/nslux/shopctl/internal/cli"
	"github.com/nslux/shopctl/internal/model"
	"github.com/spf13/cobra"
)

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Place an order for the cart contents",
	Long: `Place an order. Requires a logged-in user and a non-empty cart.

Shipping fields default to the profile where available; all four are
required and validated before any request is sent. The cart is emptied
once the order is accepted.

Examples:
  shopctl checkout --name "Amel B" --address "12 Rue Didouche" --city Algiers --phone 0550123456
  shopctl checkout --city Algiers --notes "deliver after 6pm"`,
	Args: cobra.NoArgs,
	RunE: runCheckout,
}

var (
	checkoutName    string
	checkoutAddress string
	checkoutCity    string
	checkoutPhone   string
	checkoutNotes   string
)

func init() {
	checkoutCmd.Flags().StringVar(&checkoutName, "name", "", "recipient name (defaults to profile)")
	checkoutCmd.Flags().StringVar(&checkoutAddress, "address", "", "street address (defaults to profile)")
	checkoutCmd.Flags().StringVar(&checkoutCity, "city", "", "city (defaults to profile)")
	checkoutCmd.Flags().StringVar(&checkoutPhone, "phone", "", "phone number (defaults to profile)")
	checkoutCmd.Flags().StringVar(&checkoutNotes, "notes", "", "order notes")

	rootCmd.AddCommand(checkoutCmd)
}

func runCheckout(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	if err := a.requireUser(); err != nil {
		return err
	}
	if a.cart.IsEmpty() {
		return &cli.ValidationError{Field: "cart", Message: "your cart is empty"}
	}

	shipping := shippingFromProfile(a.session.Current().Profile)
	if checkoutName != "" {
		shipping.Name = checkoutName
	}
	if checkoutAddress != "" {
		shipping.Address = checkoutAddress
	}
	if checkoutCity != "" {
		shipping.City = checkoutCity
	}
	if checkoutPhone != "" {
		shipping.Phone = checkoutPhone
	}
	if err := validateShipping(shipping); err != nil {
		return err
	}

	order, err := a.client.PlaceOrder(cmd.Context(), api.OrderRequest{
		OrderItems:      orderItemsFromCart(a.cart.Lines()),
		ShippingAddress: shipping,
		TotalPrice:      a.cart.Total(),
		Notes:           checkoutNotes,
	})
	if err != nil {
		return err
	}

	if err := a.cart.Clear(); err != nil {
		return err
	}

	fmt.Printf("Order placed. Order number: %s\n", cli.Accent(order.OrderNumber))
	fmt.Printf("Total: %s\n", model.FormatPrice(order.TotalPrice))
	return nil
}

// shippingFromProfile prefills the shipping block from the profile, the
// same defaulting the checkout form does.
func shippingFromProfile(p model.Profile) model.ShippingAddress {
	return model.ShippingAddress{
		Name:    p.Name,
		Address: p.Address.Street,
		City:    p.Address.City,
		Phone:   p.Phone,
	}
}

// validateShipping enforces the required-field rules client-side, before
// any network call.
func validateShipping(s model.ShippingAddress) error {
	if s.Name == "" {
		return &cli.ValidationError{Field: "name", Message: "required (set --name or update your profile)"}
	}
	if s.Address == "" {
		return &cli.ValidationError{Field: "address", Message: "required (set --address or update your profile)"}
	}
	if s.City == "" {
		return &cli.ValidationError{Field: "city", Message: "required (set --city or update your profile)"}
	}
	if s.Phone == "" {
		return &cli.ValidationError{Field: "phone", Message: "required (set --phone or update your profile)"}
	}
	return nil
}

// orderItemsFromCart converts cart lines to the order payload shape.
func orderItemsFromCart(lines model.Cart) []model.OrderItem {
	items := make([]model.OrderItem, len(lines))
	for i, line := range lines {
		items[i] = model.OrderItem{
			Name:     line.Name,
			Quantity: line.Quantity,
			Image:    line.Image,
			Price:    line.Price,
			Product:  line.ProductID,
		}
	}
	return items
}
