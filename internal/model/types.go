// Package model defines the core data structures for shopctl.
package model

import "time"

// Product is a catalog entry as served by the storefront API.
type Product struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Image       string   `json:"image,omitempty"`
	Category    string   `json:"category,omitempty"`
	Stock       int      `json:"countInStock"`
	Featured    bool     `json:"featured,omitempty"`
	Sizes       []string `json:"sizes,omitempty"`
}

// CartLine is one product in the cart. Product fields are snapshotted at
// add time so a later catalog edit does not silently change an open cart.
type CartLine struct {
	ProductID string  `json:"_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
	Category  string  `json:"category,omitempty"`
	Quantity  int     `json:"quantity"`
}

// Cart is an ordered sequence of lines. Order is display order only.
// Invariant: no two lines share a ProductID.
type Cart []CartLine

// Find returns a pointer to the line with the given product id, or nil.
func (c Cart) Find(productID string) *CartLine {
	for i := range c {
		if c[i].ProductID == productID {
			return &c[i]
		}
	}
	return nil
}

// Total returns the sum of price*quantity over all lines.
// Always derived, never stored.
func (c Cart) Total() float64 {
	var total float64
	for _, line := range c {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

// ItemCount returns the sum of quantities over all lines.
func (c Cart) ItemCount() int {
	var count int
	for _, line := range c {
		count += line.Quantity
	}
	return count
}

// LineFromProduct snapshots a product into a new cart line.
func LineFromProduct(p Product, quantity int) CartLine {
	return CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Category:  p.Category,
		Quantity:  quantity,
	}
}

// Address is a shipping or profile address.
type Address struct {
	Street string `json:"street,omitempty"`
	City   string `json:"city,omitempty"`
}

// Profile is the authenticated user's account data.
type Profile struct {
	ID      string  `json:"_id,omitempty"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone,omitempty"`
	Address Address `json:"address,omitempty"`
}

// AdminAccount identifies a logged-in administrator.
type AdminAccount struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ShippingAddress is the checkout delivery block. All fields are required
// before an order may be placed.
type ShippingAddress struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Phone   string `json:"phone"`
}

// OrderItem is one purchased line inside an order.
type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image,omitempty"`
	Price    float64 `json:"price"`
	Product  string  `json:"product"`
}

// Order is a placed order as returned by the API.
type Order struct {
	ID              string          `json:"_id"`
	OrderNumber     string          `json:"orderNumber"`
	Items           []OrderItem     `json:"orderItems"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	TotalPrice      float64         `json:"totalPrice"`
	Status          string          `json:"status"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ThemeConfig is the shared global set of visual style tokens. Color tokens
// are free-form strings; only the rendering side interprets them.
type ThemeConfig struct {
	Primary        string `json:"primary"`
	Secondary      string `json:"secondary"`
	Accent         string `json:"accent"`
	Background     string `json:"background"`
	CardBackground string `json:"cardBackground"`
	TextColor      string `json:"textColor"`
	BorderColor    string `json:"borderColor"`
	ThemeName      string `json:"themeName"`
}

// Session is the durable local record rehydrated at startup: at most one of
// the two tokens is meaningful for request authorization, plus the last
// saved cart snapshot.
type Session struct {
	UserToken  string `json:"userToken,omitempty"`
	AdminToken string `json:"adminToken,omitempty"`
	Cart       Cart   `json:"cart,omitempty"`
}
