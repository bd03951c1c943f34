package api

import (
	"context"
	"net/url"

	"github.com/nslux/shopctl/internal/model"
)

// ProductQuery filters a catalog listing. Zero values mean "no filter".
type ProductQuery struct {
	Search   string
	Category string
	Featured bool
}

func (q ProductQuery) encode() string {
	params := url.Values{}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.Category != "" {
		params.Set("category", q.Category)
	}
	if q.Featured {
		params.Set("featured", "true")
	}
	if len(params) == 0 {
		return ""
	}
	return "?" + params.Encode()
}

// ListProducts fetches the catalog, optionally filtered.
func (c *Client) ListProducts(ctx context.Context, query ProductQuery) ([]model.Product, error) {
	var products []model.Product
	if err := c.get(ctx, "/products"+query.encode(), &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct fetches a single product by id.
func (c *Client) GetProduct(ctx context.Context, id string) (model.Product, error) {
	var product model.Product
	if err := c.get(ctx, "/products/"+url.PathEscape(id), &product); err != nil {
		return model.Product{}, err
	}
	return product, nil
}

// SeedSampleProducts asks the backend to create its demo catalog.
func (c *Client) SeedSampleProducts(ctx context.Context) error {
	return c.post(ctx, "/products/sample", nil, nil)
}

// ProductInput is the create/update payload for admin product management.
type ProductInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Image       string   `json:"image,omitempty"`
	Category    string   `json:"category,omitempty"`
	Stock       int      `json:"countInStock"`
	Featured    bool     `json:"featured"`
	Sizes       []string `json:"sizes,omitempty"`
}

// AdminListProducts fetches the catalog through the admin surface.
func (c *Client) AdminListProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := c.get(ctx, "/admin/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// CreateProduct adds a catalog entry (admin bearer required).
func (c *Client) CreateProduct(ctx context.Context, input ProductInput) (model.Product, error) {
	var product model.Product
	if err := c.post(ctx, "/admin/products", input, &product); err != nil {
		return model.Product{}, err
	}
	return product, nil
}

// UpdateProduct replaces a catalog entry (admin bearer required).
func (c *Client) UpdateProduct(ctx context.Context, id string, input ProductInput) (model.Product, error) {
	var product model.Product
	if err := c.put(ctx, "/admin/products/"+url.PathEscape(id), input, &product); err != nil {
		return model.Product{}, err
	}
	return product, nil
}

// DeleteProduct removes a catalog entry (admin bearer required).
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.delete(ctx, "/admin/products/"+url.PathEscape(id))
}

// AdminStats is the dashboard summary block.
type AdminStats struct {
	TotalOrders   int     `json:"totalOrders"`
	TotalProducts int     `json:"totalProducts"`
	TotalUsers    int     `json:"totalUsers"`
	TotalRevenue  float64 `json:"totalRevenue"`
	PendingOrders int     `json:"pendingOrders"`
}

// GetAdminStats fetches the dashboard summary (admin bearer required).
func (c *Client) GetAdminStats(ctx context.Context) (AdminStats, error) {
	var stats AdminStats
	if err := c.get(ctx, "/admin/stats", &stats); err != nil {
		return AdminStats{}, err
	}
	return stats, nil
}
