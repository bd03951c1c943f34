package api

import (
	"context"
	"net/url"

	"github.com/nslux/shopctl/internal/model"
)

// OrderRequest is the checkout payload.
type OrderRequest struct {
	OrderItems      []model.OrderItem     `json:"orderItems"`
	ShippingAddress model.ShippingAddress `json:"shippingAddress"`
	TotalPrice      float64               `json:"totalPrice"`
	Notes           string                `json:"notes,omitempty"`
}

// PlaceOrder submits an order for the logged-in user.
func (c *Client) PlaceOrder(ctx context.Context, req OrderRequest) (model.Order, error) {
	var order model.Order
	if err := c.post(ctx, "/orders", req, &order); err != nil {
		return model.Order{}, err
	}
	return order, nil
}

// MyOrders fetches the logged-in user's order history.
func (c *Client) MyOrders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := c.get(ctx, "/orders/my", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// AdminListOrders fetches all orders (admin bearer required).
func (c *Client) AdminListOrders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := c.get(ctx, "/admin/orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrderStatus sets an order's status (admin bearer required).
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID, status string) error {
	body := map[string]string{"status": status}
	return c.put(ctx, "/admin/orders/"+url.PathEscape(orderID)+"/status", body, nil)
}
