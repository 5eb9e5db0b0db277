package api

import (
	"context"
	"fmt"
	"net/http"
	"pricewatch/internal/model"
)

// CreateProductRequest is the payload for adding a tracked product.
// TargetPrice stays nil when the user set no target.
type CreateProductRequest struct {
	Name        string   `json:"name"`
	URL         string   `json:"url"`
	UserID      int64    `json:"userId"`
	TargetPrice *float64 `json:"targetPrice"`
}

func (c Client) ListProductsForUser(ctx context.Context, userID int64) ([]model.Product, error) {
	var ps []model.Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/user/%d", userID), nil, &ps); err != nil {
		return nil, err
	}
	return ps, nil
}

func (c Client) GetProduct(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, &p)
	return p, err
}

func (c Client) CreateProduct(ctx context.Context, req CreateProductRequest) (model.Product, error) {
	var p model.Product
	if err := c.do(ctx, http.MethodPost, "/products", req, &p); err != nil {
		return p, err
	}
	c.Logger.Infof("CreateProduct: Created Product with ID: %d for UserID: %d", p.ID, p.UserID)
	return p, nil
}

func (c Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil)
}

// TriggerPriceCheck asks the backend to scrape one product. The backend only
// acks the trigger; completion is never signalled back.
func (c Client) TriggerPriceCheck(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/products/%d/check-price", id), nil, nil)
}

func (c Client) ToggleEmailNotifications(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/products/%d/toggle-email-notifications", id), nil, &p)
	return p, err
}
