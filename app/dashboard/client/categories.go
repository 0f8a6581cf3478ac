package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"smart-mockdata/app/dashboard/models"
)

func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	return c.categories(ctx, request{method: http.MethodGet, path: "/categories"})
}

func (c *Client) ListActiveCategories(ctx context.Context) ([]models.Category, error) {
	return c.categories(ctx, request{method: http.MethodGet, path: "/categories/active"})
}

func (c *Client) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if err := c.do(ctx, request{method: http.MethodGet, path: fmt.Sprintf("/categories/%d", id)}, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) CreateCategory(ctx context.Context, in *models.CategoryInput) (*models.Category, error) {
	var category models.Category
	if err := c.do(ctx, request{method: http.MethodPost, path: "/categories", body: in}, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id uint, in *models.CategoryInput) (*models.Category, error) {
	var category models.Category
	if err := c.do(ctx, request{method: http.MethodPut, path: fmt.Sprintf("/categories/%d", id), body: in}, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id uint) error {
	return c.do(ctx, request{method: http.MethodDelete, path: fmt.Sprintf("/categories/%d", id)}, nil)
}

func (c *Client) SearchCategories(ctx context.Context, name string) ([]models.Category, error) {
	query := url.Values{}
	if name != "" {
		query.Set("name", name)
	}
	return c.categories(ctx, request{method: http.MethodGet, path: "/categories/search", query: query})
}

func (c *Client) SearchCategoriesByQuery(ctx context.Context, q string) ([]models.Category, error) {
	return c.categories(ctx, request{method: http.MethodGet, path: "/categories/search/query", query: url.Values{"q": {q}}})
}

func (c *Client) categories(ctx context.Context, r request) ([]models.Category, error) {
	var categories []models.Category
	if err := c.do(ctx, r, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
