package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"smart-mockdata/app/dashboard/models"
)

func (c *Client) ListApis(ctx context.Context) ([]models.ApiEndpoint, error) {
	return c.apis(ctx, request{method: http.MethodGet, path: "/apis"})
}

func (c *Client) ListActiveApis(ctx context.Context) ([]models.ApiEndpoint, error) {
	return c.apis(ctx, request{method: http.MethodGet, path: "/apis/active"})
}

// ListApisByMethod 方法名作为路径参数，需要转义
func (c *Client) ListApisByMethod(ctx context.Context, method string) ([]models.ApiEndpoint, error) {
	return c.apis(ctx, request{method: http.MethodGet, path: "/apis/method/" + url.PathEscape(method)})
}

func (c *Client) GetApi(ctx context.Context, id uint) (*models.ApiEndpoint, error) {
	var api models.ApiEndpoint
	if err := c.do(ctx, request{method: http.MethodGet, path: fmt.Sprintf("/apis/%d", id)}, &api); err != nil {
		return nil, err
	}
	return &api, nil
}

func (c *Client) CreateApi(ctx context.Context, in *models.ApiEndpointInput) (*models.ApiEndpoint, error) {
	var api models.ApiEndpoint
	if err := c.do(ctx, request{method: http.MethodPost, path: "/apis", body: in}, &api); err != nil {
		return nil, err
	}
	return &api, nil
}

func (c *Client) UpdateApi(ctx context.Context, id uint, in *models.ApiEndpointInput) (*models.ApiEndpoint, error) {
	var api models.ApiEndpoint
	if err := c.do(ctx, request{method: http.MethodPut, path: fmt.Sprintf("/apis/%d", id), body: in}, &api); err != nil {
		return nil, err
	}
	return &api, nil
}

func (c *Client) DeleteApi(ctx context.Context, id uint) error {
	return c.do(ctx, request{method: http.MethodDelete, path: fmt.Sprintf("/apis/%d", id)}, nil)
}

func (c *Client) apis(ctx context.Context, r request) ([]models.ApiEndpoint, error) {
	var apis []models.ApiEndpoint
	if err := c.do(ctx, r, &apis); err != nil {
		return nil, err
	}
	return apis, nil
}
