package client

import (
	"context"
	"fmt"
	"net/http"
	"smart-mockdata/app/dashboard/models"
)

func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, request{method: http.MethodGet, path: "/users"}, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, request{method: http.MethodGet, path: fmt.Sprintf("/users/%d", id)}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) CreateUser(ctx context.Context, in *models.UserInput) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, request{method: http.MethodPost, path: "/users", body: in}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UpdateUser(ctx context.Context, id uint, in *models.UserInput) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, request{method: http.MethodPut, path: fmt.Sprintf("/users/%d", id), body: in}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) DeleteUser(ctx context.Context, id uint) error {
	return c.do(ctx, request{method: http.MethodDelete, path: fmt.Sprintf("/users/%d", id)}, nil)
}
