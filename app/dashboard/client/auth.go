package client

import (
	"context"
	"net/http"
	"smart-mockdata/app/dashboard/models"
)

func (c *Client) SignIn(ctx context.Context, req *models.LoginRequest) (*models.Session, error) {
	var s models.Session
	if err := c.do(ctx, request{method: http.MethodPost, path: "/auth/signin", body: req, public: true}, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) SignUp(ctx context.Context, req *models.SignupRequest) error {
	return c.do(ctx, request{method: http.MethodPost, path: "/auth/signup", body: req, public: true}, nil)
}
