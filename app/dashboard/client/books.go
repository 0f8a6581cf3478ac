package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"smart-mockdata/app/dashboard/models"
)

func (c *Client) ListBooks(ctx context.Context) ([]models.Book, error) {
	return c.books(ctx, request{method: http.MethodGet, path: "/books"})
}

func (c *Client) GetBook(ctx context.Context, id uint) (*models.Book, error) {
	var book models.Book
	if err := c.do(ctx, request{method: http.MethodGet, path: fmt.Sprintf("/books/%d", id)}, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

func (c *Client) CreateBook(ctx context.Context, in *models.BookInput) (*models.Book, error) {
	var book models.Book
	if err := c.do(ctx, request{method: http.MethodPost, path: "/books", body: in}, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

func (c *Client) UpdateBook(ctx context.Context, id uint, in *models.BookInput) (*models.Book, error) {
	var book models.Book
	if err := c.do(ctx, request{method: http.MethodPut, path: fmt.Sprintf("/books/%d", id), body: in}, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

func (c *Client) DeleteBook(ctx context.Context, id uint) error {
	return c.do(ctx, request{method: http.MethodDelete, path: fmt.Sprintf("/books/%d", id)}, nil)
}

// SearchBooks 按属性搜索，只发送非空参数
func (c *Client) SearchBooks(ctx context.Context, params models.BookSearch) ([]models.Book, error) {
	query := url.Values{}
	if params.Title != "" {
		query.Set("title", params.Title)
	}
	if params.Author != "" {
		query.Set("author", params.Author)
	}
	return c.books(ctx, request{method: http.MethodGet, path: "/books/search", query: query})
}

func (c *Client) SearchBooksByQuery(ctx context.Context, q string) ([]models.Book, error) {
	return c.books(ctx, request{method: http.MethodGet, path: "/books/search/query", query: url.Values{"q": {q}}})
}

func (c *Client) books(ctx context.Context, r request) ([]models.Book, error) {
	var books []models.Book
	if err := c.do(ctx, r, &books); err != nil {
		return nil, err
	}
	return books, nil
}
