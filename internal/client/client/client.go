// Package client provides typed access to the bookstore GraphQL API for the
// CLI. It wraps a plain HTTP client: every operation is a POST to /graphql
// with the bearer token attached once the user has logged in.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/bookstore/internal/models"
)

const defaultTimeout = 15 * time.Second

// Client talks to the bookstore API. It keeps the last issued bearer token
// in memory; nothing is persisted.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// Option customises client instantiation.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// New constructs a Client pointing at the provided API base URL.
func New(base string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimSpace(base)
	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		trimmed = "http://" + trimmed
	}
	if _, err := url.Parse(trimmed); err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}

	cli := &Client{
		baseURL:    strings.TrimRight(trimmed, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(cli)
	}
	return cli, nil
}

// SetToken stores the bearer token attached to subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token returns the in-memory bearer token, if any.
func (c *Client) Token() string {
	return c.token
}

// APIError represents a GraphQL error response from the API.
type APIError struct {
	Messages []string
	Code     string
}

func (e *APIError) Error() string {
	if len(e.Messages) == 0 {
		return "api request failed"
	}
	return strings.Join(e.Messages, "; ")
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message    string         `json:"message"`
		Extensions map[string]any `json:"extensions"`
	} `json:"errors"`
}

// do posts a GraphQL document and decodes the data payload into v.
func (c *Client) do(ctx context.Context, query string, vars map[string]any, v any) error {
	payload, err := json.Marshal(graphQLRequest{Query: query, Variables: vars})
	if err != nil {
		return fmt.Errorf("encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/graphql", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	var out graphQLResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	if len(out.Errors) > 0 {
		apiErr := &APIError{}
		for _, e := range out.Errors {
			apiErr.Messages = append(apiErr.Messages, e.Message)
			if code, ok := e.Extensions["code"].(string); ok && apiErr.Code == "" {
				apiErr.Code = code
			}
		}
		return apiErr
	}

	if v == nil {
		return nil
	}
	if err := json.Unmarshal(out.Data, v); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}

// Register creates a new user account and returns the server's status
// message. No token is issued; Login is a separate step.
func (c *Client) Register(ctx context.Context, email, password string) (string, error) {
	const mutation = `
	mutation ($email: String!, $password: String!) {
		register(email: $email, password: $password)
	}`

	var data struct {
		Register string `json:"register"`
	}
	err := c.do(ctx, mutation, map[string]any{"email": email, "password": password}, &data)
	if err != nil {
		return "", err
	}
	return data.Register, nil
}

// Login authenticates and stores the returned bearer token for subsequent
// calls.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	const mutation = `
	mutation ($email: String!, $password: String!) {
		login(email: $email, password: $password)
	}`

	var data struct {
		Login string `json:"login"`
	}
	err := c.do(ctx, mutation, map[string]any{"email": email, "password": password}, &data)
	if err != nil {
		return "", err
	}

	c.token = data.Login
	return data.Login, nil
}

// Books lists the catalog with authors embedded.
func (c *Client) Books(ctx context.Context) ([]models.Book, error) {
	const query = `
	{
		books {
			id title isbn authorId price stock
			author { id firstName lastName }
		}
	}`

	var data struct {
		Books []models.Book `json:"books"`
	}
	if err := c.do(ctx, query, nil, &data); err != nil {
		return nil, err
	}
	return data.Books, nil
}

// Authors lists all authors.
func (c *Client) Authors(ctx context.Context) ([]models.Author, error) {
	const query = `
	{
		authors { id firstName lastName }
	}`

	var data struct {
		Authors []models.Author `json:"authors"`
	}
	if err := c.do(ctx, query, nil, &data); err != nil {
		return nil, err
	}
	return data.Authors, nil
}

// AddBook creates a book; the stored bearer token must be valid.
func (c *Client) AddBook(ctx context.Context, title, isbn string, authorID int32, price float64, stock int32) (*models.Book, error) {
	const mutation = `
	mutation ($title: String!, $isbn: String!, $authorId: Int!, $price: Float!, $stock: Int!) {
		addBook(title: $title, isbn: $isbn, authorId: $authorId, price: $price, stock: $stock) {
			id title isbn authorId price stock
			author { id firstName lastName }
		}
	}`

	var data struct {
		AddBook models.Book `json:"addBook"`
	}
	err := c.do(ctx, mutation, map[string]any{
		"title": title, "isbn": isbn, "authorId": authorID, "price": price, "stock": stock,
	}, &data)
	if err != nil {
		return nil, err
	}
	return &data.AddBook, nil
}
