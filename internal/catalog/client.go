package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Service defines the operations the storefront needs from the catalog API.
// It abstracts the remote REST contract behind typed calls.
type Service interface {
	// ListProducts retrieves one page of products.
	ListProducts(ctx context.Context, page int) (*ProductPage, error)

	// GetProduct retrieves a single product by its identifier.
	// Returns ErrNotFound if no product exists with the given ID.
	GetProduct(ctx context.Context, id int64) (*Product, error)

	// CreateProduct adds a new product and returns the created record.
	CreateProduct(ctx context.Context, input ProductInput) (*Product, error)

	// UpdateProduct replaces the writable fields of an existing product.
	UpdateProduct(ctx context.Context, id int64, input ProductInput) error

	// DeleteProduct removes a product. Confirmation of intent is the caller's
	// concern, not this client's.
	DeleteProduct(ctx context.Context, id int64) error

	// SellProduct records a sale of the given quantity against a product.
	// Insufficient stock surfaces as a StatusError carrying the server message.
	SellProduct(ctx context.Context, id int64, quantity int) (*SaleReceipt, error)

	// ListSales retrieves one page of recorded sales.
	ListSales(ctx context.Context, page int) (*SalePage, error)

	// Health reports whether the catalog API is reachable.
	Health(ctx context.Context) error
}

// Client is the HTTP implementation of Service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ Service = (*Client)(nil)

// NewClient creates a catalog client for the given base URL. Every request is
// bounded by the configured timeout; there is no retry policy, a failure is
// surfaced immediately to the caller.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ListProducts retrieves one page of products.
func (c *Client) ListProducts(ctx context.Context, page int) (*ProductPage, error) {
	var result ProductPage
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/products?page=%d", page), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetProduct retrieves a single product by its identifier.
// Returns ErrNotFound if no product exists with the given ID.
func (c *Client) GetProduct(ctx context.Context, id int64) (*Product, error) {
	var result Product
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, &result); err != nil {
		if statusCode(err) == http.StatusNotFound {
			return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &result, nil
}

// CreateProduct adds a new product and returns the created record.
func (c *Client) CreateProduct(ctx context.Context, input ProductInput) (*Product, error) {
	var result Product
	if err := c.doJSON(ctx, http.MethodPost, "/products", input, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateProduct replaces the writable fields of an existing product.
func (c *Client) UpdateProduct(ctx context.Context, id int64, input ProductInput) error {
	return c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/products/%d", id), input, nil)
}

// DeleteProduct removes a product.
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil)
}

// SellProduct records a sale of the given quantity against a product.
func (c *Client) SellProduct(ctx context.Context, id int64, quantity int) (*SaleReceipt, error) {
	body := map[string]int{"quantity": quantity}
	var result SaleReceipt
	if err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/products/sell/%d", id), body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListSales retrieves one page of recorded sales.
func (c *Client) ListSales(ctx context.Context, page int) (*SalePage, error) {
	var result SalePage
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/sales?page=%d", page), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Health reports whether the catalog API is reachable. The product listing
// doubles as the health probe because the upstream exposes no dedicated one.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/products?page=1", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("catalog is unreachable: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("catalog health probe returned status %d", resp.StatusCode)
	}
	return nil
}

// doJSON executes one request against the catalog. A non-2xx response becomes a
// StatusError with the message extracted from the body; transport failures and
// undecodable success bodies are wrapped as-is.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("catalog request %s %s failed: %w", method, path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newStatusError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("catalog returned an invalid response body: %w", err)
	}
	return nil
}

// errorBody is the shape of structured error responses. The upstream uses the
// "error" key; "message" is accepted as a fallback.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

const maxErrorBodySize = 64 << 10

func newStatusError(resp *http.Response) *StatusError {
	statusErr := &StatusError{
		Code:    resp.StatusCode,
		Message: fmt.Sprintf("request failed with status %d", resp.StatusCode),
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return statusErr
	}
	var parsed errorBody
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return statusErr
	}
	switch {
	case parsed.Error != "":
		statusErr.Message = parsed.Error
	case parsed.Message != "":
		statusErr.Message = parsed.Message
	}
	return statusErr
}

// statusCode extracts the HTTP status from a StatusError, or 0 for any other error.
func statusCode(err error) int {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code
	}
	return 0
}
