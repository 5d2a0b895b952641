package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, 2*time.Second)
}

func Test_Client_ListProducts(t *testing.T) {
	testCases := []struct {
		name          string
		status        int
		body          string
		expectErr     bool
		expectMessage string
		expectCount   int
		expectPages   int
	}{
		{
			name:        "Success - one product",
			status:      http.StatusOK,
			body:        `{"products":[{"id":1,"name":"Widget","price":9.99,"quantity":5}],"current_page":1,"pages":3,"total":25}`,
			expectCount: 1,
			expectPages: 3,
		},
		{
			name:        "Success - empty page",
			status:      http.StatusOK,
			body:        `{"products":[],"current_page":1,"pages":1,"total":0}`,
			expectCount: 0,
			expectPages: 1,
		},
		{
			name:          "Error - structured server error",
			status:        http.StatusInternalServerError,
			body:          `{"error":"database is down"}`,
			expectErr:     true,
			expectMessage: "database is down",
		},
		{
			name:          "Error - non-JSON error body",
			status:        http.StatusBadGateway,
			body:          `<html>upstream timeout</html>`,
			expectErr:     true,
			expectMessage: "request failed with status 502",
		},
		{
			name:      "Error - non-JSON success body",
			status:    http.StatusOK,
			body:      `<html>not the API</html>`,
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			var requestedPath string
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				requestedPath = r.URL.RequestURI()
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})

			// when
			page, err := client.ListProducts(context.Background(), 2)

			// then
			assert.Equal(t, "/products?page=2", requestedPath)
			if tc.expectErr {
				require.Error(t, err)
				if tc.expectMessage != "" {
					var statusErr *StatusError
					require.ErrorAs(t, err, &statusErr)
					assert.Equal(t, tc.expectMessage, statusErr.Message)
				}
				return
			}
			require.NoError(t, err)
			assert.Len(t, page.Products, tc.expectCount)
			assert.Equal(t, tc.expectPages, page.Pages)
		})
	}
}

func Test_Client_GetProduct(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/products/7", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":7,"name":"Gadget","price":"19.50","quantity":3}`))
		})

		product, err := client.GetProduct(context.Background(), 7)

		require.NoError(t, err)
		assert.Equal(t, int64(7), product.ID)
		assert.Equal(t, "Gadget", product.Name)
		assert.InDelta(t, 19.50, float64(product.Price), 0.001)
		assert.Equal(t, 3, product.Quantity)
	})

	t.Run("Error - 404 with HTML body maps to ErrNotFound", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`<!doctype html><title>404 Not Found</title>`))
		})

		_, err := client.GetProduct(context.Background(), 99)

		require.ErrorIs(t, err, ErrNotFound)
	})
}

func Test_Client_CreateProduct(t *testing.T) {
	// given
	var received map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &received))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":42,"name":"Widget","price":9.99,"quantity":5}`))
	})

	// when
	created, err := client.CreateProduct(context.Background(), ProductInput{Name: "Widget", Price: 9.99, Quantity: 5})

	// then
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, "Widget", received["name"])
	assert.InDelta(t, 9.99, received["price"].(float64), 0.001)
	assert.InDelta(t, 5, received["quantity"].(float64), 0.001)
}

func Test_Client_UpdateProduct(t *testing.T) {
	// given
	var method, path string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		_, _ = w.Write([]byte(`{"id":7,"name":"Widget","price":12,"quantity":4}`))
	})

	// when
	err := client.UpdateProduct(context.Background(), 7, ProductInput{Name: "Widget", Price: 12, Quantity: 4})

	// then
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "/products/7", path)
}

func Test_Client_DeleteProduct(t *testing.T) {
	// given
	var method, path string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		_, _ = w.Write([]byte(`{"message":"deleted"}`))
	})

	// when
	err := client.DeleteProduct(context.Background(), 3)

	// then
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, method)
	assert.Equal(t, "/products/3", path)
}

func Test_Client_SellProduct(t *testing.T) {
	t.Run("Success - parses quoted totals and ISO timestamps", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/products/sell/7", r.URL.Path)
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"quantity":3}`, string(body))
			_, _ = w.Write([]byte(`{
				"message": "sale recorded",
				"sale": {"id":11,"product_id":7,"product_name":"Widget","quantity":3,"sale_date":"2025-06-01T15:04:05","total_venta":"29.97"},
				"remaining_stock": 2
			}`))
		})

		receipt, err := client.SellProduct(context.Background(), 7, 3)

		require.NoError(t, err)
		assert.Equal(t, int64(11), receipt.Sale.ID)
		assert.Equal(t, "Widget", receipt.Sale.ProductName)
		assert.InDelta(t, 29.97, float64(receipt.Sale.Total), 0.001)
		assert.Equal(t, 2025, receipt.Sale.SaleDate.Year())
		assert.Equal(t, 2, receipt.RemainingStock)
	})

	t.Run("Error - insufficient stock surfaces server message", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"insufficient stock"}`))
		})

		_, err := client.SellProduct(context.Background(), 7, 100)

		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusBadRequest, statusErr.Code)
		assert.Equal(t, "insufficient stock", statusErr.Message)
	})
}

func Test_Client_ListSales(t *testing.T) {
	// given
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sales?page=1", r.URL.RequestURI())
		_, _ = w.Write([]byte(`{
			"sales": [{"id":1,"product_id":7,"product_name":"Widget","quantity":2,"sale_date":"2025-06-01 10:30:00","total_venta":19.98}],
			"current_page": 1, "pages": 1, "total": 1
		}`))
	})

	// when
	page, err := client.ListSales(context.Background(), 1)

	// then
	require.NoError(t, err)
	require.Len(t, page.Sales, 1)
	assert.Equal(t, "Widget", page.Sales[0].ProductName)
	assert.InDelta(t, 19.98, float64(page.Sales[0].Total), 0.001)
	assert.Equal(t, 10, page.Sales[0].SaleDate.Hour())
}

func Test_Client_TransportFailure(t *testing.T) {
	// given: a server that is already gone
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	client := NewClient(server.URL, time.Second)
	server.Close()

	// when
	_, err := client.ListProducts(context.Background(), 1)

	// then
	require.Error(t, err)
	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr), "transport failures are not status errors")
}

func Test_UserMessage(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "server message passes through",
			err:      &StatusError{Code: 400, Message: "insufficient stock"},
			expected: "insufficient stock",
		},
		{
			name:     "wrapped status error passes through",
			err:      fmt.Errorf("catalog: %w", &StatusError{Code: 500, Message: "database is down"}),
			expected: "database is down",
		},
		{
			name:     "not found",
			err:      ErrNotFound,
			expected: "Product not found",
		},
		{
			name:     "transport failure collapses to generic message",
			err:      errors.New("dial tcp: connection refused"),
			expected: "Could not reach the catalog service",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, UserMessage(tc.err))
		})
	}
}
