package catalog

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

// Product is the catalog's product record. The catalog service owns it; this
// client only holds a transient copy for display.
type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       Amount `json:"price"`
	Quantity    int    `json:"quantity"`
}

// Sale is a recorded sale. Sales are created through SellProduct and are never
// mutated or deleted by this client.
type Sale struct {
	ID          int64    `json:"id"`
	ProductID   int64    `json:"product_id"`
	ProductName string   `json:"product_name"`
	Quantity    int      `json:"quantity"`
	Total       Amount   `json:"total_venta"`
	SaleDate    SaleTime `json:"sale_date"`
}

// ProductPage is one page of the product listing plus pagination metadata.
type ProductPage struct {
	Products    []Product `json:"products"`
	CurrentPage int       `json:"current_page"`
	Pages       int       `json:"pages"`
	Total       int       `json:"total"`
}

// SalePage is one page of the sales listing plus pagination metadata.
type SalePage struct {
	Sales       []Sale `json:"sales"`
	CurrentPage int    `json:"current_page"`
	Pages       int    `json:"pages"`
	Total       int    `json:"total"`
}

// ProductInput carries the writable product fields for create and update calls.
type ProductInput struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// SaleReceipt is the summary the catalog returns after recording a sale.
type SaleReceipt struct {
	Message        string `json:"message"`
	Sale           Sale   `json:"sale"`
	RemainingStock int    `json:"remaining_stock"`
}

// Amount is a monetary value. The catalog serializes decimals inconsistently:
// listings carry JSON numbers while sale receipts quote them as strings, so
// both forms are accepted.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = 0
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", data, err)
	}
	*a = Amount(v)
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(a), 'f', -1, 64)), nil
}

// SaleTime is a sale timestamp. The catalog emits ISO 8601 in sale receipts and
// a space-separated layout in listings.
type SaleTime struct {
	time.Time
}

var saleTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func (t *SaleTime) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(data, `"`))
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	var err error
	for _, layout := range saleTimeLayouts {
		var parsed time.Time
		if parsed, err = time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("invalid sale timestamp %q: %w", s, err)
}

func (t SaleTime) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.Format(time.RFC3339))), nil
}
