// Package view renders the storefront page from embedded HTML templates.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/ventas/storefront/internal/catalog"
	"github.com/ventas/storefront/internal/ui"
)

//go:embed templates/*.html
var templates embed.FS

// ProductRow is one row of the product table.
type ProductRow struct {
	ID       int64
	Name     string
	Price    string
	Quantity int
}

// SaleRow is one row of the sales table.
type SaleRow struct {
	ID          int64
	ProductName string
	Quantity    int
	Total       string
	SaleDate    string
}

// SelectorOption is one entry of the sale form's product selector.
type SelectorOption struct {
	ID       int64
	Name     string
	Selected bool
}

// PageData is everything the index template needs for one render.
type PageData struct {
	ProductAlert *ui.Alert
	SaleAlert    *ui.Alert

	Products []ProductRow
	Controls *ui.PageControls

	IsEditing   bool
	EditingID   int64
	SubmitLabel string
	ProductForm ui.ProductForm

	Selector []SelectorOption
	SaleForm ui.SaleForm

	Sales      []SaleRow
	SalesLabel string
}

// Renderer renders pages from the embedded templates.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templates, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// RenderIndex writes the storefront page.
func (r *Renderer) RenderIndex(w io.Writer, data PageData) error {
	if err := r.tmpl.ExecuteTemplate(w, "index.html", data); err != nil {
		return fmt.Errorf("failed to render index: %w", err)
	}
	return nil
}

// ProductRows converts fetched products into table rows.
func ProductRows(products []catalog.Product) []ProductRow {
	rows := make([]ProductRow, len(products))
	for i, p := range products {
		rows[i] = ProductRow{
			ID:       p.ID,
			Name:     p.Name,
			Price:    FormatPrice(float64(p.Price)),
			Quantity: p.Quantity,
		}
	}
	return rows
}

// SaleRows converts fetched sales into table rows.
func SaleRows(sales []catalog.Sale) []SaleRow {
	rows := make([]SaleRow, len(sales))
	for i, s := range sales {
		rows[i] = SaleRow{
			ID:          s.ID,
			ProductName: s.ProductName,
			Quantity:    s.Quantity,
			Total:       FormatPrice(float64(s.Total)),
			SaleDate:    FormatTimestamp(s.SaleDate.Time),
		}
	}
	return rows
}

// SelectorOptions converts fetched products into selector entries, marking the
// previously selected one so a failed sale keeps its choice.
func SelectorOptions(products []catalog.Product, selectedID string) []SelectorOption {
	options := make([]SelectorOption, len(products))
	for i, p := range products {
		options[i] = SelectorOption{
			ID:       p.ID,
			Name:     p.Name,
			Selected: selectedID == fmt.Sprintf("%d", p.ID),
		}
	}
	return options
}

// SalesLabel summarizes sales pagination metadata for display.
func SalesLabel(page *catalog.SalePage) string {
	if page == nil || page.Total == 0 {
		return ""
	}
	return fmt.Sprintf("Page %d of %d (%d sales total)", page.CurrentPage, page.Pages, page.Total)
}
