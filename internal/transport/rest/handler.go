// Package rest provides the HTTP handlers driving the storefront page.
package rest

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/ventas/storefront/internal/catalog"
	"github.com/ventas/storefront/internal/ui"
	"github.com/ventas/storefront/internal/view"
	"github.com/ventas/storefront/pkg/web"
	"golang.org/x/sync/errgroup"
)

type Handler struct {
	catalog  catalog.Service
	state    *ui.State
	renderer *view.Renderer
	validate *validator.Validate
	logger   *slog.Logger
}

// NewHandler creates the storefront handler around the catalog client and the
// process-owned view state.
func NewHandler(catalogService catalog.Service, state *ui.State, renderer *view.Renderer, logger *slog.Logger) *Handler {
	return &Handler{
		catalog:  catalogService,
		state:    state,
		renderer: renderer,
		validate: validator.New(),
		logger:   logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the HTTP routes for the storefront.
func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Get("/", h.Index)

	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.ProductsPage)
		r.Post("/", h.SaveProduct)
		r.Get("/{id}/edit", h.BeginEdit)
		r.Post("/{id}/delete", h.DeleteProduct)
	})

	r.Get("/sales", h.SalesPage)
	r.Post("/sales", h.RecordSale)

	r.Get("/healthz", h.HealthCheck)
	r.Get("/readyz", h.Ready)
}

// productSubmission is the validation gate applied before any product save
// reaches the network.
type productSubmission struct {
	Name     string  `validate:"required"`
	Price    float64 `validate:"min=0"`
	Quantity int     `validate:"min=0"`
}

// saleSubmission is the validation gate applied before a sale reaches the network.
type saleSubmission struct {
	ProductID int64 `validate:"required,gt=0"`
	Quantity  int   `validate:"required,min=1"`
}

// Index renders the full page: current product page, first sales page and the
// product selector, loaded concurrently as three independent fetches.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.renderIndex(w, r, h.state.CurrentPage(), 1)
}

// ProductsPage navigates the product list. Pagination state is updated only
// from the metadata of the freshly fetched page.
func (h *Handler) ProductsPage(w http.ResponseWriter, r *http.Request) {
	page := parsePage(r.URL.Query().Get("page"))
	h.renderIndex(w, r, page, 1)
}

// SalesPage shows a specific page of the sales history. The sales position is
// not retained; the next full render falls back to the latest sales.
func (h *Handler) SalesPage(w http.ResponseWriter, r *http.Request) {
	page := parsePage(r.URL.Query().Get("page"))
	h.renderIndex(w, r, h.state.CurrentPage(), page)
}

// SaveProduct handles the shared add/edit form. In create-mode it creates a
// product, in edit-mode it updates the product under edit. Validation failures
// and network failures leave the edit session and the entered values unchanged.
func (h *Handler) SaveProduct(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)

	form := ui.ProductForm{
		Name:     strings.TrimSpace(r.FormValue("name")),
		Price:    strings.TrimSpace(r.FormValue("price")),
		Quantity: strings.TrimSpace(r.FormValue("quantity")),
	}
	h.state.SetProductForm(form)

	price, priceErr := strconv.ParseFloat(form.Price, 64)
	quantity, quantityErr := strconv.Atoi(form.Quantity)
	if priceErr != nil || quantityErr != nil {
		mLogger.WarnContext(r.Context(), "Rejected product submission with unparseable numbers",
			"price", form.Price, "quantity", form.Quantity)
		h.state.ShowAlert(ui.RegionProduct, "Invalid product data", ui.AlertError)
		h.redirectHome(w, r)
		return
	}
	submission := productSubmission{Name: form.Name, Price: price, Quantity: quantity}
	if err := h.validate.Struct(submission); err != nil {
		mLogger.WarnContext(r.Context(), "Rejected invalid product submission", "error", err)
		h.state.ShowAlert(ui.RegionProduct, "Invalid product data", ui.AlertError)
		h.redirectHome(w, r)
		return
	}

	input := catalog.ProductInput{Name: form.Name, Price: price, Quantity: quantity}
	editingID, editing := h.state.Editing()

	var err error
	var successMessage string
	if editing {
		err = h.catalog.UpdateProduct(r.Context(), editingID, input)
		successMessage = "Product updated"
	} else {
		_, err = h.catalog.CreateProduct(r.Context(), input)
		successMessage = "Product added"
	}
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Failed to save product", "editing", editing, "error", err)
		h.state.ShowAlert(ui.RegionProduct, catalog.UserMessage(err), ui.AlertError)
		h.redirectHome(w, r)
		return
	}

	h.state.FinishEdit()
	h.state.ShowAlert(ui.RegionProduct, successMessage, ui.AlertSuccess)
	mLogger.InfoContext(r.Context(), "Product saved", "editing", editing, "name", form.Name)
	h.redirectHome(w, r)
}

// BeginEdit fetches the product and switches the form into edit-mode with its
// fields populated. A failed fetch leaves the current session untouched.
func (h *Handler) BeginEdit(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := h.parseProductID(w, r)
	if !ok {
		return
	}

	product, err := h.catalog.GetProduct(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			mLogger.WarnContext(r.Context(), "Product to edit not found", "id", id)
		} else {
			mLogger.ErrorContext(r.Context(), "Failed to fetch product for editing", "id", id, "error", err)
		}
		h.state.ShowAlert(ui.RegionProduct, catalog.UserMessage(err), ui.AlertError)
		h.redirectHome(w, r)
		return
	}

	h.state.BeginEdit(id, ui.ProductForm{
		Name:     product.Name,
		Price:    strconv.FormatFloat(float64(product.Price), 'f', -1, 64),
		Quantity: strconv.Itoa(product.Quantity),
	})
	mLogger.DebugContext(r.Context(), "Edit session started", "id", id)
	h.redirectHome(w, r)
}

// DeleteProduct removes a product after interactive confirmation. A declined
// confirmation aborts silently; on success the list is refreshed at the same
// current page and the product selector is repopulated by the next render.
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := h.parseProductID(w, r)
	if !ok {
		return
	}

	if r.FormValue("confirm") != "yes" {
		mLogger.DebugContext(r.Context(), "Product deletion not confirmed", "id", id)
		h.redirectHome(w, r)
		return
	}

	if err := h.catalog.DeleteProduct(r.Context(), id); err != nil {
		mLogger.ErrorContext(r.Context(), "Failed to delete product", "id", id, "error", err)
		h.state.ShowAlert(ui.RegionProduct, catalog.UserMessage(err), ui.AlertError)
		h.redirectHome(w, r)
		return
	}

	h.state.ShowAlert(ui.RegionProduct, "Product deleted", ui.AlertSuccess)
	mLogger.InfoContext(r.Context(), "Product deleted", "id", id)
	h.redirectHome(w, r)
}

// RecordSale validates and submits a sale. On success both lists are refreshed
// by the follow-up render; on failure the entered values are kept for retry.
func (h *Handler) RecordSale(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)

	form := ui.SaleForm{
		ProductID: strings.TrimSpace(r.FormValue("product_id")),
		Quantity:  strings.TrimSpace(r.FormValue("quantity")),
	}
	h.state.SetSaleForm(form)

	productID, idErr := strconv.ParseInt(form.ProductID, 10, 64)
	quantity, quantityErr := strconv.Atoi(form.Quantity)
	if idErr != nil || quantityErr != nil {
		mLogger.WarnContext(r.Context(), "Rejected sale submission with unparseable fields",
			"product_id", form.ProductID, "quantity", form.Quantity)
		h.state.ShowAlert(ui.RegionSale, "Invalid sale data", ui.AlertError)
		h.redirectHome(w, r)
		return
	}
	submission := saleSubmission{ProductID: productID, Quantity: quantity}
	if err := h.validate.Struct(submission); err != nil {
		mLogger.WarnContext(r.Context(), "Rejected invalid sale submission", "error", err)
		h.state.ShowAlert(ui.RegionSale, "Invalid sale data", ui.AlertError)
		h.redirectHome(w, r)
		return
	}

	receipt, err := h.catalog.SellProduct(r.Context(), productID, quantity)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Failed to record sale", "product_id", productID, "error", err)
		h.state.ShowAlert(ui.RegionSale, catalog.UserMessage(err), ui.AlertError)
		h.redirectHome(w, r)
		return
	}

	h.state.ResetSaleForm()
	h.state.ShowAlert(ui.RegionSale, "Sale recorded successfully", ui.AlertSuccess)
	mLogger.InfoContext(r.Context(), "Sale recorded",
		"product_id", productID, "quantity", quantity, "remaining_stock", receipt.RemainingStock)
	h.redirectHome(w, r)
}

// HealthCheck is a simple liveness endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// Ready checks whether the upstream catalog is reachable.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	if err := h.catalog.Health(r.Context()); err != nil {
		mLogger.ErrorContext(r.Context(), "Readiness probe failed", "error", err)
		web.RespondError(w, mLogger, http.StatusServiceUnavailable, "catalog service is not ready")
		return
	}
	w.WriteHeader(http.StatusOK)
}

// renderIndex fetches the product page, the sales page and the selector
// concurrently, then renders the full page. A failed fetch surfaces as an
// error alert in its own region and leaves the other regions intact.
func (h *Handler) renderIndex(w http.ResponseWriter, r *http.Request, productPage, salesPage int) {
	mLogger := h.loggerWithReqID(r)

	var (
		products *catalog.ProductPage
		sales    *catalog.SalePage
		selector *catalog.ProductPage
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		page, err := h.catalog.ListProducts(ctx, productPage)
		if err != nil {
			mLogger.ErrorContext(ctx, "Failed to load products", "page", productPage, "error", err)
			h.state.ShowAlert(ui.RegionProduct, "Failed to load products: "+catalog.UserMessage(err), ui.AlertError)
			return nil
		}
		products = page
		return nil
	})
	g.Go(func() error {
		page, err := h.catalog.ListSales(ctx, salesPage)
		if err != nil {
			mLogger.ErrorContext(ctx, "Failed to load sales", "page", salesPage, "error", err)
			h.state.ShowAlert(ui.RegionSale, "Failed to load sales: "+catalog.UserMessage(err), ui.AlertError)
			return nil
		}
		sales = page
		return nil
	})
	g.Go(func() error {
		page, err := h.catalog.ListProducts(ctx, 1)
		if err != nil {
			mLogger.ErrorContext(ctx, "Failed to load product selector", "error", err)
			return nil
		}
		selector = page
		return nil
	})
	_ = g.Wait()

	if products != nil {
		h.state.ApplyProductPage(products.CurrentPage, products.Pages)
	}

	snap := h.state.Snapshot()
	data := view.PageData{
		ProductAlert: snap.ProductAlert,
		SaleAlert:    snap.SaleAlert,
		IsEditing:    snap.IsEditing,
		EditingID:    snap.EditingID,
		SubmitLabel:  snap.SubmitLabel,
		ProductForm:  snap.ProductForm,
		SaleForm:     snap.SaleForm,
	}
	if products != nil {
		data.Products = view.ProductRows(products.Products)
		if len(products.Products) > 0 {
			controls := snap.Pagination.Controls()
			data.Controls = &controls
		}
	}
	if sales != nil {
		data.Sales = view.SaleRows(sales.Sales)
		data.SalesLabel = view.SalesLabel(sales)
	}
	if selector != nil {
		data.Selector = view.SelectorOptions(selector.Products, snap.SaleForm.ProductID)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.RenderIndex(w, data); err != nil {
		mLogger.ErrorContext(r.Context(), "Failed to render page", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// parseProductID extracts and validates the product ID from the request path.
func (h *Handler) parseProductID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	mLogger := h.loggerWithReqID(r)
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		mLogger.WarnContext(r.Context(), "Invalid product ID in path", "id", raw)
		h.state.ShowAlert(ui.RegionProduct, fmt.Sprintf("Invalid product ID: %s", raw), ui.AlertError)
		h.redirectHome(w, r)
		return 0, false
	}
	return id, true
}

// parsePage parses a 1-based page number, falling back to the first page.
func parsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func (h *Handler) redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// loggerWithReqID creates a logger with the request ID from the context.
func (h *Handler) loggerWithReqID(r *http.Request) *slog.Logger {
	reqID, found := web.GetRequestID(r.Context())
	if !found {
		reqID = "unknown"
	}
	return h.logger.With("request_id", reqID)
}
