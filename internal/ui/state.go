package ui

import "sync"

// ProductForm is the raw text of the add/edit form fields, kept for redisplay.
// Values stay as entered so a failed submit never loses the user's input.
type ProductForm struct {
	Name     string
	Price    string
	Quantity string
}

// SaleForm is the raw text of the sale form fields.
type SaleForm struct {
	ProductID string
	Quantity  string
}

// State aggregates all view state behind one mutex. The logical flow is a
// single user clicking through one page, but Go serves handlers concurrently,
// so every read and write goes through here.
type State struct {
	mu          sync.Mutex
	alerts      *Alerts
	pagination  Pagination
	session     EditSession
	productForm ProductForm
	saleForm    SaleForm
}

// NewState creates view state positioned at page 1 in create-mode.
func NewState() *State {
	return &State{
		alerts:     NewAlerts(),
		pagination: NewPagination(),
	}
}

// ShowAlert displays message in the given region.
func (s *State) ShowAlert(region AlertRegion, message string, kind AlertKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alerts.Show(region, message, kind)
}

// CurrentPage is the product list page to load on the next refresh.
func (s *State) CurrentPage() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pagination.CurrentPage
}

// ApplyProductPage updates pagination from the metadata of a fetched page.
func (s *State) ApplyProductPage(currentPage, totalPages int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pagination.SetFromPage(currentPage, totalPages)
}

// BeginEdit switches the form into edit-mode for the given product and
// populates the form fields from the fetched record.
func (s *State) BeginEdit(id int64, form ProductForm) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Begin(id)
	s.productForm = form
}

// Editing reports the product under edit, if any.
func (s *State) Editing() (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Editing()
}

// FinishEdit returns the form to create-mode and clears its fields. Called
// only after a successful submit; failures leave the state untouched.
func (s *State) FinishEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Clear()
	s.productForm = ProductForm{}
}

// SetProductForm retains the submitted field values for redisplay.
func (s *State) SetProductForm(form ProductForm) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.productForm = form
}

// SetSaleForm retains the submitted sale field values for redisplay.
func (s *State) SetSaleForm(form SaleForm) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saleForm = form
}

// ResetSaleForm clears the sale form after a successful sale.
func (s *State) ResetSaleForm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saleForm = SaleForm{}
}

// Snapshot is a consistent copy of the view state for one render.
type Snapshot struct {
	ProductAlert *Alert
	SaleAlert    *Alert
	Pagination   Pagination
	EditingID    int64
	IsEditing    bool
	SubmitLabel  string
	ProductForm  ProductForm
	SaleForm     SaleForm
}

// Snapshot captures everything a render needs under one lock acquisition.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Pagination:  s.pagination,
		SubmitLabel: s.session.SubmitLabel(),
		ProductForm: s.productForm,
		SaleForm:    s.saleForm,
	}
	snap.EditingID, snap.IsEditing = s.session.Editing()
	if alert, ok := s.alerts.Active(RegionProduct); ok {
		snap.ProductAlert = &alert
	}
	if alert, ok := s.alerts.Active(RegionSale); ok {
		snap.SaleAlert = &alert
	}
	return snap
}
