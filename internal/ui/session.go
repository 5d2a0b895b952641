package ui

// EditSession tracks whether the shared add/edit form is creating a new product
// or editing an existing one. At most one product is edited at a time; starting
// an edit or a successful submit sets or clears the session exclusively.
type EditSession struct {
	editingID int64
}

// Begin marks the given product as being edited, replacing any previous session.
func (s *EditSession) Begin(id int64) {
	s.editingID = id
}

// Clear returns the session to create-mode.
func (s *EditSession) Clear() {
	s.editingID = 0
}

// Editing reports the product under edit, if any.
func (s *EditSession) Editing() (int64, bool) {
	return s.editingID, s.editingID != 0
}

// SubmitLabel is the caption of the form's submit control in the current mode.
func (s *EditSession) SubmitLabel() string {
	if _, ok := s.Editing(); ok {
		return "Update product"
	}
	return "Add product"
}
