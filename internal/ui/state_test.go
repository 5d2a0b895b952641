package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_EditSession_Transitions(t *testing.T) {
	var session EditSession

	// starts in create-mode
	_, editing := session.Editing()
	assert.False(t, editing)
	assert.Equal(t, "Add product", session.SubmitLabel())

	// beginning an edit switches modes and relabels the submit control
	session.Begin(7)
	id, editing := session.Editing()
	require.True(t, editing)
	assert.Equal(t, int64(7), id)
	assert.Equal(t, "Update product", session.SubmitLabel())

	// starting another edit replaces the previous one, never adds a second
	session.Begin(9)
	id, _ = session.Editing()
	assert.Equal(t, int64(9), id)

	// clearing returns to create-mode
	session.Clear()
	_, editing = session.Editing()
	assert.False(t, editing)
	assert.Equal(t, "Add product", session.SubmitLabel())
}

func Test_State_FinishEditResetsForm(t *testing.T) {
	state := NewState()
	state.BeginEdit(4, ProductForm{Name: "Widget", Price: "9.99", Quantity: "5"})

	snap := state.Snapshot()
	require.True(t, snap.IsEditing)
	assert.Equal(t, int64(4), snap.EditingID)
	assert.Equal(t, "Update product", snap.SubmitLabel)
	assert.Equal(t, "Widget", snap.ProductForm.Name)

	state.FinishEdit()

	snap = state.Snapshot()
	assert.False(t, snap.IsEditing)
	assert.Equal(t, "Add product", snap.SubmitLabel)
	assert.Equal(t, ProductForm{}, snap.ProductForm)
}

func Test_State_SaleFormRetention(t *testing.T) {
	state := NewState()
	state.SetSaleForm(SaleForm{ProductID: "3", Quantity: "2"})

	// a failed sale keeps the entered values for retry
	snap := state.Snapshot()
	assert.Equal(t, "3", snap.SaleForm.ProductID)
	assert.Equal(t, "2", snap.SaleForm.Quantity)

	state.ResetSaleForm()
	snap = state.Snapshot()
	assert.Equal(t, SaleForm{}, snap.SaleForm)
}

func Test_State_PaginationOnlyMovesWithFetchedPages(t *testing.T) {
	state := NewState()
	assert.Equal(t, 1, state.CurrentPage())

	state.ApplyProductPage(3, 8)
	assert.Equal(t, 3, state.CurrentPage())

	snap := state.Snapshot()
	assert.Equal(t, 3, snap.Pagination.CurrentPage)
	assert.Equal(t, 8, snap.Pagination.TotalPages)
}
