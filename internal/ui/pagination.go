package ui

import "fmt"

// Pagination tracks the product list's current position. Both fields start at 1
// and are only ever updated from the metadata of a freshly fetched page, never
// from navigation clicks directly.
type Pagination struct {
	CurrentPage int
	TotalPages  int
}

// NewPagination returns pagination state positioned on the first page.
func NewPagination() Pagination {
	return Pagination{CurrentPage: 1, TotalPages: 1}
}

// SetFromPage updates the state from fetched page metadata. Out-of-range
// values from the upstream are clamped to the valid minimum.
func (p *Pagination) SetFromPage(currentPage, totalPages int) {
	if currentPage < 1 {
		currentPage = 1
	}
	if totalPages < 1 {
		totalPages = 1
	}
	p.CurrentPage = currentPage
	p.TotalPages = totalPages
}

// PageControls is the render-ready description of the pagination bar. A redraw
// fully replaces whatever was rendered before.
type PageControls struct {
	ShowPrev bool
	PrevPage int
	Label    string
	ShowNext bool
	NextPage int
}

// Controls describes the prev/next buttons and the position label. Previous is
// present only when there is an earlier page, Next only when there is a later one.
func (p Pagination) Controls() PageControls {
	return PageControls{
		ShowPrev: p.CurrentPage > 1,
		PrevPage: p.CurrentPage - 1,
		Label:    fmt.Sprintf("Page %d of %d", p.CurrentPage, p.TotalPages),
		ShowNext: p.CurrentPage < p.TotalPages,
		NextPage: p.CurrentPage + 1,
	}
}
