package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Pagination_Controls(t *testing.T) {
	testCases := []struct {
		name        string
		currentPage int
		totalPages  int
		expectPrev  bool
		expectNext  bool
		expectLabel string
	}{
		{
			name:        "first of one page",
			currentPage: 1,
			totalPages:  1,
			expectPrev:  false,
			expectNext:  false,
			expectLabel: "Page 1 of 1",
		},
		{
			name:        "first of many pages",
			currentPage: 1,
			totalPages:  5,
			expectPrev:  false,
			expectNext:  true,
			expectLabel: "Page 1 of 5",
		},
		{
			name:        "middle page",
			currentPage: 3,
			totalPages:  5,
			expectPrev:  true,
			expectNext:  true,
			expectLabel: "Page 3 of 5",
		},
		{
			name:        "last page",
			currentPage: 5,
			totalPages:  5,
			expectPrev:  true,
			expectNext:  false,
			expectLabel: "Page 5 of 5",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			pagination := Pagination{CurrentPage: tc.currentPage, TotalPages: tc.totalPages}

			controls := pagination.Controls()

			assert.Equal(t, tc.expectPrev, controls.ShowPrev)
			assert.Equal(t, tc.expectNext, controls.ShowNext)
			assert.Equal(t, tc.expectLabel, controls.Label)
			if tc.expectPrev {
				assert.Equal(t, tc.currentPage-1, controls.PrevPage)
			}
			if tc.expectNext {
				assert.Equal(t, tc.currentPage+1, controls.NextPage)
			}
		})
	}
}

func Test_Pagination_SetFromPage(t *testing.T) {
	pagination := NewPagination()
	assert.Equal(t, 1, pagination.CurrentPage)
	assert.Equal(t, 1, pagination.TotalPages)

	pagination.SetFromPage(2, 7)
	assert.Equal(t, 2, pagination.CurrentPage)
	assert.Equal(t, 7, pagination.TotalPages)

	// out-of-range metadata is clamped
	pagination.SetFromPage(0, -3)
	assert.Equal(t, 1, pagination.CurrentPage)
	assert.Equal(t, 1, pagination.TotalPages)
}
