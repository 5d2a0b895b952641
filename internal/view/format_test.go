package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_FormatPrice(t *testing.T) {
	testCases := []struct {
		name     string
		value    float64
		expected string
	}{
		{name: "two decimals", value: 9.99, expected: "$9.99"},
		{name: "whole amount keeps cents", value: 12, expected: "$12.00"},
		{name: "zero", value: 0, expected: "$0.00"},
		{name: "thousands separator", value: 1250.5, expected: "$1,250.50"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatPrice(tc.value))
		})
	}
}

func Test_FormatTimestamp(t *testing.T) {
	ts := time.Date(2025, 6, 1, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "Jun 1, 2025 3:04:05 PM", FormatTimestamp(ts))

	assert.Equal(t, "", FormatTimestamp(time.Time{}), "zero timestamps render as empty")
}
