package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Alerts_ShowAndExpiry(t *testing.T) {
	// given: a controllable clock
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	alerts := newAlertsWithClock(func() time.Time { return now })

	// when
	alerts.Show(RegionProduct, "Product added", AlertSuccess)

	// then: visible immediately and just before the deadline
	alert, ok := alerts.Active(RegionProduct)
	require.True(t, ok)
	assert.Equal(t, "Product added", alert.Message)
	assert.Equal(t, AlertSuccess, alert.Kind)

	now = now.Add(2400 * time.Millisecond)
	_, ok = alerts.Active(RegionProduct)
	assert.True(t, ok, "alert should still be visible before 2.5s")

	// then: hidden once the delay elapses
	now = now.Add(100 * time.Millisecond)
	_, ok = alerts.Active(RegionProduct)
	assert.False(t, ok, "alert should be hidden after 2.5s")
}

func Test_Alerts_LastCallWins(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	alerts := newAlertsWithClock(func() time.Time { return now })

	alerts.Show(RegionSale, "first", AlertSuccess)
	now = now.Add(2 * time.Second)
	alerts.Show(RegionSale, "second", AlertError)

	// the replacement resets the delay: 2.4s after the second call the first
	// alert would long be expired, the second is still up
	now = now.Add(2400 * time.Millisecond)
	alert, ok := alerts.Active(RegionSale)
	require.True(t, ok)
	assert.Equal(t, "second", alert.Message)
	assert.Equal(t, AlertError, alert.Kind)
}

func Test_Alerts_RegionsAreIndependent(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	alerts := newAlertsWithClock(func() time.Time { return now })

	alerts.Show(RegionProduct, "saved", AlertSuccess)

	_, ok := alerts.Active(RegionSale)
	assert.False(t, ok, "sale region should be empty")
	_, ok = alerts.Active(RegionProduct)
	assert.True(t, ok)
}
