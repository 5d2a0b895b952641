// Package ui holds the storefront's transient view state: alerts, product-list
// pagination and the add/edit form session. All of it is owned by this process;
// the catalog service remains the source of truth for the data itself.
package ui

import "time"

// AlertKind selects the styling of an alert.
type AlertKind string

const (
	AlertSuccess AlertKind = "success"
	AlertError   AlertKind = "error"
)

// AlertRegion identifies the page region an alert belongs to.
type AlertRegion string

const (
	RegionProduct AlertRegion = "product"
	RegionSale    AlertRegion = "sale"
)

// alertTTL is how long an alert stays visible.
const alertTTL = 2500 * time.Millisecond

// Alert is a transient status message shown in one region of the page.
type Alert struct {
	Message string
	Kind    AlertKind

	expiresAt time.Time
}

// Alerts presents at most one alert per region. Showing a new alert replaces
// the previous one and restarts the hide delay; there is no queueing.
type Alerts struct {
	now    func() time.Time
	active map[AlertRegion]Alert
}

// NewAlerts creates an alert presenter using the wall clock.
func NewAlerts() *Alerts {
	return newAlertsWithClock(time.Now)
}

func newAlertsWithClock(now func() time.Time) *Alerts {
	return &Alerts{
		now:    now,
		active: make(map[AlertRegion]Alert),
	}
}

// Show displays message in the given region. The last call wins.
func (a *Alerts) Show(region AlertRegion, message string, kind AlertKind) {
	a.active[region] = Alert{
		Message:   message,
		Kind:      kind,
		expiresAt: a.now().Add(alertTTL),
	}
}

// Active returns the region's alert if it has not expired yet.
func (a *Alerts) Active(region AlertRegion) (Alert, bool) {
	alert, ok := a.active[region]
	if !ok {
		return Alert{}, false
	}
	if !a.now().Before(alert.expiresAt) {
		delete(a.active, region)
		return Alert{}, false
	}
	return alert, true
}
