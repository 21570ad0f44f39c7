package metrics

import (
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// AppMetrics holds the navigation panel's metric instruments.
type AppMetrics struct {
	NavMountsTotal        metric.Int64Counter
	NavUserMenuToggles    metric.Int64Counter
	NavCondenseToggles    metric.Int64Counter
	NavLogoutsTotal       metric.Int64Counter
	NavRenderDuration     metric.Float64Histogram
	PreferenceErrorsTotal metric.Int64Counter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics creates the instruments once, from the global MeterProvider.
// Instruments that fail to register fall back to no-ops so a broken exporter
// never takes the panel down.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("cms-admin")
		m := &AppMetrics{}

		m.NavMountsTotal = counter(meter, "nav_mounts_total", "Navigation panels mounted", "{mount}")
		m.NavUserMenuToggles = counter(meter, "nav_user_menu_toggles_total", "User menu open/close transitions", "{toggle}")
		m.NavCondenseToggles = counter(meter, "nav_condense_toggles_total", "Condensed flag flips", "{toggle}")
		m.NavLogoutsTotal = counter(meter, "nav_logouts_total", "Logouts from the user menu", "{logout}")
		m.PreferenceErrorsTotal = counter(meter, "nav_preference_errors_total", "Failed preference reads and writes", "{error}")

		h, err := meter.Float64Histogram(
			"nav_render_duration_seconds",
			metric.WithDescription("Duration of navigation panel renders in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			otel.Handle(err)
			h = noop.Float64Histogram{}
		}
		m.NavRenderDuration = h

		appMetrics = m
	})
}

func counter(meter metric.Meter, name, description, unit string) metric.Int64Counter {
	c, err := meter.Int64Counter(name, metric.WithDescription(description), metric.WithUnit(unit))
	if err != nil {
		otel.Handle(err)
		return noop.Int64Counter{}
	}
	return c
}

// Get returns the instruments, initialising them on first use.
func Get() *AppMetrics {
	InitAppMetrics()
	return appMetrics
}
