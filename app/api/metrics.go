package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/adscomb/adscomb/app/database"
)

// Metrics exposes archive gauges on a dedicated registry so repeated server
// construction (as in tests) never double-registers collectors.
type Metrics struct {
	registry *prometheus.Registry
}

func NewMetrics(runRepo database.RunRepository, adRepo database.AdRepository) *Metrics {
	registry := prometheus.NewRegistry()

	registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "adscomb",
		Name:      "archived_runs",
		Help:      "Number of scrape runs stored in the archive",
	}, func() float64 {
		count, err := runRepo.GetRunCount()
		if err != nil {
			return 0
		}
		return float64(count)
	}))

	registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "adscomb",
		Name:      "archived_ads",
		Help:      "Number of canonical ad records stored in the archive",
	}, func() float64 {
		count, err := adRepo.GetAdCount()
		if err != nil {
			return 0
		}
		return float64(count)
	}))

	return &Metrics{registry: registry}
}

func (m *Metrics) HTTPHandler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
