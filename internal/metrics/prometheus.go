package metrics

import (
	"net/http"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder implements Recorder with Prometheus collectors.
type PrometheusRecorder struct {
	reg            *prom.Registry
	navigations    *prom.CounterVec
	pageViews      *prom.CounterVec
	fallbacks      prom.Counter
	activeSessions prom.Gauge
	sweptSessions  prom.Counter
}

// NewPrometheusRecorder registers the navigation collectors on reg, or on a
// fresh registry when reg is nil.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	p := &PrometheusRecorder{
		reg: reg,
		navigations: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "fpdocs",
			Name:      "navigations_total",
			Help:      "In-app navigations by target locale",
		}, []string{"locale"}),
		pageViews: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "fpdocs",
			Name:      "page_views_total",
			Help:      "Full page loads by locale",
		}, []string{"locale"}),
		fallbacks: prom.NewCounter(prom.CounterOpts{
			Namespace: "fpdocs",
			Name:      "route_fallbacks_total",
			Help:      "Routes that resolved to the home page because they are not registered",
		}),
		activeSessions: prom.NewGauge(prom.GaugeOpts{
			Namespace: "fpdocs",
			Name:      "active_sessions",
			Help:      "Open navigation sessions",
		}),
		sweptSessions: prom.NewCounter(prom.CounterOpts{
			Namespace: "fpdocs",
			Name:      "sessions_swept_total",
			Help:      "Sessions dropped after idling past the TTL",
		}),
	}
	reg.MustRegister(p.navigations, p.pageViews, p.fallbacks, p.activeSessions, p.sweptSessions)
	return p
}

// Handler serves the registry in the Prometheus exposition format.
func (p *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(p.reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

func (p *PrometheusRecorder) IncNavigation(locale string) {
	p.navigations.WithLabelValues(locale).Inc()
}

func (p *PrometheusRecorder) IncPageView(locale string) {
	p.pageViews.WithLabelValues(locale).Inc()
}

func (p *PrometheusRecorder) IncFallback() { p.fallbacks.Inc() }

func (p *PrometheusRecorder) SetActiveSessions(n int) { p.activeSessions.Set(float64(n)) }

func (p *PrometheusRecorder) IncSessionsSwept(n int) { p.sweptSessions.Add(float64(n)) }
