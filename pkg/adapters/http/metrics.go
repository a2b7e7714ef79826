package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics holds the Prometheus collectors of the server and the publisher.
// A dedicated registry keeps tests and multiple servers from colliding.
type Metrics struct {
	Registry *prometheus.Registry

	Requests *prometheus.CounterVec
	Entries  *prometheus.GaugeVec
	Publish  *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "specdoc",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
		Entries: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "specdoc",
			Name:      "entries",
			Help:      "Entries in the last published artifact.",
		}, []string{"artifact"}),
		Publish: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "specdoc",
			Name:      "publish_total",
			Help:      "Artifact publications by result.",
		}, []string{"artifact", "result"}),
	}
	m.Registry.MustRegister(
		m.Requests,
		m.Entries,
		m.Publish,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Middleware counts requests by matched chi route pattern.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.Requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	})
}
