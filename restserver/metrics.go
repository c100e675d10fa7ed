// Copyright 2026 NIAEFEUP.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"github.com/benbjohnson/clock"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/negroni"
	"net/http"
	"strconv"
)

// metrics counts and times requests by route name.
type metrics struct {
	router   *mux.Router
	clock    clock.Clock
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newMetrics(router *mux.Router, clk clock.Clock) *metrics {
	return &metrics{
		router: router,
		clock:  clk,
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "niaefeup",
				Subsystem: "niservice",
				Name:      "http_requests_total",
				Help:      "HTTP requests by route, method and status code",
			},
			[]string{"route", "method", "code"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "niaefeup",
				Subsystem: "niservice",
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency by route",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route"},
		),
	}
}

// Register adds the collectors to reg.
func (m *metrics) Register(reg prometheus.Registerer) error {
	if err := reg.Register(m.requests); err != nil {
		return err
	}
	return reg.Register(m.duration)
}

func (m *metrics) ServeHTTP(rw http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
	route := routeName(m.router, r)
	start := m.clock.Now()
	next(rw, r)
	res := rw.(negroni.ResponseWriter)
	m.requests.WithLabelValues(route, r.Method, strconv.Itoa(res.Status())).Inc()
	m.duration.WithLabelValues(route).Observe(m.clock.Now().Sub(start).Seconds())
}
