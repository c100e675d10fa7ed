// Copyright 2026 NIAEFEUP.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"github.com/benbjohnson/clock"
	"github.com/niaefeup/go-niservice/niservice"
	"github.com/niaefeup/go-niservice/restdata"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
	"github.com/urfave/negroni"
	"net/http"
)

// Options configures the middleware NewHandler wraps around the
// router.  The zero value gives request ids only.
type Options struct {
	// Logger, if non-nil, receives one debug-level entry per
	// request.
	Logger *logrus.Logger

	// Registerer, if non-nil, has the request metrics registered
	// with it.
	Registerer prometheus.Registerer

	// Gatherer, if non-nil and MetricsPath is not empty, is
	// served in the Prometheus text format at MetricsPath.
	Gatherer prometheus.Gatherer

	// MetricsPath is the URL path of the metrics endpoint.
	MetricsPath string

	// Clock is the time source for request durations.  If nil,
	// uses the system clock.
	Clock clock.Clock
}

// NewHandler creates a complete HTTP handler for svc: the router from
// NewRouter, plus the metrics endpoint, wrapped in request id, logging
// and metrics middleware.  This fails only if the metrics cannot be
// registered.
func NewHandler(svc niservice.Service, opts Options) (http.Handler, error) {
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}

	router := NewRouter(svc)
	if opts.Gatherer != nil && opts.MetricsPath != "" {
		router.Handle(opts.MetricsPath, promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})).Name("metrics")
	}

	n := negroni.New()
	n.UseFunc(requestID)
	if opts.Logger != nil {
		n.Use(&requestLogger{Logger: opts.Logger, Clock: opts.Clock})
	}
	if opts.Registerer != nil {
		m := newMetrics(router, opts.Clock)
		if err := m.Register(opts.Registerer); err != nil {
			return nil, err
		}
		n.Use(m)
	}
	n.UseHandler(router)
	return n, nil
}

// requestID makes sure every request has an id, and echoes it back to
// the client.
func requestID(rw http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
	id := r.Header.Get(restdata.RequestIDHeader)
	if id == "" {
		id = uuid.NewV4().String()
		r.Header.Set(restdata.RequestIDHeader, id)
	}
	rw.Header().Set(restdata.RequestIDHeader, id)
	next(rw, r)
}

// requestLogger logs each request after it completes.
type requestLogger struct {
	Logger *logrus.Logger
	Clock  clock.Clock
}

func (l *requestLogger) ServeHTTP(rw http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
	start := l.Clock.Now()
	next(rw, r)
	res := rw.(negroni.ResponseWriter)
	l.Logger.WithFields(logrus.Fields{
		"method":     r.Method,
		"path":       r.URL.Path,
		"status":     res.Status(),
		"size":       res.Size(),
		"duration":   l.Clock.Now().Sub(start),
		"remote":     r.RemoteAddr,
		"request_id": r.Header.Get(restdata.RequestIDHeader),
	}).Debug("Request")
}
