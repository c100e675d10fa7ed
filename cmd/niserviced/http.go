// Copyright 2026 NIAEFEUP.
// This software is released under an MIT/X11 open source license.

package main

import (
	"context"
	"github.com/niaefeup/go-niservice/cache"
	"github.com/niaefeup/go-niservice/local"
	"github.com/niaefeup/go-niservice/restserver"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// HTTP serves the service over HTTP.
type HTTP struct {
	server          *http.Server
	shutdownTimeout time.Duration
}

// NewHTTP builds the HTTP server described by config.  reqLogger, if
// non-nil, receives one entry per request.
func NewHTTP(config Config, reqLogger *logrus.Logger) (*HTTP, error) {
	return newHTTP(config, reqLogger, prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
}

func newHTTP(config Config, reqLogger *logrus.Logger, reg prometheus.Registerer, gather prometheus.Gatherer) (*HTTP, error) {
	svc := cache.NewWithSize(local.New(), config.CacheSize)
	handler, err := restserver.NewHandler(svc, restserver.Options{
		Logger:      reqLogger,
		Registerer:  reg,
		Gatherer:    gather,
		MetricsPath: config.MetricsPath,
	})
	if err != nil {
		return nil, err
	}
	return &HTTP{
		server: &http.Server{
			Addr:    config.HTTP,
			Handler: handler,
		},
		shutdownTimeout: config.ShutdownTimeout,
	}, nil
}

// Serve listens on the configured address and serves connections until
// stop is closed, then shuts down gracefully.
func (h *HTTP) Serve(stop <-chan struct{}) error {
	listener, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return err
	}
	return h.serveListener(listener, stop)
}

func (h *HTTP) serveListener(listener net.Listener, stop <-chan struct{}) error {
	logrus.WithFields(logrus.Fields{
		"addr": listener.Addr().String(),
	}).Info("Serving HTTP")

	errs := make(chan error, 1)
	go func() {
		errs <- h.server.Serve(listener)
	}()

	select {
	case err := <-errs:
		return err
	case <-stop:
	}

	logrus.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
	defer cancel()
	if err := h.server.Shutdown(ctx); err != nil {
		return err
	}
	if err := <-errs; err != http.ErrServerClosed {
		return err
	}
	return nil
}

// interrupted returns a channel that is closed on SIGINT or SIGTERM.
func interrupted() <-chan struct{} {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	stop := make(chan struct{})
	go func() {
		<-signals
		close(stop)
	}()
	return stop
}
