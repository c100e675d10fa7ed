// Copyright 2026 NIAEFEUP.
// This software is released under an MIT/X11 open source license.

// Package local provides an in-process implementation of the niservice
// Service.  It holds no state and calls straight into the niservice
// package, so it is also the reference implementation the REST server
// normally publishes.
package local

import "github.com/niaefeup/go-niservice/niservice"

// New creates a new Service that runs in the current process.
func New() niservice.Service {
	return localService{}
}

type localService struct{}

func (localService) Hello() (string, error) {
	return niservice.Greeting, nil
}

func (localService) Reverse(data *string) (string, error) {
	return niservice.ReverseParam(data)
}
