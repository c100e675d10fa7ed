// Copyright 2026 NIAEFEUP.
// This software is released under an MIT/X11 open source license.

// Package backend provides a standard way to construct a niservice
// interface based on command-line flags.
package backend

import (
	"errors"
	"fmt"
	"github.com/niaefeup/go-niservice/local"
	"github.com/niaefeup/go-niservice/niservice"
	"github.com/niaefeup/go-niservice/restclient"
	"strings"
)

// Backend describes user-visible parameters to reach a service.  This
// implements the flag.Value interface, and so a typical use is
//
//     func main() {
//         backend := backend.Backend{Implementation: "local"}
//         flag.Var(&backend, "backend", "impl[:address] of the service")
//         flag.Parse()
//         svc, err := backend.Service()
//     }
//
// Known implementations are "local", which runs the service in
// process, and "rest", whose address is the base URL of a running
// server, as in "rest:http://localhost:8080/".
type Backend struct {
	// Implementation holds the name of the implementation; for
	// instance, "local".
	Implementation string

	// Address holds some backend-specific address, such as a
	// server URL.
	Address string
}

// Service creates a new service interface.  For the "rest"
// implementation this contacts the server, and fails if it cannot be
// reached.
func (b *Backend) Service() (niservice.Service, error) {
	switch b.Implementation {
	case "local":
		return local.New(), nil
	case "rest":
		return restclient.New(b.Address)
	default:
		return nil, fmt.Errorf("unknown service backend %q", b.Implementation)
	}
}

// String renders a backend description as a string.
func (b *Backend) String() string {
	if b.Address == "" {
		return b.Implementation
	}
	return b.Implementation + ":" + b.Address
}

// Set parses a string into an existing backend description.  The
// string should be of the form "implementation:address", where
// address can be any string.  Set checks to see if the provided
// implementation is any of the known implementations, and returns an
// appropriate error if not.
//
// This is part of the flag.Value interface.  Note that this does not
// attempt to validate the address or actually make a connection.
func (b *Backend) Set(param string) error {
	parts := strings.SplitN(param, ":", 2)
	impl, address := parts[0], ""
	if len(parts) == 2 {
		address = parts[1]
	}
	switch impl {
	case "":
		return errors.New("must specify a backend type")
	case "local":
	case "rest":
		if address == "" {
			return errors.New("rest backend needs a server URL")
		}
	default:
		return fmt.Errorf("unknown service backend %q", impl)
	}
	b.Implementation = impl
	b.Address = address
	return nil
}
