// Copyright 2026 NIAEFEUP.
// This software is released under an MIT/X11 open source license.

// Package niservice defines the abstract API of the NIAEFEUP demo
// service: a fixed greeting and a string reversal.
//
// Applications will usually get a Service from a specific
// implementation, such as the in-process one in the "local" package or
// the HTTP client in the "restclient" package.  The "backend" package
// can construct either from a command-line flag.
package niservice

// Greeting is the exact body returned by the hello endpoint.
const Greeting = "Hello from NIAEFEUP :)"

// Service is the principal interface to the demo service.
// Implementations must be safe to call from multiple goroutines.
type Service interface {
	// Hello returns the fixed greeting string.
	Hello() (string, error)

	// Reverse returns data with its characters in reverse order.
	// A nil data means the parameter was not supplied at all, and
	// the implementation returns ErrMissingParameter.  A pointer to
	// an empty string is valid input and reverses to an empty
	// string.
	Reverse(data *string) (string, error)
}
