// Copyright 2026 NIAEFEUP.
// This software is released under an MIT/X11 open source license.

// Package restdata defines common data structures shared between the
// restserver and restclient packages.
//
// API Usage
//
// The two service endpoints have fixed, well-known paths:
//
//     GET /ni/hello
//     GET /reverse?data=...
//
// Both return text/plain bodies on success.  Clients that would
// rather not hard-code these may HTTP GET the root document at /,
// which returns a JSON serialization of RootData.  Its URL fields are
// RFC 6570 URI templates, for instance
//
//     {
//         "hello_url": "/ni/hello",
//         "reverse_url": "/reverse{?data}"
//     }
//
// Errors
//
// Failing requests return an encoding of ErrorResponse as
// application/json, with a failing HTTP status code.  A missing
// required query parameter is 400 Bad Request, with an error code of
// "ErrMissingParameter" and the parameter name in the value field:
//
//     {
//         "error": "ErrMissingParameter",
//         "message": "missing required query parameter \"data\"",
//         "value": "data"
//     }
//
// If Go server code panics, this is captured and returned as 500
// Internal Server Error with error code "panic".
package restdata

// JSONMediaType is the MIME type of the root document and of error
// responses.
const JSONMediaType = "application/json"

// TextMediaType is the MIME type of successful endpoint responses.
const TextMediaType = "text/plain; charset=utf-8"

// RequestIDHeader carries a per-request identifier.  The server
// generates one if the client does not send it, and always echoes it
// in the response.
const RequestIDHeader = "X-Request-Id"

// RootData is the root document of the service.
type RootData struct {
	// HelloURL is the URL of the greeting endpoint.
	HelloURL string `json:"hello_url"`

	// ReverseURL is a URI template for the reversal endpoint,
	// with a single optional query variable "data".
	ReverseURL string `json:"reverse_url"`
}

// ErrorResponse can be a response to any method, generally accompanied
// by a failing HTTP status code.
type ErrorResponse struct {
	// Error is a short description of the failure.  This may be
	// the name of a niservice error type, the string "panic", or
	// the string "error" for some other kind of error.
	Error string `json:"error"`

	// Message is a human-readable description of the failure.
	Message string `json:"message"`

	// Value is an extra parameter to the error if applicable.
	Value string `json:"value,omitempty"`

	// Stack holds a formatted backtrace, if the method failed
	// due to a panic.
	Stack string `json:"stack,omitempty"`
}
