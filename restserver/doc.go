// Copyright 2026 NIAEFEUP.
// This software is released under an MIT/X11 open source license.

// Package restserver publishes a niservice Service as an HTTP service.
// The restclient package is a matching client.
//
// The wire-level data structures are defined in the restdata package.
//
// HTTP Considerations
//
// Every resource supports GET and HEAD; other methods return 405
// Method Not Allowed.  Successful responses from the service
// endpoints are text/plain.  The root document and all errors are
// application/json.
//
// This interface does not support HTTP caching or authentication
// headers.
//
// URL Scheme
//
// The following URLs are defined:
//
//     /
//     /ni/hello
//     /reverse?data={data}
//
// NewHandler additionally serves Prometheus metrics, by default at
// /metrics, and wraps the router in middleware that assigns request
// ids, logs requests and counts them.
package restserver
