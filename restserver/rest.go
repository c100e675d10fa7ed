// Copyright 2026 NIAEFEUP.
// This software is released under an MIT/X11 open source license.

package restserver

// This file contains a small REST skeleton framework.
//
// Handler functions return either a string, which is sent as
// text/plain, or some other object, which is sent as JSON.  Errors are
// always sent as a JSON restdata.ErrorResponse.

import (
	"fmt"
	"github.com/niaefeup/go-niservice/restdata"
	"io"
	"net/http"
)

// errMethodNotAllowed is used within the resourceHandler implementation
// to flag an error if a particular HTTP method is not allowed.  This
// corresponds exactly to the 405 Method Not Allowed HTTP status code.
type errMethodNotAllowed struct {
	Method string
}

func (e errMethodNotAllowed) Error() string {
	return fmt.Sprintf("Method %v not allowed", e.Method)
}

func (e errMethodNotAllowed) HTTPStatus() int {
	return http.StatusMethodNotAllowed
}

type resourceHandler struct {
	// Context reads an HTTP request and produces a context object.
	Context func(req *http.Request) (*context, error)

	// Get, if non-nil, returns a representation of the object.
	Get func(*context) (interface{}, error)
}

func (h *resourceHandler) ServeHTTP(resp http.ResponseWriter, req *http.Request) {
	var (
		ctx *context
		out interface{}
		err error
	)

	// Recover from panics by sending an HTTP error.
	defer func() {
		if recovered := recover(); recovered != nil {
			response := restdata.ErrorResponse{}
			response.FromPanic(recovered)
			writeJSON(resp, req, http.StatusInternalServerError, response)
		}
	}()

	ctx, err = h.Context(req)

	if err == nil {
		err = errMethodNotAllowed{Method: req.Method}
		switch req.Method {
		case "GET", "HEAD":
			if h.Get != nil {
				out, err = h.Get(ctx)
			}
		}
	}

	if err != nil {
		response := restdata.ErrorResponse{}
		response.FromError(err)
		writeJSON(resp, req, restdata.StatusOf(err), response)
		return
	}

	switch body := out.(type) {
	case string:
		writeText(resp, req, http.StatusOK, body)
	default:
		writeJSON(resp, req, http.StatusOK, body)
	}
}

// writeText sends a plain-text response.  Errors writing the body are
// dropped, since the status line has already gone out.
func writeText(resp http.ResponseWriter, req *http.Request, status int, body string) {
	resp.Header().Set("Content-Type", restdata.TextMediaType)
	resp.WriteHeader(status)
	if req.Method != "HEAD" {
		_, _ = io.WriteString(resp, body)
	}
}

// writeJSON sends a JSON response, with the same caveats as writeText.
func writeJSON(resp http.ResponseWriter, req *http.Request, status int, body interface{}) {
	resp.Header().Set("Content-Type", restdata.JSONMediaType)
	resp.WriteHeader(status)
	if req.Method != "HEAD" {
		_ = restdata.Encode(resp, body)
	}
}
