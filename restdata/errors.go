// Copyright 2026 NIAEFEUP.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"errors"
	"fmt"
	"github.com/niaefeup/go-niservice/niservice"
	"net/http"
	"runtime"
)

// ErrorStatus describes errors that correspond to specific HTTP status
// codes.
type ErrorStatus interface {
	// HTTPStatus returns the HTTP status code for this error.
	HTTPStatus() int
}

// ErrUnsupportedMediaType is returned from Decode() if the provided
// Content-Type: is unrecognized.  This translates directly into the
// equivalent HTTP 415 error.
type ErrUnsupportedMediaType struct {
	Type string
}

func (e ErrUnsupportedMediaType) Error() string {
	return fmt.Sprintf("Unsupported media type %q", e.Type)
}

// HTTPStatus returns a fixed 415 Unsupported Media Type error code.
func (e ErrUnsupportedMediaType) HTTPStatus() int {
	return http.StatusUnsupportedMediaType
}

// ErrBadRequest is a wrapper error that indicates that, due to the
// embedded error, a REST service should return a 400 Bad Request
// error.
type ErrBadRequest struct {
	Err error
}

func (e ErrBadRequest) Error() string {
	return e.Err.Error()
}

// HTTPStatus returns a fixed 400 Bad Request HTTP status code.
func (e ErrBadRequest) HTTPStatus() int {
	return http.StatusBadRequest
}

// StatusOf returns the HTTP status code a server should send for err.
// Errors that do not implement ErrorStatus are 500 Internal Server
// Error.
func StatusOf(err error) int {
	if errS, hasStatus := err.(ErrorStatus); hasStatus {
		return errS.HTTPStatus()
	}
	return http.StatusInternalServerError
}

// FromError populates an ErrorResponse to fill in its fields based
// on an error value.  This remaps the well-known niservice errors to
// specific e.Error codes.
func (e *ErrorResponse) FromError(err error) {
	if e.Error == "" {
		e.Error = "error"
	}
	if e.Message == "" {
		e.Message = err.Error()
	}
	switch et := err.(type) {
	case niservice.ErrMissingParameter:
		e.Error = "ErrMissingParameter"
		e.Value = et.Name
	case ErrBadRequest:
		// Discard this wrapper and describe the embedded error
		e.FromError(et.Err)
	}
}

// ToError converts e back to a niservice error, if that is possible.
// If not, returns a plain error with e.Message text.
func (e *ErrorResponse) ToError() error {
	switch e.Error {
	case "ErrMissingParameter":
		return niservice.ErrMissingParameter{Name: e.Value}
	default:
		return errors.New(e.Message)
	}
}

// FromPanic populates an error response based on a panic.  Typical use
// is:
//
//     defer func() {
//         if obj := recover(); obj != nil {
//             resp := restdata.ErrorResponse{}
//             resp.FromPanic(obj)
//             // write resp out as makes sense
//         }
//     }()
func (e *ErrorResponse) FromPanic(obj interface{}) {
	e.Error = "panic"
	if recoveredError, isError := obj.(error); isError {
		e.Message = recoveredError.Error()
	} else {
		e.Message = fmt.Sprintf("%+v", obj)
	}
	var stack [4096]byte
	len := runtime.Stack(stack[:], false)
	e.Stack = string(stack[:len])
}
