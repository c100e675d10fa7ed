// Copyright 2026 NIAEFEUP.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"errors"
	"github.com/niaefeup/go-niservice/niservice"
	"github.com/stretchr/testify/assert"
	"net/http"
	"testing"
)

func TestMissingParameterResponse(t *testing.T) {
	err := ErrBadRequest{Err: niservice.ErrMissingParameter{Name: "data"}}
	assert.Equal(t, http.StatusBadRequest, StatusOf(err))

	resp := ErrorResponse{}
	resp.FromError(err)
	assert.Equal(t, ErrorResponse{
		Error:   "ErrMissingParameter",
		Message: `missing required query parameter "data"`,
		Value:   "data",
	}, resp)
	assert.Equal(t, niservice.ErrMissingParameter{Name: "data"}, resp.ToError())
}

func TestPlainErrorResponse(t *testing.T) {
	err := errors.New("something broke")
	assert.Equal(t, http.StatusInternalServerError, StatusOf(err))

	resp := ErrorResponse{}
	resp.FromError(err)
	assert.Equal(t, "error", resp.Error)
	assert.Equal(t, "something broke", resp.Message)
	assert.Equal(t, errors.New("something broke"), resp.ToError())
}

func TestPanicResponse(t *testing.T) {
	resp := ErrorResponse{}
	resp.FromPanic("oops")
	assert.Equal(t, "panic", resp.Error)
	assert.Equal(t, "oops", resp.Message)
	assert.Contains(t, resp.Stack, "TestPanicResponse")

	resp = ErrorResponse{}
	resp.FromPanic(errors.New("bang"))
	assert.Equal(t, "bang", resp.Message)
}
