// Copyright 2026 NIAEFEUP.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"bytes"
	"github.com/niaefeup/go-niservice/niservice"
	"github.com/stretchr/testify/assert"
	"net/http"
	"strings"
	"testing"
)

func TestDecodeRootData(t *testing.T) {
	body := `{"hello_url":"/ni/hello","reverse_url":"/reverse{?data}"}`
	for _, contentType := range []string{
		"application/json",
		"application/json; charset=utf-8",
		"text/json",
	} {
		var root RootData
		err := Decode(contentType, strings.NewReader(body), &root)
		if assert.NoError(t, err, contentType) {
			assert.Equal(t, RootData{
				HelloURL:   "/ni/hello",
				ReverseURL: "/reverse{?data}",
			}, root)
		}
	}
}

func TestDecodeUnsupported(t *testing.T) {
	var root RootData
	err := Decode("text/plain", strings.NewReader("hi"), &root)
	assert.Equal(t, ErrUnsupportedMediaType{Type: "text/plain"}, err)
	assert.Equal(t, http.StatusUnsupportedMediaType, StatusOf(err))

	err = Decode("", strings.NewReader("hi"), &root)
	assert.Equal(t, ErrUnsupportedMediaType{Type: "application/octet-stream"}, err)
}

func TestEncodeErrorResponse(t *testing.T) {
	resp := ErrorResponse{}
	resp.FromError(ErrBadRequest{Err: niservice.ErrMissingParameter{Name: "data"}})

	var buf bytes.Buffer
	if assert.NoError(t, Encode(&buf, resp)) {
		var out ErrorResponse
		if assert.NoError(t, Decode(JSONMediaType, &buf, &out)) {
			assert.Equal(t, resp, out)
		}
	}
}
