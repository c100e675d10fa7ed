// Copyright 2026 NIAEFEUP.
// This software is released under an MIT/X11 open source license.

package restclient_test

import (
	"github.com/niaefeup/go-niservice/local"
	"github.com/niaefeup/go-niservice/niservice"
	"github.com/niaefeup/go-niservice/niservice/niservicetest"
	"github.com/niaefeup/go-niservice/restclient"
	"github.com/niaefeup/go-niservice/restserver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"net/http"
	"net/http/httptest"
	"testing"
)

// Suite sets up an object stack where the REST client code talks to
// the REST server code, which points at the local service.
type Suite struct {
	niservicetest.Suite
	Server *httptest.Server
}

// SetupSuite starts the HTTP server and connects a client to it.
func (s *Suite) SetupSuite() {
	s.Suite.SetupSuite()
	handler, err := restserver.NewHandler(local.New(), restserver.Options{})
	s.Require().NoError(err)
	s.Server = httptest.NewServer(handler)
	s.Service, err = restclient.New(s.Server.URL)
	s.Require().NoError(err)
}

// TearDownSuite stops the HTTP server.
func (s *Suite) TearDownSuite() {
	s.Server.Close()
}

// TestService runs the generic service tests over HTTP.
func TestService(t *testing.T) {
	suite.Run(t, &Suite{})
}

func TestEmptyURL(t *testing.T) {
	_, err := restclient.New("")
	assert.Error(t, err, "Expected error when given empty URL.")
}

func TestNoRootDocument(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	_, err := restclient.New(server.URL)
	if assert.Error(t, err) {
		httpErr, isHTTP := err.(restclient.ErrorHTTP)
		if assert.True(t, isHTTP, "error %#v", err) {
			assert.Equal(t, http.StatusNotFound, httpErr.Response.StatusCode)
			assert.Contains(t, httpErr.Body, "404 page not found")
		}
	}
}

func TestServerError(t *testing.T) {
	mux := http.NewServeMux()
	router := restserver.NewRouter(local.New())
	mux.Handle("/", router)
	mux.HandleFunc("/ni/hello", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "teapot", http.StatusTeapot)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	svc, err := restclient.NewWithClient(server.URL, server.Client())
	require.NoError(t, err)

	_, err = svc.Hello()
	if assert.Error(t, err) {
		httpErr, isHTTP := err.(restclient.ErrorHTTP)
		if assert.True(t, isHTTP, "error %#v", err) {
			assert.Equal(t, "418 I'm a teapot", httpErr.Error())
			assert.Equal(t, "teapot\n", httpErr.Body)
		}
	}

	// The reverse endpoint is still the real one
	data := "regit"
	out, err := svc.Reverse(&data)
	assert.NoError(t, err)
	assert.Equal(t, "tiger", out)

	_, err = svc.Reverse(nil)
	assert.Equal(t, niservice.ErrMissingParameter{Name: "data"}, err)
}
