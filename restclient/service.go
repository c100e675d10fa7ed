// Copyright 2026 NIAEFEUP.
// This software is released under an MIT/X11 open source license.

// Package restclient provides a niservice-compatible HTTP REST client
// that talks to the matching server in the "restserver" package.
//
// The daemon in github.com/niaefeup/go-niservice/cmd/niserviced runs a
// compatible REST server.  Call New() with the base URL of that
// service; for instance,
//
//     svc, err := restclient.New("http://localhost:8080/")
package restclient

import (
	"errors"
	"github.com/niaefeup/go-niservice/niservice"
	"github.com/niaefeup/go-niservice/restdata"
	"net/http"
	"net/url"
)

// New creates a new Service that speaks to an external REST server
// using the default HTTP client.
func New(baseURL string) (niservice.Service, error) {
	return NewWithClient(baseURL, http.DefaultClient)
}

// NewWithClient creates a new Service that speaks to an external REST
// server using a specific HTTP client.  This retrieves the server's
// root document, and fails if it cannot.
func NewWithClient(baseURL string, client *http.Client) (niservice.Service, error) {
	if baseURL == "" {
		return nil, errors.New("restclient: empty base URL")
	}
	url, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	svc := &restService{
		resource: resource{URL: url, Client: client},
	}
	if err = svc.Refresh(); err != nil {
		return nil, err
	}
	return svc, nil
}

type restService struct {
	resource
	Representation restdata.RootData
}

// Refresh reloads the root document.
func (s *restService) Refresh() error {
	s.Representation = restdata.RootData{}
	return s.Get(&s.Representation)
}

func (s *restService) Hello() (string, error) {
	return s.GetText(s.Representation.HelloURL, map[string]interface{}{})
}

func (s *restService) Reverse(data *string) (string, error) {
	vars := map[string]interface{}{}
	if data != nil {
		vars[niservice.ReverseParamName] = *data
	}
	return s.GetText(s.Representation.ReverseURL, vars)
}
