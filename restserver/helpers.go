// Copyright 2026 NIAEFEUP.
// This software is released under an MIT/X11 open source license.

package restserver

// This file contains various HTTP-related helpers.

import (
	"fmt"
	"github.com/gorilla/mux"
	"net/url"
)

type urlBuilder struct {
	Router *mux.Router
	Error  error
}

func buildURLs(router *mux.Router) *urlBuilder {
	return &urlBuilder{Router: router}
}

func (u *urlBuilder) Route(route string) *mux.Route {
	if u.Error != nil {
		return nil
	}
	r := u.Router.Get(route)
	if r == nil {
		u.Error = fmt.Errorf("No such route %q", route)
	}
	return r
}

func (u *urlBuilder) URL(out *string, route string) *urlBuilder {
	var r *mux.Route
	var url *url.URL
	if u.Error == nil {
		r = u.Route(route)
	}
	if u.Error == nil {
		url, u.Error = r.URL()
	}
	if u.Error == nil {
		*out = url.String()
	}
	return u
}

// QueryTemplate produces a URI template for route with a single
// optional query parameter, e.g. "/reverse{?data}".
func (u *urlBuilder) QueryTemplate(out *string, route, param string) *urlBuilder {
	var s string
	u.URL(&s, route)
	if u.Error == nil {
		*out = s + "{?" + param + "}"
	}
	return u
}
