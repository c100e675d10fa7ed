// Copyright 2026 NIAEFEUP.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"github.com/gorilla/mux"
	"github.com/niaefeup/go-niservice/niservice"
	"github.com/niaefeup/go-niservice/restdata"
	"net/http"
)

// NewRouter creates a new HTTP handler that processes all service
// requests.  All resources are under the URL path root, e.g.
// /ni/hello.  For more control over this setup, create a mux.Router
// and call PopulateRouter instead.
func NewRouter(svc niservice.Service) *mux.Router {
	r := mux.NewRouter()
	PopulateRouter(r, svc)
	return r
}

// PopulateRouter adds service routes to an existing
// github.com/gorilla/mux router object.  This can be used, for
// instance, to place the service under a subpath:
//
//     r := mux.NewRouter()
//     s := r.PathPrefix("/demo").Subrouter()
//     PopulateRouter(s, local.New())
func PopulateRouter(r *mux.Router, svc niservice.Service) {
	api := &restAPI{Service: svc, Router: r}
	api.PopulateRouter(r)
}

// restAPI holds the persistent state for the REST API.
type restAPI struct {
	Service niservice.Service
	Router  *mux.Router
}

// PopulateRouter adds all URL paths to a router.
func (api *restAPI) PopulateRouter(r *mux.Router) {
	r.Path("/").Methods("GET", "HEAD").Name("root").Handler(&resourceHandler{
		Context: api.Context,
		Get:     api.RootDocument,
	})
	r.Path("/ni/hello").Methods("GET", "HEAD").Name("hello").Handler(&resourceHandler{
		Context: api.Context,
		Get:     api.Hello,
	})
	r.Path("/reverse").Methods("GET", "HEAD").Name("reverse").Handler(&resourceHandler{
		Context: api.Context,
		Get:     api.Reverse,
	})
}

func (api *restAPI) RootDocument(ctx *context) (interface{}, error) {
	resp := restdata.RootData{}
	err := buildURLs(api.Router).
		URL(&resp.HelloURL, "hello").
		QueryTemplate(&resp.ReverseURL, "reverse", niservice.ReverseParamName).
		Error
	return resp, err
}

func (api *restAPI) Hello(ctx *context) (interface{}, error) {
	return api.Service.Hello()
}

func (api *restAPI) Reverse(ctx *context) (interface{}, error) {
	out, err := api.Service.Reverse(ctx.StringParam(niservice.ReverseParamName))
	if _, missing := err.(niservice.ErrMissingParameter); missing {
		return nil, restdata.ErrBadRequest{Err: err}
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// routeName returns the name of the route r would be dispatched to,
// or "none" if it matches nothing.
func routeName(r *mux.Router, req *http.Request) string {
	var match mux.RouteMatch
	if r.Match(req, &match) && match.Route != nil {
		if name := match.Route.GetName(); name != "" {
			return name
		}
	}
	return "none"
}
