// Copyright 2026 NIAEFEUP.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"net/http"
	"net/url"
)

// context holds all of the information that can be extracted from the
// request URL.
type context struct {
	QueryParams url.Values
}

func (api *restAPI) Context(req *http.Request) (ctx *context, err error) {
	ctx = &context{}
	ctx.QueryParams = req.URL.Query()
	return
}

// StringParam looks at ctx.QueryParams for a parameter named name.  If
// it is present at all, even with an empty value, returns a pointer to
// its first value.  Otherwise returns nil.
func (ctx *context) StringParam(name string) *string {
	values, present := ctx.QueryParams[name]
	if !present || len(values) == 0 {
		return nil
	}
	value := values[0]
	return &value
}
