// Copyright 2026 NIAEFEUP.
// This software is released under an MIT/X11 open source license.

package restclient

// This file provides generic REST client code.

import (
	"bytes"
	"github.com/jtacoma/uritemplates"
	"github.com/niaefeup/go-niservice/restdata"
	"io/ioutil"
	"net/http"
	"net/url"
)

// resource is any object that has a URL.
type resource struct {
	URL    *url.URL
	Client *http.Client
}

// Template expands an RFC 6570 URI template with vars, and returns
// the result relative to the resource's URL.
func (r *resource) Template(template string, vars map[string]interface{}) (*url.URL, error) {
	tmpl, err := uritemplates.Parse(template)
	if err != nil {
		return nil, err
	}

	expanded, err := tmpl.Expand(vars)
	if err != nil {
		return nil, err
	}

	return r.URL.Parse(expanded)
}

// Do performs an HTTP GET of url and returns the response body and
// its content type.  accept is sent as the Accept: header.  Failing
// HTTP statuses are returned as errors.
func (r *resource) Do(url *url.URL, accept string) (body []byte, contentType string, err error) {
	req, err := http.NewRequest("GET", url.String(), nil)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("Accept", accept)

	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer func() {
		err = firstError(err, resp.Body.Close())
	}()

	if err = checkHTTPStatus(resp); err != nil {
		return nil, "", err
	}

	body, err = ioutil.ReadAll(resp.Body)
	return body, resp.Header.Get("Content-Type"), err
}

// GetText retrieves a text/plain resource from a URL template.
func (r *resource) GetText(template string, vars map[string]interface{}) (string, error) {
	url, err := r.Template(template, vars)
	if err != nil {
		return "", err
	}
	body, _, err := r.Do(url, restdata.TextMediaType)
	return string(body), err
}

// Get retrieves the JSON representation of the resource from its own
// URL.  The result is stored in out, which must be of pointer type.
func (r *resource) Get(out interface{}) error {
	body, contentType, err := r.Do(r.URL, restdata.JSONMediaType)
	if err != nil {
		return err
	}
	return restdata.Decode(contentType, bytes.NewReader(body), out)
}

// ErrorHTTP is a catch-all error for non-successes returned from the
// REST endpoint.
type ErrorHTTP struct {
	// Response holds a pointer to the failing HTTP response.
	Response *http.Response

	// Body holds the contents of the message body, presumed to
	// be text.
	Body string
}

func (e ErrorHTTP) Error() string {
	return e.Response.Status
}

// checkHTTPStatus examines an HTTP response and returns an error if
// it is not successful.
func checkHTTPStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	// Always collect the entire body; we will need it as a fallback
	// and can only parse it once.
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	// Take a shot at decoding it as a better error
	var errResp restdata.ErrorResponse
	contentType := resp.Header.Get("Content-Type")
	err = restdata.Decode(contentType, bytes.NewReader(body), &errResp)
	if err == nil && errResp.Error != "" {
		return errResp.ToError()
	}

	return ErrorHTTP{Response: resp, Body: string(body)}
}

func firstError(e1, e2 error) error {
	if e1 != nil {
		return e1
	}
	return e2
}
