// Copyright 2026 NIAEFEUP.
// This software is released under an MIT/X11 open source license.

package backend

import (
	"flag"
	"github.com/niaefeup/go-niservice/local"
	"github.com/niaefeup/go-niservice/niservice"
	"github.com/niaefeup/go-niservice/restserver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http/httptest"
	"testing"
)

func TestSet(t *testing.T) {
	tests := []struct {
		Param   string
		Backend Backend
		OK      bool
	}{
		{"local", Backend{Implementation: "local"}, true},
		{"rest:http://localhost:8080/", Backend{Implementation: "rest", Address: "http://localhost:8080/"}, true},
		{"rest", Backend{}, false},
		{"rest:", Backend{}, false},
		{"", Backend{}, false},
		{"postgres:foo", Backend{}, false},
	}
	for _, test := range tests {
		var b Backend
		err := b.Set(test.Param)
		if test.OK {
			if assert.NoError(t, err, test.Param) {
				assert.Equal(t, test.Backend, b)
				assert.Equal(t, test.Param, b.String())
			}
		} else {
			assert.Error(t, err, test.Param)
		}
	}
}

func TestFlag(t *testing.T) {
	b := Backend{Implementation: "local"}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(&b, "backend", "impl[:address] of the service")
	require.NoError(t, fs.Parse([]string{"--backend", "rest:http://example.com/"}))
	assert.Equal(t, "rest", b.Implementation)
	assert.Equal(t, "http://example.com/", b.Address)
}

func TestLocalService(t *testing.T) {
	b := Backend{Implementation: "local"}
	svc, err := b.Service()
	if assert.NoError(t, err) {
		hello, err := svc.Hello()
		assert.NoError(t, err)
		assert.Equal(t, niservice.Greeting, hello)
	}
}

func TestRestService(t *testing.T) {
	server := httptest.NewServer(restserver.NewRouter(local.New()))
	defer server.Close()

	var b Backend
	require.NoError(t, b.Set("rest:"+server.URL))
	svc, err := b.Service()
	require.NoError(t, err)
	data := "regit"
	out, err := svc.Reverse(&data)
	assert.NoError(t, err)
	assert.Equal(t, "tiger", out)
}

func TestUnknownService(t *testing.T) {
	b := Backend{Implementation: "memory"}
	_, err := b.Service()
	assert.EqualError(t, err, `unknown service backend "memory"`)
}
