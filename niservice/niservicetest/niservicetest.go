// Copyright 2026 NIAEFEUP.
// This software is released under an MIT/X11 open source license.

// Package niservicetest provides generic functional tests for the
// niservice Service interface.  A typical implementation test needs to
// wrap Suite to create its service:
//
//     package myservice
//
//     import (
//             "testing"
//             "github.com/niaefeup/go-niservice/niservice/niservicetest"
//             "github.com/stretchr/testify/suite"
//     )
//
//     // Suite is the per-implementation generic test suite.
//     type Suite struct{
//             niservicetest.Suite
//     }
//
//     // SetupSuite does global setup for the test suite.
//     func (s *Suite) SetupSuite() {
//             s.Suite.SetupSuite()
//             s.Service = New()
//     }
//
//     // TestService runs the Service generic tests.
//     func TestService(t *testing.T) {
//             suite.Run(t, &Suite{})
//     }
package niservicetest

import (
	"github.com/niaefeup/go-niservice/niservice"
	"github.com/satori/go.uuid"
	"github.com/stretchr/testify/suite"
	"sync"
	"unicode/utf8"
)

// Suite is the generic Service test suite.
type Suite struct {
	suite.Suite

	// Service contains the interface to the implementation under
	// test.  It is set by importing packages.
	Service niservice.Service
}

// SetupSuite does one-time initialization for the test suite.
func (s *Suite) SetupSuite() {
}

// reverse calls Reverse on a string value and requires it succeed.
func (s *Suite) reverse(data string) string {
	out, err := s.Service.Reverse(&data)
	s.Require().NoError(err)
	return out
}

// TestHello checks the exact greeting text.
func (s *Suite) TestHello() {
	hello, err := s.Service.Hello()
	if s.NoError(err) {
		s.Equal("Hello from NIAEFEUP :)", hello)
	}
}

// TestReverseWord checks the canonical example.
func (s *Suite) TestReverseWord() {
	s.Equal("tiger", s.reverse("regit"))
}

// TestReverseEmpty checks that an empty string is valid input.
func (s *Suite) TestReverseEmpty() {
	s.Equal("", s.reverse(""))
}

// TestReverseMissing checks that an absent parameter is an error.
func (s *Suite) TestReverseMissing() {
	_, err := s.Service.Reverse(nil)
	s.Equal(niservice.ErrMissingParameter{Name: "data"}, err)
}

// TestReverseAwkward runs strings that need escaping in URLs or that
// contain multi-byte characters.
func (s *Suite) TestReverseAwkward() {
	for _, in := range []string{
		" a b ",
		"a&b=c",
		"100%",
		"?#/",
		"+plus+",
		"你好世界",
		"a😀b",
		"line\nbreak",
	} {
		out := s.reverse(in)
		s.Equal(niservice.Reverse(in), out, "reversing %q", in)
		s.Equal(in, s.reverse(out), "double reversal of %q", in)
	}
}

// TestReverseProperties checks double reversal and length
// preservation on random inputs.
func (s *Suite) TestReverseProperties() {
	for i := 0; i < 20; i++ {
		in := uuid.NewV4().String() + "çø😀"
		out := s.reverse(in)
		s.Equal(utf8.RuneCountInString(in), utf8.RuneCountInString(out))
		s.Equal(in, s.reverse(out))
	}
}

// TestConcurrentCalls checks that the service can be shared between
// goroutines.
func (s *Suite) TestConcurrentCalls() {
	const workers = 8
	var wg sync.WaitGroup
	results := make(chan bool, workers)
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			in := uuid.NewV4().String()
			out, err := s.Service.Reverse(&in)
			results <- err == nil && out == niservice.Reverse(in)
		}()
	}
	wg.Wait()
	close(results)
	for ok := range results {
		s.True(ok)
	}
}
