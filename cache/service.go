// Copyright 2026 NIAEFEUP.
// This software is released under an MIT/X11 open source license.

// Package cache provides memoization of reversal results.  The cache
// wraps some other Service.  Hello passes straight through; Reverse
// looks up its input in a bounded least-recently-used cache and only
// calls the underlying service on a miss.
//
// Only successful results are cached.  A missing parameter is never
// looked up and always reaches the underlying service, so its error
// is reported unchanged.
package cache

import "github.com/niaefeup/go-niservice/niservice"

// DefaultSize is the number of reversals New keeps.
const DefaultSize = 1024

// New creates a new caching wrapper around an existing service, with
// the default capacity.
func New(svc niservice.Service) niservice.Service {
	return NewWithSize(svc, DefaultSize)
}

// NewWithSize creates a new caching wrapper holding at most size
// results.  If size is not positive, svc is returned unwrapped.
func NewWithSize(svc niservice.Service, size int) niservice.Service {
	if size <= 0 {
		return svc
	}
	return &cacheService{
		service: svc,
		lru:     newLRU(size),
	}
}

type cacheService struct {
	service niservice.Service
	lru     *lru
}

func (c *cacheService) Hello() (string, error) {
	return c.service.Hello()
}

func (c *cacheService) Reverse(data *string) (string, error) {
	if data == nil {
		return c.service.Reverse(nil)
	}
	return c.lru.Get(*data, func(key string) (string, error) {
		return c.service.Reverse(&key)
	})
}
