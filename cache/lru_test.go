// Copyright 2026 NIAEFEUP.
// This software is released under an MIT/X11 open source license.

package cache

import (
	"github.com/stretchr/testify/assert"
	"strings"
	"testing"
)

func Make(key string) (string, error) {
	return strings.ToUpper(key), nil
}

func DoNotMake(key string) (string, error) {
	return "", assert.AnError
}

type LRUAssertions struct {
	*assert.Assertions
	LRU *lru
}

func NewLRUAssertions(t assert.TestingT, size int) *LRUAssertions {
	return &LRUAssertions{
		assert.New(t),
		newLRU(size),
	}
}

// PutKey adds an item with key to the cache.
func (a *LRUAssertions) PutKey(key string) {
	a.LRU.Put(key, strings.ToUpper(key))
}

// GetKey fetches an item with key from the cache; if not present, it
// is added.
func (a *LRUAssertions) GetKey(key string) {
	value, err := a.LRU.Get(key, Make)
	if a.NoError(err) {
		a.Equal(strings.ToUpper(key), value)
	}
}

// GetPresent fetches an item with key from the cache; if not present,
// it should produce an assertion error.
func (a *LRUAssertions) GetPresent(key string) {
	value, err := a.LRU.Get(key, DoNotMake)
	if a.NoError(err) {
		a.Equal(strings.ToUpper(key), value)
	}
}

// GetError tries to fetch an item from the cache, but it should not
// exist, and the resulting error will be caught.
func (a *LRUAssertions) GetError(key string) {
	_, err := a.LRU.Get(key, DoNotMake)
	a.Error(err)
}

// LRUHas asserts that an item with key is in the cache.
func (a *LRUAssertions) LRUHas(key string) {
	value, present := a.LRU.Peek(key)
	if a.True(present, "expected %q in cache", key) {
		a.Equal(strings.ToUpper(key), value)
	}
}

// LRUDoesNotHave asserts that no item with key is in the cache.
func (a *LRUAssertions) LRUDoesNotHave(key string) {
	_, present := a.LRU.Peek(key)
	a.False(present, "expected %q not in cache", key)
}

// TestLRUSimple tests minimal object presence.
func TestLRUSimple(t *testing.T) {
	a := NewLRUAssertions(t, 2)
	a.PutKey("Sam")

	a.LRUHas("Sam")
	a.LRUDoesNotHave("Horton")
	a.Equal(1, a.LRU.Len())
}

// TestLRUAutoInsert tests lru.Get() adding absent items.
func TestLRUAutoInsert(t *testing.T) {
	a := NewLRUAssertions(t, 2)

	a.GetKey("Marvin")
	a.GetKey("Horton")
	a.LRUHas("Marvin")
	a.LRUHas("Horton")

	// A third key evicts the oldest (Marvin)
	a.GetKey("Sam")
	a.LRUDoesNotHave("Marvin")
	a.LRUHas("Horton")
	a.LRUHas("Sam")
	a.Equal(2, a.LRU.Len())
}

func TestLRUInsertError(t *testing.T) {
	a := NewLRUAssertions(t, 2)

	a.GetKey("Marvin")
	a.GetKey("Horton")

	// Failed fetches are not cached and evict nothing
	a.GetError("Sam")
	a.LRUHas("Marvin")
	a.LRUHas("Horton")
	a.LRUDoesNotHave("Sam")

	a.GetPresent("Marvin")
	a.GetPresent("Horton")
}

// TestLRUOrder tests that getting an item causes it to not get evicted.
func TestLRUOrder(t *testing.T) {
	a := NewLRUAssertions(t, 2)

	a.GetKey("Marvin")
	a.GetKey("Horton")

	// Marvin becomes more-recently-used
	a.GetKey("Marvin")

	a.GetKey("Sam")
	a.LRUHas("Marvin")
	a.LRUDoesNotHave("Horton")
	a.LRUHas("Sam")
}

// TestLRUPutUpdates checks that Put on an existing key replaces the
// value and refreshes it.
func TestLRUPutUpdates(t *testing.T) {
	a := NewLRUAssertions(t, 2)

	a.GetKey("Marvin")
	a.GetKey("Horton")
	a.LRU.Put("Marvin", "changed")
	value, present := a.LRU.Peek("Marvin")
	a.True(present)
	a.Equal("changed", value)

	a.GetKey("Sam")
	a.LRUDoesNotHave("Horton")
	a.Equal(2, a.LRU.Len())
}

// TestLRURemoval does simple tests on the Remove call.
func TestLRURemoval(t *testing.T) {
	a := NewLRUAssertions(t, 2)

	a.GetKey("Marvin")
	a.LRUHas("Marvin")
	a.LRU.Remove("Marvin")
	a.LRUDoesNotHave("Marvin")

	a.LRU.Remove("Sam")
	a.LRUDoesNotHave("Sam")

	// Removing a more-recent thing keeps the older one
	a.GetKey("Marvin")
	a.GetKey("Horton")
	a.LRU.Remove("Horton")
	a.GetKey("Sam")
	a.LRUHas("Marvin")
	a.LRUDoesNotHave("Horton")
	a.LRUHas("Sam")
}
