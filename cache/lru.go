// Copyright 2026 NIAEFEUP.
// This software is released under an MIT/X11 open source license.

package cache

// This file provides a simple LRU cache keyed by request input.

import (
	"container/list"
	"sync"
)

// entry is a single cached result.
type entry struct {
	Key   string
	Value string
}

// lru is a least-recently-used cache with a fixed capacity.  The cache
// can be safely accessed from multiple goroutines.
type lru struct {
	size      int
	lock      sync.RWMutex
	evictList *list.List
	index     map[string]*list.Element
}

func newLRU(size int) *lru {
	return &lru{
		size:      size,
		evictList: list.New(),
		index:     make(map[string]*list.Element),
	}
}

// Get retrieves an item from the cache.  If it is not present, calls
// the fetch function, and if that succeeds, saves the item and
// returns it.  This returns an error only if the item is not present
// and the fetch function returns an error; failed fetches are not
// cached.
func (lru *lru) Get(key string, fetch func(string) (string, error)) (string, error) {
	// This sadly happens under a writer lock, since we need to move
	// the item to the back of the list if it is present
	lru.lock.Lock()
	defer lru.lock.Unlock()

	if element, present := lru.index[key]; present {
		lru.evictList.MoveToBack(element)
		return element.Value.(*entry).Value, nil
	}

	value, err := fetch(key)
	if err != nil {
		return value, err
	}
	lru.add(key, value)
	return value, nil
}

// Peek looks for an item in the cache.  This runs under a reader
// lock and does not affect the recency of the item.
func (lru *lru) Peek(key string) (string, bool) {
	lru.lock.RLock()
	defer lru.lock.RUnlock()

	if element, present := lru.index[key]; present {
		return element.Value.(*entry).Value, true
	}
	return "", false
}

// Put adds an item to the LRU cache, possibly evicting something.
func (lru *lru) Put(key, value string) {
	lru.lock.Lock()
	defer lru.lock.Unlock()

	if element, present := lru.index[key]; present {
		element.Value.(*entry).Value = value
		lru.evictList.MoveToBack(element)
		return
	}
	lru.add(key, value)
}

// Remove takes an item out of the cache.  It does nothing if that
// key does not exist.
func (lru *lru) Remove(key string) {
	lru.lock.Lock()
	defer lru.lock.Unlock()

	if element, present := lru.index[key]; present {
		delete(lru.index, key)
		lru.evictList.Remove(element)
	}
}

// Len returns the number of items currently cached.
func (lru *lru) Len() int {
	lru.lock.RLock()
	defer lru.lock.RUnlock()
	return len(lru.index)
}

// add is an internal helper, running under the write lock, that adds a
// new item to the cache.  The item is known to not already exist.
func (lru *lru) add(key, value string) {
	element := lru.evictList.PushBack(&entry{Key: key, Value: value})
	lru.index[key] = element

	for len(lru.index) > lru.size {
		head := lru.evictList.Front()
		delete(lru.index, head.Value.(*entry).Key)
		lru.evictList.Remove(head)
	}
}
