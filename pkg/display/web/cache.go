package web

import "sync"

type cacheEntry struct {
	hash uint64
	data []byte
}

// cache is a fixed size ring of recently sent frames, so that a
// repeated frame can be sent as its index.
type cache struct {
	cache []*cacheEntry
	idx   int
	size  int
	sync.RWMutex
}

func newCache(size int) *cache {
	c := &cache{
		cache: make([]*cacheEntry, size),
		size:  size,
	}
	for i := 0; i < size; i++ {
		c.cache[i] = &cacheEntry{
			hash: 0,
			data: []byte{},
		}
	}

	return c
}

// add adds the data to the cache, evicting the oldest entry, and
// returns the index it was stored at.
func (c *cache) add(hash uint64, output []byte) int {
	idx := c.idx
	c.cache[idx].data = output
	c.cache[idx].hash = hash

	c.idx = (c.idx + 1) % c.size
	return idx
}

func (c *cache) index(hash uint64) int {
	for i, e := range c.cache {
		if len(e.data) > 0 && e.hash == hash {
			return i
		}
	}

	return -1
}
