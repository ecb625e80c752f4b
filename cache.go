package jsonschema

import (
	"regexp"
	"sync"
)

// compiledPatterns caches regexp.Compile results keyed by source pattern.
// patternProperties and pattern keywords frequently reuse the same regex
// across many merge/subset calls on the same schema tree, and compiling a
// pattern is the expensive part of matching against it.
var compiledPatterns sync.Map // string -> *regexp.Regexp

func compileCached(pattern string) (*regexp.Regexp, error) {
	if v, ok := compiledPatterns.Load(pattern); ok {
		return v.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	compiledPatterns.Store(pattern, re)
	return re, nil
}

// NormalizeCache memoizes Normalize by schema identity (pointer equality),
// not by value. It exists for callers that call Normalize repeatedly on the
// same long-lived schema values (e.g. a compatibility checker re-testing a
// contract against a stream of candidate schemas); it never compares schema
// contents and so is safe to disable entirely by simply not using it.
//
// A NormalizeCache is safe for concurrent use.
type NormalizeCache struct {
	mu    sync.RWMutex
	byPtr map[*Schema]*Schema
}

// NewNormalizeCache returns an empty cache.
func NewNormalizeCache() *NormalizeCache {
	return &NormalizeCache{byPtr: make(map[*Schema]*Schema)}
}

// Normalize returns the cached normalization of s, computing and storing it
// on first use. The returned value must be treated as immutable by the
// caller, exactly like the package-level Normalize function's result.
func (c *NormalizeCache) Normalize(s *Schema) *Schema {
	if s == nil {
		return nil
	}
	c.mu.RLock()
	if v, ok := c.byPtr[s]; ok {
		c.mu.RUnlock()
		return v
	}
	c.mu.RUnlock()

	v := Normalize(s)

	c.mu.Lock()
	c.byPtr[s] = v
	c.mu.Unlock()
	return v
}

// Clear empties the cache, releasing every memoized entry.
func (c *NormalizeCache) Clear() {
	c.mu.Lock()
	c.byPtr = make(map[*Schema]*Schema)
	c.mu.Unlock()
}
