package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileCachedReusesCompiledRegex(t *testing.T) {
	re1, err := compileCached("^[a-z]+$")
	require.NoError(t, err)
	re2, err := compileCached("^[a-z]+$")
	require.NoError(t, err)
	assert.Same(t, re1, re2)
}

func TestCompileCachedInvalidPattern(t *testing.T) {
	_, err := compileCached("(unterminated")
	assert.Error(t, err)
}

func TestNormalizeCacheMemoizesByPointerIdentity(t *testing.T) {
	cache := NewNormalizeCache()
	s := &Schema{Enum: []any{"solo"}}
	first := cache.Normalize(s)
	second := cache.Normalize(s)
	assert.Same(t, first, second)

	cache.Clear()
	third := cache.Normalize(s)
	assert.True(t, SchemasEqual(first, third))
	assert.NotSame(t, first, third)
}

func TestNormalizeCacheNilSchema(t *testing.T) {
	cache := NewNormalizeCache()
	assert.Nil(t, cache.Normalize(nil))
}
