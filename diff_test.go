package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func diffTypes(diffs []Diff) []string {
	out := make([]string, len(diffs))
	for i, d := range diffs {
		out[i] = d.Type
	}
	return out
}

func diffPaths(diffs []Diff) []string {
	out := make([]string, len(diffs))
	for i, d := range diffs {
		out[i] = d.Path
	}
	return out
}

func TestCheckSubsetNoDiffs(t *testing.T) {
	a := Integer(Min(5), Max(10))
	b := Integer(Min(0), Max(20))
	result := Check(a, b)
	assert.True(t, result.IsSubset)
	assert.Empty(t, result.Diffs)
	assert.NotNil(t, result.Merged)
}

func TestCheckTypeMismatchIsIncompatible(t *testing.T) {
	result := Check(String(), Integer())
	require.False(t, result.IsSubset)
	assert.Contains(t, diffTypes(result.Diffs), "incompatible")
	assert.Contains(t, diffPaths(result.Diffs), "$")
}

func TestCheckMinimumDiffIsChanged(t *testing.T) {
	result := Check(Integer(Min(0)), Integer(Min(10)))
	require.False(t, result.IsSubset)
	assert.Contains(t, diffTypes(result.Diffs), "changed")
	assert.Contains(t, diffPaths(result.Diffs), "minimum")
}

func TestCheckMultipleOfDiffIsChanged(t *testing.T) {
	result := Check(Integer(MultipleOfValue(4)), Integer(MultipleOfValue(6)))
	require.False(t, result.IsSubset)
	assert.Contains(t, diffPaths(result.Diffs), "multipleOf")
	assert.Contains(t, diffTypes(result.Diffs), "changed")
}

func TestCheckPatternDiffIsChanged(t *testing.T) {
	result := Check(String(WithPattern("^.*$")), String(WithPattern("^[0-9]+$")))
	require.False(t, result.IsSubset)
	assert.Contains(t, diffPaths(result.Diffs), "pattern")
	assert.Contains(t, diffTypes(result.Diffs), "changed")
}

func TestCheckRequiredDiffIsAdded(t *testing.T) {
	a := Object(Prop("name", String()))
	b := Object(Prop("name", String()), RequiredOf("name"))
	result := Check(a, b)
	require.False(t, result.IsSubset)
	var found bool
	for _, d := range result.Diffs {
		if d.Type == "added" && d.Path == "required" {
			found = true
		}
	}
	assert.True(t, found, "expected an added diff at required")
}

func TestCheckPropertyRecursion(t *testing.T) {
	a := Object(Prop("name", String(MinLen(1))))
	b := Object(Prop("name", String(MinLen(5))))
	result := Check(a, b)
	require.False(t, result.IsSubset)
	var found bool
	for _, d := range result.Diffs {
		if d.Type == "changed" && d.Path == "properties.name.minLength" {
			found = true
		}
	}
	assert.True(t, found, "expected a changed diff nested under properties.name.minLength")
}

func TestCheckNewPropertyIsAdded(t *testing.T) {
	a := Object(Prop("name", String()))
	b := Object(Prop("name", String()), Prop("age", Integer()), RequiredOf("name", "age"))
	result := Check(a, b)
	require.False(t, result.IsSubset)
	var foundAge, foundRequired bool
	for _, d := range result.Diffs {
		if d.Type == "added" && d.Path == "properties.age" {
			foundAge = true
		}
		if d.Type == "added" && d.Path == "required" {
			foundRequired = true
		}
	}
	assert.True(t, foundAge, "expected an added diff at properties.age")
	assert.True(t, foundRequired, "expected an added diff at required")
}

func TestCheckContainsDiffIsChanged(t *testing.T) {
	a := Array(ContainsOf(String()))
	b := Array(ContainsOf(Integer()))
	result := Check(a, b)
	require.False(t, result.IsSubset)
	assert.Contains(t, diffPaths(result.Diffs), "contains")
	assert.Contains(t, diffTypes(result.Diffs), "changed")
}

func TestCheckAnyOfDiffIsChanged(t *testing.T) {
	a := String()
	b := AnyOfSchemas(Integer(), Boolean())
	result := Check(a, b)
	require.False(t, result.IsSubset)
	assert.Contains(t, diffTypes(result.Diffs), "changed")
}

func TestCheckAgainstBooleanFalseTargetIsIncompatible(t *testing.T) {
	result := Check(String(), False())
	require.False(t, result.IsSubset)
	assert.Equal(t, []Diff{{Type: "incompatible", Path: "$"}}, result.Diffs)
}

func TestCheckMergeConflictIsIncompatible(t *testing.T) {
	a := Object(Prop("n", String()), AdditionalPropertiesOf(False()))
	b := Object(Prop("n", String()), Prop("a", Integer()), RequiredOf("n", "a"))
	result := Check(a, b)
	require.False(t, result.IsSubset)
	assert.True(t, result.Merged.IsFalse())
	assert.Equal(t, []Diff{{Type: "incompatible", Path: "$"}}, result.Diffs)
}
