package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCollapsesSingletonEnum(t *testing.T) {
	s := &Schema{Enum: []any{"only"}}
	out := Normalize(s)
	require_ := assert.New(t)
	require_.NotNil(out.Const)
	require_.True(out.Const.IsSet)
	require_.Equal("only", out.Const.Value)
	require_.Nil(out.Enum)
}

func TestNormalizeInfersTypeFromEnum(t *testing.T) {
	s := &Schema{Enum: []any{"a", "b"}}
	out := Normalize(s)
	assert.Equal(t, SchemaType{"string"}, out.Type)
}

func TestNormalizeDoesNotInferTypeFromMixedEnum(t *testing.T) {
	s := &Schema{Enum: []any{"a", 1.0}}
	out := Normalize(s)
	assert.Empty(t, out.Type)
}

func TestNormalizeConstNarrowsType(t *testing.T) {
	s := &Schema{Const: NewConst("x")}
	out := Normalize(s)
	assert.Equal(t, SchemaType{"string"}, out.Type)
}

func TestNormalizeConstTypeContradiction(t *testing.T) {
	s := &Schema{Type: SchemaType{"number"}, Const: NewConst("x")}
	out := Normalize(s)
	assert.True(t, out.IsFalse())
}

func TestNormalizeConstEnumReconciliation(t *testing.T) {
	s := &Schema{Const: NewConst("b"), Enum: []any{"a", "b", "c"}}
	out := Normalize(s)
	assert.False(t, out.IsFalse())
	assert.Nil(t, out.Enum)
	assert.Equal(t, "b", out.Const.Value)
}

func TestNormalizeConstEnumContradiction(t *testing.T) {
	s := &Schema{Const: NewConst("z"), Enum: []any{"a", "b"}}
	out := Normalize(s)
	assert.True(t, out.IsFalse())
}

func TestNormalizeDoubleNegationCollapse(t *testing.T) {
	inner := String(MinLen(3))
	s := &Schema{Not: &Schema{Not: inner}}
	out := Normalize(s)
	assert.True(t, SchemasEqual(out, Normalize(inner)))
}

func TestNormalizeDoubleNegationNotCollapsedWithExtraKeywords(t *testing.T) {
	inner := String(MinLen(3))
	minLen := 1
	s := &Schema{MinLength: &minLen, Not: &Schema{Not: inner}}
	out := Normalize(s)
	assert.NotNil(t, out.Not, "extra keywords alongside not(not(x)) must block the collapse")
}

func TestNormalizeRecursesIntoChildren(t *testing.T) {
	s := Object(Prop("name", &Schema{Enum: []any{"solo"}}))
	out := Normalize(s)
	child := (*out.Properties)["name"]
	require_ := assert.New(t)
	require_.NotNil(child.Const)
	require_.Equal("solo", child.Const.Value)
}

func TestNormalizeIdempotent(t *testing.T) {
	s := Object(Prop("name", &Schema{Enum: []any{"solo"}}), RequiredOf("name", "name"))
	once := Normalize(s)
	twice := Normalize(once)
	assert.True(t, SchemasEqual(once, twice))
}

func TestNormalizeDedupesRequired(t *testing.T) {
	s := &Schema{Required: []string{"a", "a", "b"}}
	out := Normalize(s)
	assert.Equal(t, []string{"a", "b"}, out.Required)
}
