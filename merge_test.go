package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeIdentityAndAbsorbing(t *testing.T) {
	s := String(MinLen(2))
	assert.True(t, SchemasEqual(Normalize(s), Merge(s, True())))
	assert.True(t, Merge(s, False()).IsFalse())
}

func TestMergeNumericBounds(t *testing.T) {
	a := Integer(Min(0), Max(10))
	b := Integer(Min(5), Max(20))
	merged := Merge(a, b)
	require.NotNil(t, merged.Minimum)
	require.NotNil(t, merged.Maximum)
	assert.Equal(t, "5", FormatRat(merged.Minimum))
	assert.Equal(t, "10", FormatRat(merged.Maximum))
}

func TestMergeNumericBoundsContradiction(t *testing.T) {
	a := Integer(Min(10))
	b := Integer(Max(5))
	assert.True(t, Merge(a, b).IsFalse())
}

func TestMergeMultipleOfLCM(t *testing.T) {
	a := Integer(MultipleOfValue(4))
	b := Integer(MultipleOfValue(6))
	merged := Merge(a, b)
	require.NotNil(t, merged.MultipleOf)
	assert.Equal(t, "12", FormatRat(merged.MultipleOf))
}

func TestMergeTypeContradiction(t *testing.T) {
	a := String()
	b := Integer()
	assert.True(t, Merge(a, b).IsFalse())
}

func TestMergeConstVsEnum(t *testing.T) {
	a := ConstOf("x")
	b := EnumOf("x", "y")
	merged := Merge(a, b)
	require.NotNil(t, merged.Const)
	assert.Equal(t, "x", merged.Const.Value)

	c := ConstOf("z")
	assert.True(t, Merge(c, b).IsFalse())
}

func TestMergeEnumIntersection(t *testing.T) {
	a := EnumOf("x", "y", "z")
	b := EnumOf("y", "z", "w")
	merged := Merge(a, b)
	assert.ElementsMatch(t, []any{"y", "z"}, merged.Enum)
}

func TestMergeStringKeywordsNarrowing(t *testing.T) {
	a := String(MinLen(1), MaxLen(10))
	b := String(MinLen(5), MaxLen(8))
	merged := Merge(a, b)
	assert.Equal(t, 5, *merged.MinLength)
	assert.Equal(t, 8, *merged.MaxLength)
}

func TestMergeStringLengthContradiction(t *testing.T) {
	a := String(MinLen(10))
	b := String(MaxLen(5))
	assert.True(t, Merge(a, b).IsFalse())
}

func TestMergePatternSubsetKept(t *testing.T) {
	a := String(WithPattern("^[0-9]{3}$"))
	b := String(WithPattern("^[0-9]+$"))
	merged := Merge(a, b)
	require.NotNil(t, merged.Pattern)
	assert.Equal(t, "^[0-9]{3}$", *merged.Pattern)
	assert.Empty(t, merged.AllOf)
}

func TestMergeUnrelatedPatternsRetainedViaAllOf(t *testing.T) {
	a := String(WithPattern("^a"))
	b := String(WithPattern("^b"))
	merged := Merge(a, b)
	require.NotNil(t, merged.Pattern)
	require.Len(t, merged.AllOf, 1)
	assert.NotNil(t, merged.AllOf[0].Pattern)
}

func TestMergeFormatConflict(t *testing.T) {
	a := String(WithFormat("email"))
	b := String(WithFormat("hostname"))
	assert.True(t, Merge(a, b).IsFalse())
}

func TestMergeFormatSubtype(t *testing.T) {
	a := String(WithFormat("email"))
	b := String(WithFormat("idn-email"))
	merged := Merge(a, b)
	require.NotNil(t, merged.Format)
	assert.Equal(t, "email", *merged.Format)
}

func TestMergeObjectProperties(t *testing.T) {
	a := Object(Prop("name", String(MinLen(1))), RequiredOf("name"))
	b := Object(Prop("name", String(MaxLen(10))), Prop("age", Integer()))
	merged := Merge(a, b)
	require.NotNil(t, merged.Properties)
	name := (*merged.Properties)["name"]
	assert.Equal(t, 1, *name.MinLength)
	assert.Equal(t, 10, *name.MaxLength)
	assert.Contains(t, *merged.Properties, "age")
	assert.Equal(t, []string{"name"}, merged.Required)
}

func TestMergeRequiredUnion(t *testing.T) {
	a := Object(RequiredOf("a"))
	b := Object(RequiredOf("b"))
	merged := Merge(a, b)
	assert.Equal(t, []string{"a", "b"}, merged.Required)
}

func TestMergeAdditionalPropertiesFalse(t *testing.T) {
	a := Object(Prop("x", String()), AdditionalPropertiesOf(False()))
	b := Object(Prop("y", Integer()))
	merged := Merge(a, b)
	assert.True(t, merged.AdditionalProperties.IsFalse())
}

func TestMergeItemsTuple(t *testing.T) {
	a := Array(TupleOf(String(), Integer()))
	b := Array(TupleOf(String(MinLen(2)), Integer(Min(0))))
	merged := Merge(a, b)
	require.NotNil(t, merged.Items)
	require.True(t, merged.Items.IsTuple())
	require.Len(t, merged.Items.Tuple, 2)
	assert.Equal(t, 2, *merged.Items.Tuple[0].MinLength)
}

func TestMergeContainsDifferent(t *testing.T) {
	a := Array(ContainsOf(String()))
	b := Array(ContainsOf(Integer()))
	merged := Merge(a, b)
	require.NotNil(t, merged.Contains)
	require.Len(t, merged.AllOf, 1)
	assert.NotNil(t, merged.AllOf[0].Contains)
}

func TestMergeAnyOfDistribution(t *testing.T) {
	a := AnyOfSchemas(String(), Integer())
	b := AnyOfSchemas(String(MinLen(3)), Boolean())
	merged := Merge(a, b)
	// only the string/string pairing survives; integer/bool pairing is ∅.
	require.Len(t, merged.AnyOf, 1)
	assert.Equal(t, SchemaType{"string"}, merged.AnyOf[0].Type)
}

func TestMergeAnyOfAllPairsEmpty(t *testing.T) {
	a := AnyOfSchemas(String())
	b := AnyOfSchemas(Integer())
	assert.True(t, Merge(a, b).IsFalse())
}

func TestMergeNotKeepsBothViaAllOf(t *testing.T) {
	a := NotSchema(ConstOf("x"))
	b := NotSchema(ConstOf("y"))
	merged := Merge(a, b)
	require.NotNil(t, merged.Not)
	require.Len(t, merged.AllOf, 1)
	assert.NotNil(t, merged.AllOf[0].Not)
}

func TestMergeConditionalDifferentRetainedUnderAllOf(t *testing.T) {
	a := If(ConstOf("a")).Then(Integer(Min(1))).ToSchema()
	b := If(ConstOf("b")).Then(Integer(Max(10))).ToSchema()
	merged := Merge(a, b)
	require.NotNil(t, merged.If)
	found := false
	for _, sub := range merged.AllOf {
		if sub.If != nil {
			found = true
		}
	}
	assert.True(t, found, "expected the dropped conditional to be restated under allOf")
}

func TestMergeSameConditionalCollapses(t *testing.T) {
	cond := ConstOf("a")
	a := If(cond).Then(Integer(Min(1))).ToSchema()
	b := If(cond).Then(Integer(Max(10))).ToSchema()
	merged := Merge(a, b)
	require.NotNil(t, merged.Then)
	assert.Equal(t, "1", FormatRat(merged.Then.Minimum))
	assert.Equal(t, "10", FormatRat(merged.Then.Maximum))
}
