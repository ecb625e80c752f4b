package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectBuilderWithPropertiesAndKeywords(t *testing.T) {
	s := Object(
		Prop("name", String(MinLen(1))),
		Prop("age", Integer(Min(0))),
		RequiredOf("name"),
		MinPropertiesOf(1),
	)
	assert.Equal(t, SchemaType{"object"}, s.Type)
	require.NotNil(t, s.Properties)
	assert.Contains(t, *s.Properties, "name")
	assert.Contains(t, *s.Properties, "age")
	assert.Equal(t, []string{"name"}, s.Required)
	require.NotNil(t, s.MinProperties)
	assert.Equal(t, 1, *s.MinProperties)
}

func TestTypedBuilders(t *testing.T) {
	assert.Equal(t, SchemaType{"string"}, String().Type)
	assert.Equal(t, SchemaType{"integer"}, Integer().Type)
	assert.Equal(t, SchemaType{"number"}, Number().Type)
	assert.Equal(t, SchemaType{"boolean"}, Boolean().Type)
	assert.Equal(t, SchemaType{"null"}, Null().Type)
	assert.Equal(t, SchemaType{"array"}, Array().Type)
	assert.Empty(t, Any().Type)
}

func TestConstEnumApplicatorBuilders(t *testing.T) {
	c := ConstOf(5.0)
	require.NotNil(t, c.Const)
	assert.Equal(t, 5.0, c.Const.Value)

	e := EnumOf(1.0, 2.0, 3.0)
	assert.Len(t, e.Enum, 3)

	oneOf := OneOfSchemas(String(), Integer())
	assert.Len(t, oneOf.OneOf, 2)

	anyOf := AnyOfSchemas(String(), Integer())
	assert.Len(t, anyOf.AnyOf, 2)

	allOf := AllOfSchemas(String(), Integer())
	assert.Len(t, allOf.AllOf, 2)

	not := NotSchema(String())
	require.NotNil(t, not.Not)
}

func TestConditionalBuilderWithAndWithoutElse(t *testing.T) {
	withElse := If(ConstOf("a")).Then(Integer()).Else(String())
	require.NotNil(t, withElse.If)
	require.NotNil(t, withElse.Then)
	require.NotNil(t, withElse.Else)

	noElse := If(ConstOf("a")).Then(Integer()).ToSchema()
	require.NotNil(t, noElse.If)
	assert.Nil(t, noElse.Else)
}

func TestRefToBuildsOpaqueRef(t *testing.T) {
	s := RefTo("#/$defs/address")
	assert.Equal(t, "#/$defs/address", s.Ref)
}

func TestMetadataKeywords(t *testing.T) {
	s := String(WithTitle("Name"), WithDescription("a person's name"), WithDefault("anon"), ReadOnlyFlag(true))
	require.NotNil(t, s.Title)
	assert.Equal(t, "Name", *s.Title)
	require.NotNil(t, s.Description)
	assert.True(t, s.HasDefault)
	assert.Equal(t, "anon", s.Default)
	require.NotNil(t, s.ReadOnly)
	assert.True(t, *s.ReadOnly)
}

func TestDependentRequiredAndSchemaKeywords(t *testing.T) {
	s := Object(
		DependentRequired("credit_card", "billing_address"),
		DependentSchema("name", Object(RequiredOf("surname"))),
	)
	require.Len(t, s.Dependencies, 2)
	assert.False(t, s.Dependencies["credit_card"].IsSchemaForm())
	assert.True(t, s.Dependencies["name"].IsSchemaForm())
}
