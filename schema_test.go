package jsonschema

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaBooleanRoundtrip(t *testing.T) {
	data, err := True().MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "true", string(data))

	var s Schema
	require.NoError(t, json.Unmarshal([]byte("false"), &s))
	v, ok := s.IsBoolean()
	require.True(t, ok)
	assert.False(t, v)
	assert.True(t, s.IsFalse())
}

func TestSchemaEmptyMapIsUniversal(t *testing.T) {
	var s Schema
	require.NoError(t, json.Unmarshal([]byte("{}"), &s))
	assert.True(t, s.IsTrue())
	assert.Nil(t, (*Schema)(nil).Clone())
	assert.True(t, (*Schema)(nil).IsTrue())
}

func TestSchemaUnmarshalKeywordsAndExtra(t *testing.T) {
	raw := `{
		"type": "string",
		"minLength": 2,
		"maxLength": 10,
		"pattern": "^a",
		"const": "abc",
		"x-custom": 42
	}`
	var s Schema
	require.NoError(t, json.Unmarshal([]byte(raw), &s))
	assert.Equal(t, SchemaType{"string"}, s.Type)
	require.NotNil(t, s.MinLength)
	assert.Equal(t, 2, *s.MinLength)
	require.NotNil(t, s.Const)
	assert.True(t, s.Const.IsSet)
	assert.Equal(t, "abc", s.Const.Value)
	assert.Equal(t, float64(42), s.Extra["x-custom"])
}

func TestSchemaUnmarshalTypeArray(t *testing.T) {
	var s Schema
	require.NoError(t, json.Unmarshal([]byte(`{"type": ["string", "null"]}`), &s))
	assert.ElementsMatch(t, []string{"string", "null"}, []string(s.Type))
}

func TestSchemaUnmarshalConstNull(t *testing.T) {
	var s Schema
	require.NoError(t, json.Unmarshal([]byte(`{"const": null}`), &s))
	require.NotNil(t, s.Const)
	assert.True(t, s.Const.IsSet)
	assert.Nil(t, s.Const.Value)
}

func TestSchemaUnmarshalEmptyEnumRejected(t *testing.T) {
	var s Schema
	err := json.Unmarshal([]byte(`{"enum": []}`), &s)
	require.Error(t, err)
}

func TestSchemaUnmarshalItemsSingleVsTuple(t *testing.T) {
	var single Schema
	require.NoError(t, json.Unmarshal([]byte(`{"items": {"type": "string"}}`), &single))
	require.NotNil(t, single.Items)
	assert.False(t, single.Items.IsTuple())
	require.NotNil(t, single.Items.Single)
	assert.Equal(t, SchemaType{"string"}, single.Items.Single.Type)

	var tuple Schema
	require.NoError(t, json.Unmarshal([]byte(`{"items": [{"type": "string"}, {"type": "number"}]}`), &tuple))
	require.NotNil(t, tuple.Items)
	assert.True(t, tuple.Items.IsTuple())
	assert.Len(t, tuple.Items.Tuple, 2)
}

func TestSchemaUnmarshalDependenciesMixedForms(t *testing.T) {
	raw := `{
		"dependencies": {
			"credit_card": ["billing_address"],
			"name": {"required": ["surname"]}
		}
	}`
	var s Schema
	require.NoError(t, json.Unmarshal([]byte(raw), &s))
	require.Len(t, s.Dependencies, 2)
	cc := s.Dependencies["credit_card"]
	assert.False(t, cc.IsSchemaForm())
	assert.Equal(t, []string{"billing_address"}, cc.Properties)

	name := s.Dependencies["name"]
	require.True(t, name.IsSchemaForm())
	assert.Equal(t, []string{"surname"}, name.Schema.Required)
}

func TestSchemaMarshalRoundtrip(t *testing.T) {
	s := Object(
		Prop("name", String(MinLen(1))),
		RequiredOf("name"),
	)
	data, err := s.MarshalJSON()
	require.NoError(t, err)

	var back Schema
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, SchemasEqual(s, &back))
}

func TestSchemaCloneIndependence(t *testing.T) {
	s := Object(Prop("a", String()))
	clone := s.Clone()
	(*clone.Properties)["a"].Type = SchemaType{"number"}
	assert.Equal(t, SchemaType{"string"}, (*s.Properties)["a"].Type)
}

func TestDependencyAsSchema(t *testing.T) {
	d := &Dependency{Properties: []string{"b", "a"}}
	s := d.AsSchema()
	assert.Equal(t, []string{"a", "b"}, s.Required)
}
