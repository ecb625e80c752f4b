package jsonschema

// Property pairs a property name with its schema, for use with Object.
type Property struct {
	Name   string
	Schema *Schema
}

// Prop creates a property definition for Object.
func Prop(name string, schema *Schema) Property {
	return Property{Name: name, Schema: schema}
}

// Object builds an object schema from a mix of Property values and
// Keyword options.
func Object(items ...interface{}) *Schema {
	schema := &Schema{Type: SchemaType{"object"}}
	var props []Property
	var keywords []Keyword
	for _, item := range items {
		switch v := item.(type) {
		case Property:
			props = append(props, v)
		case Keyword:
			keywords = append(keywords, v)
		}
	}
	if len(props) > 0 {
		m := make(SchemaMap, len(props))
		for _, p := range props {
			m[p.Name] = p.Schema
		}
		schema.Properties = &m
	}
	applyKeywords(schema, keywords)
	return schema
}

// String builds a string schema.
func String(keywords ...Keyword) *Schema { return typed("string", keywords) }

// Integer builds an integer schema.
func Integer(keywords ...Keyword) *Schema { return typed("integer", keywords) }

// Number builds a number schema.
func Number(keywords ...Keyword) *Schema { return typed("number", keywords) }

// Boolean builds a boolean-typed schema (distinct from the True/False
// boolean *schema* values).
func Boolean(keywords ...Keyword) *Schema { return typed("boolean", keywords) }

// Null builds a null schema.
func Null(keywords ...Keyword) *Schema { return typed("null", keywords) }

// Array builds an array schema.
func Array(keywords ...Keyword) *Schema { return typed("array", keywords) }

// Any builds a schema with no type restriction.
func Any(keywords ...Keyword) *Schema {
	schema := &Schema{}
	applyKeywords(schema, keywords)
	return schema
}

func typed(tag string, keywords []Keyword) *Schema {
	schema := &Schema{Type: SchemaType{tag}}
	applyKeywords(schema, keywords)
	return schema
}

func applyKeywords(s *Schema, keywords []Keyword) {
	for _, k := range keywords {
		k(s)
	}
}

// ConstOf builds a const schema.
func ConstOf(value interface{}) *Schema {
	return &Schema{Const: NewConst(value)}
}

// EnumOf builds an enum schema.
func EnumOf(values ...interface{}) *Schema {
	return &Schema{Enum: values}
}

// OneOfSchemas builds a oneOf combination schema.
func OneOfSchemas(schemas ...*Schema) *Schema { return &Schema{OneOf: schemas} }

// AnyOfSchemas builds an anyOf combination schema.
func AnyOfSchemas(schemas ...*Schema) *Schema { return &Schema{AnyOf: schemas} }

// AllOfSchemas builds an allOf combination schema.
func AllOfSchemas(schemas ...*Schema) *Schema { return &Schema{AllOf: schemas} }

// NotSchema builds a not combination schema.
func NotSchema(s *Schema) *Schema { return &Schema{Not: s} }

// ConditionalSchema accumulates an if/then/else schema through a small
// chained builder: If(cond).Then(t).Else(e).
type ConditionalSchema struct {
	condition *Schema
	then      *Schema
}

// If starts a conditional schema.
func If(condition *Schema) *ConditionalSchema {
	return &ConditionalSchema{condition: condition}
}

// Then sets the then branch.
func (cs *ConditionalSchema) Then(then *Schema) *ConditionalSchema {
	cs.then = then
	return cs
}

// Else sets the else branch and returns the completed schema.
func (cs *ConditionalSchema) Else(otherwise *Schema) *Schema {
	return &Schema{If: cs.condition, Then: cs.then, Else: otherwise}
}

// ToSchema completes a conditional schema with no else branch.
func (cs *ConditionalSchema) ToSchema() *Schema {
	return &Schema{If: cs.condition, Then: cs.then}
}

// RefTo builds an opaque $ref schema.
func RefTo(ref string) *Schema {
	return &Schema{Ref: ref}
}
