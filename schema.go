// Package jsonschema implements a Draft 7 JSON Schema structural-compatibility
// algebra: normalization, intersection (merge), subset/equality, diffing and
// data-driven if/then/else resolution. It does not validate instances against
// schemas in the general sense; see doc.go for the package's scope.
package jsonschema

import (
	"bytes"
	"reflect"
	"sort"

	"github.com/goccy/go-json"
)

// knownSchemaFields lists every Draft 7 keyword this package interprets.
// Anything else found on an incoming object lands in Schema.Extra and is
// treated as an opaque keyword: preserved verbatim, compared for equality,
// never given semantic weight.
var knownSchemaFields = map[string]struct{}{
	"$id": {}, "$schema": {}, "$comment": {}, "$ref": {},
	"title": {}, "description": {}, "default": {}, "examples": {},
	"definitions": {}, "$defs": {},
	"contentMediaType": {}, "contentEncoding": {}, "readOnly": {}, "writeOnly": {},

	"type": {}, "const": {}, "enum": {},

	"multipleOf": {}, "minimum": {}, "maximum": {}, "exclusiveMinimum": {}, "exclusiveMaximum": {},

	"minLength": {}, "maxLength": {}, "pattern": {}, "format": {},

	"items": {}, "additionalItems": {}, "minItems": {}, "maxItems": {}, "uniqueItems": {}, "contains": {},

	"properties": {}, "patternProperties": {}, "additionalProperties": {},
	"required": {}, "minProperties": {}, "maxProperties": {}, "propertyNames": {}, "dependencies": {},

	"allOf": {}, "anyOf": {}, "oneOf": {}, "not": {}, "if": {}, "then": {}, "else": {},
}

// Schema is a Draft 7 JSON Schema value: either a boolean (true accepts
// everything, false rejects everything) or a keyword map. When Boolean is
// non-nil every other field is meaningless and ignored.
//
// Schema values are treated as immutable by every operation in this package:
// normalize, merge (intersect), diff and resolve all return fresh values (see
// Clone) rather than mutating their arguments.
type Schema struct {
	Boolean *bool `json:"-"`

	// Reference, preserved opaquely. $ref is never resolved by this package.
	Ref string `json:"$ref,omitempty"`

	// Metadata/annotation keywords. They carry no validation semantics but
	// are preserved through normalize/merge and compared for equality by
	// the diff engine when present on both operands.
	ID               string             `json:"$id,omitempty"`
	SchemaURI        string             `json:"$schema,omitempty"`
	Comment          string             `json:"$comment,omitempty"`
	Title            *string            `json:"title,omitempty"`
	Description      *string            `json:"description,omitempty"`
	Default          any                `json:"default,omitempty"`
	HasDefault       bool               `json:"-"`
	Examples         []any              `json:"examples,omitempty"`
	Definitions      map[string]*Schema `json:"definitions,omitempty"`
	Defs             map[string]*Schema `json:"$defs,omitempty"`
	ContentMediaType *string            `json:"contentMediaType,omitempty"`
	ContentEncoding  *string            `json:"contentEncoding,omitempty"`
	ReadOnly         *bool              `json:"readOnly,omitempty"`
	WriteOnly        *bool              `json:"writeOnly,omitempty"`

	// Assertion keywords.
	Type  SchemaType  `json:"type,omitempty"`
	Const *ConstValue `json:"const,omitempty"`
	Enum  []any       `json:"enum,omitempty"`

	MultipleOf       *Rat `json:"multipleOf,omitempty"`
	Minimum          *Rat `json:"minimum,omitempty"`
	Maximum          *Rat `json:"maximum,omitempty"`
	ExclusiveMinimum *Rat `json:"exclusiveMinimum,omitempty"`
	ExclusiveMaximum *Rat `json:"exclusiveMaximum,omitempty"`

	MinLength *int    `json:"minLength,omitempty"`
	MaxLength *int    `json:"maxLength,omitempty"`
	Pattern   *string `json:"pattern,omitempty"`
	Format    *string `json:"format,omitempty"`

	Items           *Items  `json:"-"`
	AdditionalItems *Schema `json:"additionalItems,omitempty"`
	MinItems        *int    `json:"minItems,omitempty"`
	MaxItems        *int    `json:"maxItems,omitempty"`
	UniqueItems     *bool   `json:"uniqueItems,omitempty"`
	Contains        *Schema `json:"contains,omitempty"`

	Properties           *SchemaMap             `json:"properties,omitempty"`
	PatternProperties    *SchemaMap             `json:"patternProperties,omitempty"`
	AdditionalProperties *Schema                `json:"additionalProperties,omitempty"`
	Required             []string               `json:"required,omitempty"`
	MinProperties        *int                   `json:"minProperties,omitempty"`
	MaxProperties        *int                   `json:"maxProperties,omitempty"`
	PropertyNames        *Schema                `json:"propertyNames,omitempty"`
	Dependencies         map[string]*Dependency `json:"-"`

	// Applicator keywords.
	AllOf []*Schema `json:"allOf,omitempty"`
	AnyOf []*Schema `json:"anyOf,omitempty"`
	OneOf []*Schema `json:"oneOf,omitempty"`
	Not   *Schema   `json:"not,omitempty"`
	If    *Schema   `json:"if,omitempty"`
	Then  *Schema   `json:"then,omitempty"`
	Else  *Schema   `json:"else,omitempty"`

	// Extra holds unrecognised/opaque keywords, verbatim.
	Extra map[string]any `json:"-"`
}

// SchemaType holds one or more Draft 7 primitive type tags.
type SchemaType []string

// Has reports whether t contains the given primitive tag.
func (t SchemaType) Has(tag string) bool {
	for _, x := range t {
		if x == tag {
			return true
		}
	}
	return false
}

// SchemaMap is a map of property/pattern name to Schema, used for
// "properties" and "patternProperties".
type SchemaMap map[string]*Schema

// Items represents the Draft 7 "items" keyword, which is either a single
// schema applied to every array element, or a tuple of per-position schemas
// (in which case "additionalItems" governs elements past the tuple).
type Items struct {
	Single *Schema
	Tuple  []*Schema
}

// IsTuple reports whether Items describes tuple (positional) validation.
func (i *Items) IsTuple() bool { return i != nil && i.Tuple != nil }

// Dependency represents one value of the Draft 7 "dependencies" keyword:
// either a property-dependency (list of property names that become
// required) or a schema-dependency (a schema the whole instance must also
// satisfy when the dependent key is present).
type Dependency struct {
	Properties []string
	Schema     *Schema
}

// IsSchemaForm reports whether this dependency uses the schema form.
func (d *Dependency) IsSchemaForm() bool { return d != nil && d.Schema != nil }

// AsSchema returns the schema-dependency form equivalent to a
// property-dependency: {required: [...]}. Used by merge/diff when the two
// operands use mixed forms for the same key.
func (d *Dependency) AsSchema() *Schema {
	if d == nil {
		return nil
	}
	if d.Schema != nil {
		return d.Schema
	}
	props := append([]string(nil), d.Properties...)
	sort.Strings(props)
	return &Schema{Required: props}
}

// ConstValue distinguishes "const is absent" from "const is JSON null".
type ConstValue struct {
	Value any
	IsSet bool
}

// NewConst wraps a value as a present const.
func NewConst(v any) *ConstValue { return &ConstValue{Value: v, IsSet: true} }

// True and False are the two boolean schemas, ∅ (False) and the universal
// schema (True).
func True() *Schema {
	b := true
	return &Schema{Boolean: &b}
}

func False() *Schema {
	b := false
	return &Schema{Boolean: &b}
}

// IsBoolean reports whether s is a boolean schema and, if so, its value.
func (s *Schema) IsBoolean() (value bool, ok bool) {
	if s == nil {
		return false, false
	}
	if s.Boolean != nil {
		return *s.Boolean, true
	}
	return false, false
}

// IsFalse reports whether s is the empty schema ∅.
func (s *Schema) IsFalse() bool {
	v, ok := s.IsBoolean()
	return ok && !v
}

// IsTrue reports whether s is the universal schema, including the implicit
// universal schema represented by an empty keyword map ({}).
func (s *Schema) IsTrue() bool {
	if s == nil {
		return true
	}
	if v, ok := s.IsBoolean(); ok {
		return v
	}
	return s.isEmptyKeywordMap()
}

// isEmptyKeywordMap reports whether s carries no keywords at all, i.e. is
// structurally equivalent to {} / true.
func (s *Schema) isEmptyKeywordMap() bool {
	if s == nil || s.Boolean != nil {
		return s == nil
	}
	probe := *s
	probe.Boolean = nil
	return reflect.DeepEqual(probe, Schema{})
}

// MarshalJSON implements deterministic JSON encoding of a Schema value.
func (s *Schema) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}
	if s.Boolean != nil {
		return json.Marshal(*s.Boolean)
	}

	m := make(map[string]any)
	for k, v := range s.Extra {
		m[k] = v
	}

	putStr := func(k string, v *string) {
		if v != nil {
			m[k] = *v
		}
	}
	putBool := func(k string, v *bool) {
		if v != nil {
			m[k] = *v
		}
	}
	putInt := func(k string, v *int) {
		if v != nil {
			m[k] = *v
		}
	}
	putRat := func(k string, v *Rat) {
		if v != nil {
			m[k] = FormatRat(v)
		}
	}
	putSchema := func(k string, v *Schema) {
		if v != nil {
			m[k] = v
		}
	}
	putSchemaSlice := func(k string, v []*Schema) {
		if v != nil {
			m[k] = v
		}
	}

	if s.Ref != "" {
		m["$ref"] = s.Ref
	}
	if s.ID != "" {
		m["$id"] = s.ID
	}
	if s.SchemaURI != "" {
		m["$schema"] = s.SchemaURI
	}
	if s.Comment != "" {
		m["$comment"] = s.Comment
	}
	putStr("title", s.Title)
	putStr("description", s.Description)
	if s.HasDefault {
		m["default"] = s.Default
	}
	if s.Examples != nil {
		m["examples"] = s.Examples
	}
	if s.Definitions != nil {
		m["definitions"] = s.Definitions
	}
	if s.Defs != nil {
		m["$defs"] = s.Defs
	}
	putStr("contentMediaType", s.ContentMediaType)
	putStr("contentEncoding", s.ContentEncoding)
	putBool("readOnly", s.ReadOnly)
	putBool("writeOnly", s.WriteOnly)

	if len(s.Type) == 1 {
		m["type"] = s.Type[0]
	} else if len(s.Type) > 1 {
		m["type"] = []string(s.Type)
	}
	if s.Const != nil && s.Const.IsSet {
		m["const"] = s.Const.Value
	}
	if s.Enum != nil {
		m["enum"] = s.Enum
	}

	putRat("multipleOf", s.MultipleOf)
	putRat("minimum", s.Minimum)
	putRat("maximum", s.Maximum)
	putRat("exclusiveMinimum", s.ExclusiveMinimum)
	putRat("exclusiveMaximum", s.ExclusiveMaximum)

	putInt("minLength", s.MinLength)
	putInt("maxLength", s.MaxLength)
	putStr("pattern", s.Pattern)
	putStr("format", s.Format)

	if s.Items != nil {
		if s.Items.IsTuple() {
			m["items"] = s.Items.Tuple
		} else if s.Items.Single != nil {
			m["items"] = s.Items.Single
		}
	}
	putSchema("additionalItems", s.AdditionalItems)
	putInt("minItems", s.MinItems)
	putInt("maxItems", s.MaxItems)
	putBool("uniqueItems", s.UniqueItems)
	putSchema("contains", s.Contains)

	if s.Properties != nil {
		m["properties"] = map[string]*Schema(*s.Properties)
	}
	if s.PatternProperties != nil {
		m["patternProperties"] = map[string]*Schema(*s.PatternProperties)
	}
	putSchema("additionalProperties", s.AdditionalProperties)
	if s.Required != nil {
		m["required"] = s.Required
	}
	putInt("minProperties", s.MinProperties)
	putInt("maxProperties", s.MaxProperties)
	putSchema("propertyNames", s.PropertyNames)
	if s.Dependencies != nil {
		deps := make(map[string]any, len(s.Dependencies))
		for k, d := range s.Dependencies {
			if d.IsSchemaForm() {
				deps[k] = d.Schema
			} else {
				deps[k] = d.Properties
			}
		}
		m["dependencies"] = deps
	}

	putSchemaSlice("allOf", s.AllOf)
	putSchemaSlice("anyOf", s.AnyOf)
	putSchemaSlice("oneOf", s.OneOf)
	putSchema("not", s.Not)
	putSchema("if", s.If)
	putSchema("then", s.Then)
	putSchema("else", s.Else)

	return json.Marshal(m)
}

// UnmarshalJSON implements Schema decoding, including the boolean-schema
// case and Draft 7's polymorphic "items"/"dependencies" keywords.
func (s *Schema) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return ErrInvalidKeywordShape
	}

	var b bool
	if err := json.Unmarshal(trimmed, &b); err == nil {
		s.Boolean = &b
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return err
	}

	get := func(key string, dst any) error {
		v, ok := raw[key]
		if !ok {
			return nil
		}
		return json.Unmarshal(v, dst)
	}

	if err := get("$ref", &s.Ref); err != nil {
		return err
	}
	if err := get("$id", &s.ID); err != nil {
		return err
	}
	if err := get("$schema", &s.SchemaURI); err != nil {
		return err
	}
	if err := get("$comment", &s.Comment); err != nil {
		return err
	}
	if err := get("title", &s.Title); err != nil {
		return err
	}
	if err := get("description", &s.Description); err != nil {
		return err
	}
	if raw, ok := raw["default"]; ok {
		s.HasDefault = true
		if err := json.Unmarshal(raw, &s.Default); err != nil {
			return err
		}
	}
	if err := get("examples", &s.Examples); err != nil {
		return err
	}
	if err := get("definitions", &s.Definitions); err != nil {
		return err
	}
	if err := get("$defs", &s.Defs); err != nil {
		return err
	}
	if err := get("contentMediaType", &s.ContentMediaType); err != nil {
		return err
	}
	if err := get("contentEncoding", &s.ContentEncoding); err != nil {
		return err
	}
	if err := get("readOnly", &s.ReadOnly); err != nil {
		return err
	}
	if err := get("writeOnly", &s.WriteOnly); err != nil {
		return err
	}

	if raw, ok := raw["type"]; ok {
		if err := unmarshalSchemaType(raw, &s.Type); err != nil {
			return err
		}
	}
	if raw, ok := raw["const"]; ok {
		cv := &ConstValue{IsSet: true}
		if !bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			if err := json.Unmarshal(raw, &cv.Value); err != nil {
				return err
			}
		}
		s.Const = cv
	}
	if raw, ok := raw["enum"]; ok {
		if err := json.Unmarshal(raw, &s.Enum); err != nil {
			return err
		}
		if len(s.Enum) == 0 {
			return &InvalidSchemaError{Keyword: "enum", Err: ErrEmptyEnum}
		}
	}

	for key, dst := range map[string]**Rat{
		"multipleOf": &s.MultipleOf, "minimum": &s.Minimum, "maximum": &s.Maximum,
		"exclusiveMinimum": &s.ExclusiveMinimum, "exclusiveMaximum": &s.ExclusiveMaximum,
	} {
		if raw, ok := raw[key]; ok {
			r := &Rat{}
			if err := r.UnmarshalJSON(raw); err != nil {
				return &InvalidSchemaError{Keyword: key, Err: err}
			}
			*dst = r
		}
	}

	if err := get("minLength", &s.MinLength); err != nil {
		return err
	}
	if err := get("maxLength", &s.MaxLength); err != nil {
		return err
	}
	if err := get("pattern", &s.Pattern); err != nil {
		return err
	}
	if err := get("format", &s.Format); err != nil {
		return err
	}

	if raw, ok := raw["items"]; ok {
		items, err := unmarshalItems(raw)
		if err != nil {
			return err
		}
		s.Items = items
	}
	if err := get("additionalItems", &s.AdditionalItems); err != nil {
		return err
	}
	if err := get("minItems", &s.MinItems); err != nil {
		return err
	}
	if err := get("maxItems", &s.MaxItems); err != nil {
		return err
	}
	if err := get("uniqueItems", &s.UniqueItems); err != nil {
		return err
	}
	if err := get("contains", &s.Contains); err != nil {
		return err
	}

	if err := get("properties", &s.Properties); err != nil {
		return err
	}
	if err := get("patternProperties", &s.PatternProperties); err != nil {
		return err
	}
	if err := get("additionalProperties", &s.AdditionalProperties); err != nil {
		return err
	}
	if err := get("required", &s.Required); err != nil {
		return err
	}
	if err := get("minProperties", &s.MinProperties); err != nil {
		return err
	}
	if err := get("maxProperties", &s.MaxProperties); err != nil {
		return err
	}
	if err := get("propertyNames", &s.PropertyNames); err != nil {
		return err
	}
	if raw, ok := raw["dependencies"]; ok {
		deps, err := unmarshalDependencies(raw)
		if err != nil {
			return err
		}
		s.Dependencies = deps
	}

	if err := get("allOf", &s.AllOf); err != nil {
		return err
	}
	if err := get("anyOf", &s.AnyOf); err != nil {
		return err
	}
	if err := get("oneOf", &s.OneOf); err != nil {
		return err
	}
	if err := get("not", &s.Not); err != nil {
		return err
	}
	if err := get("if", &s.If); err != nil {
		return err
	}
	if err := get("then", &s.Then); err != nil {
		return err
	}
	if err := get("else", &s.Else); err != nil {
		return err
	}

	extra := make(map[string]any)
	for key, raw := range raw {
		if _, known := knownSchemaFields[key]; known {
			continue
		}
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		extra[key] = v
	}
	if len(extra) > 0 {
		s.Extra = extra
	}

	return nil
}

func unmarshalSchemaType(raw json.RawMessage, dst *SchemaType) error {
	valid := func(tag string) bool {
		switch tag {
		case "null", "boolean", "integer", "number", "string", "array", "object":
			return true
		}
		return false
	}
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		if !valid(single) {
			return &InvalidSchemaError{Keyword: "type", Err: ErrInvalidSchemaType}
		}
		*dst = SchemaType{single}
		return nil
	}
	var multi []string
	if err := json.Unmarshal(raw, &multi); err != nil {
		return &InvalidSchemaError{Keyword: "type", Err: ErrInvalidSchemaType}
	}
	for _, tag := range multi {
		if !valid(tag) {
			return &InvalidSchemaError{Keyword: "type", Err: ErrInvalidSchemaType}
		}
	}
	*dst = SchemaType(multi)
	return nil
}

func unmarshalItems(raw json.RawMessage) (*Items, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if trimmed[0] == '[' {
		var tuple []*Schema
		if err := json.Unmarshal(trimmed, &tuple); err != nil {
			return nil, err
		}
		return &Items{Tuple: tuple}, nil
	}
	var single Schema
	if err := json.Unmarshal(trimmed, &single); err != nil {
		return nil, err
	}
	return &Items{Single: &single}, nil
}

func unmarshalDependencies(raw json.RawMessage) (map[string]*Dependency, error) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	result := make(map[string]*Dependency, len(m))
	for k, v := range m {
		trimmed := bytes.TrimSpace(v)
		if len(trimmed) > 0 && trimmed[0] == '[' {
			var props []string
			if err := json.Unmarshal(trimmed, &props); err != nil {
				return nil, err
			}
			result[k] = &Dependency{Properties: props}
			continue
		}
		var sub Schema
		if err := json.Unmarshal(trimmed, &sub); err != nil {
			return nil, err
		}
		result[k] = &Dependency{Schema: &sub}
	}
	return result, nil
}
