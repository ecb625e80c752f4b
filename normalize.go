package jsonschema

import "reflect"

// Normalize rewrites s into a canonical form without changing the set of
// instances it accepts. It is idempotent: Normalize(Normalize(s)) is
// structurally equal (SchemasEqual) to Normalize(s). Every operation in this
// package that needs to compare or combine schemas normalizes its operands
// first.
//
// Normalize never mutates s; it returns a fresh value built through Clone.
func Normalize(s *Schema) *Schema {
	if s == nil {
		return nil
	}
	if _, ok := s.IsBoolean(); ok {
		return s.Clone()
	}

	out := s.Clone()

	if contradiction := reconcileConstAndEnum(out); contradiction {
		return False()
	}
	collapseSingletonEnum(out)
	if contradiction := narrowTypeFromConst(out); contradiction {
		return False()
	}
	inferTypeFromEnum(out)

	normalizeChildren(out)

	if isPureNotWrapper(out) && isPureNotWrapper(out.Not) {
		return out.Not.Not
	}

	out.Type = dedupeStrings(out.Type)
	out.Required = dedupeStrings(out.Required)

	return out
}

// reconcileConstAndEnum handles coexisting const/enum: the instance must
// satisfy both, so enum collapses to whichever of its members equals const.
// If none do, the schema is a structural contradiction (∅).
func reconcileConstAndEnum(out *Schema) (contradiction bool) {
	if out.Const == nil || !out.Const.IsSet || out.Enum == nil {
		return false
	}
	for _, v := range out.Enum {
		if DeepEqual(v, out.Const.Value) {
			out.Enum = nil
			return false
		}
	}
	return true
}

// collapseSingletonEnum rewrites a one-element enum as the equivalent const,
// the two are interchangeable in that case, and const is the
// more specific keyword.
func collapseSingletonEnum(out *Schema) {
	if len(out.Enum) == 1 && (out.Const == nil || !out.Const.IsSet) {
		out.Const = NewConst(out.Enum[0])
		out.Enum = nil
	}
}

// narrowTypeFromConst derives or narrows "type" from a present const: the
// instance's type is pinned exactly to const's JSON type. If an explicit
// type was already present and disagrees, the schema accepts nothing.
func narrowTypeFromConst(out *Schema) (contradiction bool) {
	if out.Const == nil || !out.Const.IsSet {
		return false
	}
	t := jsonTypeOf(out.Const.Value)
	if len(out.Type) == 0 {
		out.Type = SchemaType{t}
		return false
	}
	if out.Type.Has(t) {
		out.Type = SchemaType{t}
		return false
	}
	return true
}

// inferTypeFromEnum sets "type" when every enum member shares a single JSON
// type and no explicit type was given.
func inferTypeFromEnum(out *Schema) {
	if len(out.Type) != 0 || len(out.Enum) == 0 {
		return
	}
	t := jsonTypeOf(out.Enum[0])
	for _, v := range out.Enum[1:] {
		if jsonTypeOf(v) != t {
			return
		}
	}
	out.Type = SchemaType{t}
}

// normalizeChildren recurses normalization into every nested schema
// position. definitions/$defs are deliberately excluded: they are templates
// reached only through $ref, which this package does not resolve, so
// normalizing their contents would have no observable effect on the schemas
// this package actually evaluates.
func normalizeChildren(out *Schema) {
	if out.Properties != nil {
		for k, v := range *out.Properties {
			(*out.Properties)[k] = Normalize(v)
		}
	}
	if out.PatternProperties != nil {
		for k, v := range *out.PatternProperties {
			(*out.PatternProperties)[k] = Normalize(v)
		}
	}
	out.AdditionalProperties = Normalize(out.AdditionalProperties)
	out.PropertyNames = Normalize(out.PropertyNames)

	if out.Items != nil {
		if out.Items.IsTuple() {
			for i, v := range out.Items.Tuple {
				out.Items.Tuple[i] = Normalize(v)
			}
		} else {
			out.Items.Single = Normalize(out.Items.Single)
		}
	}
	out.AdditionalItems = Normalize(out.AdditionalItems)
	out.Contains = Normalize(out.Contains)

	out.AllOf = normalizeSlice(out.AllOf)
	out.AnyOf = normalizeSlice(out.AnyOf)
	out.OneOf = normalizeSlice(out.OneOf)
	out.Not = Normalize(out.Not)
	out.If = Normalize(out.If)
	out.Then = Normalize(out.Then)
	out.Else = Normalize(out.Else)

	for _, d := range out.Dependencies {
		if d.IsSchemaForm() {
			d.Schema = Normalize(d.Schema)
		}
	}
}

func normalizeSlice(in []*Schema) []*Schema {
	if in == nil {
		return nil
	}
	out := make([]*Schema, len(in))
	for i, v := range in {
		out[i] = Normalize(v)
	}
	return out
}

// isPureNotWrapper reports whether s is exactly {not: X} with no other
// keywords: the shape the double-negation collapse requires at both levels,
// since a not(not(X)) with extra keywords alongside needs the merge engine
// (not normalization alone) to absorb X's constraints correctly.
func isPureNotWrapper(s *Schema) bool {
	if s == nil || s.Boolean != nil || s.Not == nil {
		return false
	}
	probe := *s
	probe.Not = nil
	return reflect.DeepEqual(probe, Schema{})
}

func dedupeStrings(ss []string) []string {
	if ss == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(ss))
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}

// jsonTypeOf returns the Draft 7 primitive type tag of a decoded JSON value.
func jsonTypeOf(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		if n, ok := asNumber(t); ok {
			if n.IsInt() {
				return "integer"
			}
			return "number"
		}
		return "object"
	}
}
