package jsonschema

// SchemasEqual reports whether a and b are structurally identical Draft 7
// schema values: same keywords, same nested schemas, independent of map
// iteration order. It is the comparison the subset oracle uses for its
// identity short-circuit and that the normalizer's idempotence
// property relies on.
//
// SchemasEqual does not normalize its arguments; callers compare normalized
// forms when they want semantic rather than syntactic equality.
func SchemasEqual(a, b *Schema) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if ab, aok := a.IsBoolean(); aok {
		bb, bok := b.IsBoolean()
		return bok && ab == bb
	}
	if _, bok := b.IsBoolean(); bok {
		return false
	}

	switch {
	case a.Ref != b.Ref,
		a.ID != b.ID,
		a.SchemaURI != b.SchemaURI,
		a.Comment != b.Comment:
		return false
	}
	if !strPtrEqual(a.Title, b.Title) || !strPtrEqual(a.Description, b.Description) {
		return false
	}
	if a.HasDefault != b.HasDefault || (a.HasDefault && !DeepEqual(a.Default, b.Default)) {
		return false
	}
	if !anySliceEqual(a.Examples, b.Examples) {
		return false
	}
	if !schemaValMapEqual(a.Definitions, b.Definitions) || !schemaValMapEqual(a.Defs, b.Defs) {
		return false
	}
	if !strPtrEqual(a.ContentMediaType, b.ContentMediaType) || !strPtrEqual(a.ContentEncoding, b.ContentEncoding) {
		return false
	}
	if !boolPtrEqual(a.ReadOnly, b.ReadOnly) || !boolPtrEqual(a.WriteOnly, b.WriteOnly) {
		return false
	}

	if !stringSetEqual(a.Type, b.Type) {
		return false
	}
	if !constEqual(a.Const, b.Const) {
		return false
	}
	if !anySliceEqual(a.Enum, b.Enum) {
		return false
	}

	if !a.MultipleOf.Equal(b.MultipleOf) || !a.Minimum.Equal(b.Minimum) || !a.Maximum.Equal(b.Maximum) ||
		!a.ExclusiveMinimum.Equal(b.ExclusiveMinimum) || !a.ExclusiveMaximum.Equal(b.ExclusiveMaximum) {
		return false
	}

	if !intPtrEqual(a.MinLength, b.MinLength) || !intPtrEqual(a.MaxLength, b.MaxLength) {
		return false
	}
	if !strPtrEqual(a.Pattern, b.Pattern) || !strPtrEqual(a.Format, b.Format) {
		return false
	}

	if !itemsEqual(a.Items, b.Items) {
		return false
	}
	if !SchemasEqual(a.AdditionalItems, b.AdditionalItems) {
		return false
	}
	if !intPtrEqual(a.MinItems, b.MinItems) || !intPtrEqual(a.MaxItems, b.MaxItems) {
		return false
	}
	if !boolPtrEqual(a.UniqueItems, b.UniqueItems) {
		return false
	}
	if !SchemasEqual(a.Contains, b.Contains) {
		return false
	}

	if !schemaMapEqual(a.Properties, b.Properties) || !schemaMapEqual(a.PatternProperties, b.PatternProperties) {
		return false
	}
	if !SchemasEqual(a.AdditionalProperties, b.AdditionalProperties) {
		return false
	}
	if !stringSetEqual(a.Required, b.Required) {
		return false
	}
	if !intPtrEqual(a.MinProperties, b.MinProperties) || !intPtrEqual(a.MaxProperties, b.MaxProperties) {
		return false
	}
	if !SchemasEqual(a.PropertyNames, b.PropertyNames) {
		return false
	}
	if !dependenciesEqual(a.Dependencies, b.Dependencies) {
		return false
	}

	if !schemaSliceEqual(a.AllOf, b.AllOf) || !schemaSliceEqual(a.AnyOf, b.AnyOf) || !schemaSliceEqual(a.OneOf, b.OneOf) {
		return false
	}
	if !SchemasEqual(a.Not, b.Not) || !SchemasEqual(a.If, b.If) || !SchemasEqual(a.Then, b.Then) || !SchemasEqual(a.Else, b.Else) {
		return false
	}

	if !DeepEqual(extraAsAny(a.Extra), extraAsAny(b.Extra)) {
		return false
	}

	return true
}

func extraAsAny(m map[string]any) any {
	if m == nil {
		return map[string]any{}
	}
	return m
}

func strPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func boolPtrEqual(a, b *bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func constEqual(a, b *ConstValue) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.IsSet != b.IsSet {
		return false
	}
	if !a.IsSet {
		return true
	}
	return DeepEqual(a.Value, b.Value)
}

func anySliceEqual(a, b []any) bool {
	if a == nil || b == nil {
		return len(a) == 0 && len(b) == 0 && (a == nil) == (b == nil)
	}
	return DeepEqual([]any(a), []any(b))
}

// stringSetEqual compares two string slices as sets with stable semantics:
// both present-but-empty and absent are distinguished by callers that care
// (e.g. required); here we compare contents only, which is what every
// Draft 7 set-valued keyword (type, required) needs.
func stringSetEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	sa, sb := SortedStrings(a), SortedStrings(b)
	for i := range sa {
		if sa[i] != sb[i] {
			return false
		}
	}
	return true
}

func schemaSliceEqual(a, b []*Schema) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !SchemasEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func schemaMapEqual(a, b *SchemaMap) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if len(*a) != len(*b) {
		return false
	}
	for k, v := range *a {
		bv, ok := (*b)[k]
		if !ok || !SchemasEqual(v, bv) {
			return false
		}
	}
	return true
}

func schemaValMapEqual(a, b map[string]*Schema) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		bv, ok := b[k]
		if !ok || !SchemasEqual(v, bv) {
			return false
		}
	}
	return true
}

func itemsEqual(a, b *Items) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.IsTuple() != b.IsTuple() {
		return false
	}
	if a.IsTuple() {
		return schemaSliceEqual(a.Tuple, b.Tuple)
	}
	return SchemasEqual(a.Single, b.Single)
}

func dependenciesEqual(a, b map[string]*Dependency) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok {
			return false
		}
		if av.IsSchemaForm() != bv.IsSchemaForm() {
			return false
		}
		if av.IsSchemaForm() {
			if !SchemasEqual(av.Schema, bv.Schema) {
				return false
			}
			continue
		}
		if !stringSetEqual(av.Properties, bv.Properties) {
			return false
		}
	}
	return true
}
