package jsonschema

// Clone returns a deep, independent copy of s. Every operation in this
// package (normalize, merge, diff, resolve) builds its result through Clone
// plus field replacement rather than mutating its arguments, so callers can
// safely reuse schema values across calls.
func (s *Schema) Clone() *Schema {
	if s == nil {
		return nil
	}
	if s.Boolean != nil {
		b := *s.Boolean
		return &Schema{Boolean: &b}
	}

	out := &Schema{
		Ref:              s.Ref,
		ID:               s.ID,
		SchemaURI:        s.SchemaURI,
		Comment:          s.Comment,
		Title:            clonePtr(s.Title),
		Description:      clonePtr(s.Description),
		Default:          cloneAny(s.Default),
		HasDefault:       s.HasDefault,
		Examples:         cloneAnySlice(s.Examples),
		ContentMediaType: clonePtr(s.ContentMediaType),
		ContentEncoding:  clonePtr(s.ContentEncoding),
		ReadOnly:         clonePtr(s.ReadOnly),
		WriteOnly:        clonePtr(s.WriteOnly),

		Type: append(SchemaType(nil), s.Type...),
		Enum: cloneAnySlice(s.Enum),

		MultipleOf:       s.MultipleOf.Clone(),
		Minimum:          s.Minimum.Clone(),
		Maximum:          s.Maximum.Clone(),
		ExclusiveMinimum: s.ExclusiveMinimum.Clone(),
		ExclusiveMaximum: s.ExclusiveMaximum.Clone(),

		MinLength: clonePtr(s.MinLength),
		MaxLength: clonePtr(s.MaxLength),
		Pattern:   clonePtr(s.Pattern),
		Format:    clonePtr(s.Format),

		AdditionalItems: s.AdditionalItems.Clone(),
		MinItems:        clonePtr(s.MinItems),
		MaxItems:        clonePtr(s.MaxItems),
		UniqueItems:     clonePtr(s.UniqueItems),
		Contains:        s.Contains.Clone(),

		AdditionalProperties: s.AdditionalProperties.Clone(),
		Required:             append([]string(nil), s.Required...),
		MinProperties:        clonePtr(s.MinProperties),
		MaxProperties:        clonePtr(s.MaxProperties),
		PropertyNames:        s.PropertyNames.Clone(),

		Not:  s.Not.Clone(),
		If:   s.If.Clone(),
		Then: s.Then.Clone(),
		Else: s.Else.Clone(),
	}

	if s.Const != nil {
		out.Const = &ConstValue{Value: cloneAny(s.Const.Value), IsSet: s.Const.IsSet}
	}
	if s.Items != nil {
		out.Items = &Items{Single: s.Items.Single.Clone(), Tuple: cloneSchemaSlice(s.Items.Tuple)}
	}
	out.Properties = cloneSchemaMap(s.Properties)
	out.PatternProperties = cloneSchemaMap(s.PatternProperties)
	out.Definitions = cloneSchemaValMap(s.Definitions)
	out.Defs = cloneSchemaValMap(s.Defs)
	out.AllOf = cloneSchemaSlice(s.AllOf)
	out.AnyOf = cloneSchemaSlice(s.AnyOf)
	out.OneOf = cloneSchemaSlice(s.OneOf)

	if s.Dependencies != nil {
		out.Dependencies = make(map[string]*Dependency, len(s.Dependencies))
		for k, d := range s.Dependencies {
			out.Dependencies[k] = &Dependency{
				Properties: append([]string(nil), d.Properties...),
				Schema:     d.Schema.Clone(),
			}
		}
	}
	if s.Extra != nil {
		out.Extra = make(map[string]any, len(s.Extra))
		for k, v := range s.Extra {
			out.Extra[k] = cloneAny(v)
		}
	}

	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneSchemaSlice(s []*Schema) []*Schema {
	if s == nil {
		return nil
	}
	out := make([]*Schema, len(s))
	for i, v := range s {
		out[i] = v.Clone()
	}
	return out
}

func cloneSchemaMap(m *SchemaMap) *SchemaMap {
	if m == nil {
		return nil
	}
	out := make(SchemaMap, len(*m))
	for k, v := range *m {
		out[k] = v.Clone()
	}
	return &out
}

func cloneSchemaValMap(m map[string]*Schema) map[string]*Schema {
	if m == nil {
		return nil
	}
	out := make(map[string]*Schema, len(m))
	for k, v := range m {
		out[k] = v.Clone()
	}
	return out
}

func cloneAnySlice(s []any) []any {
	if s == nil {
		return nil
	}
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = cloneAny(v)
	}
	return out
}

func cloneAny(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = cloneAny(vv)
		}
		return out
	case []any:
		return cloneAnySlice(t)
	default:
		return v
	}
}
