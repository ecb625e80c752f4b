package jsonschema

// Keyword applies one Draft 7 keyword to a schema under construction. It
// composes with Object/String/Integer/Number/Array/Any (constructor.go) the
// way functional-options builders compose validation onto a Schema value.
type Keyword func(*Schema)

// ===== string keywords =====

func MinLen(min int) Keyword { return func(s *Schema) { s.MinLength = &min } }
func MaxLen(max int) Keyword { return func(s *Schema) { s.MaxLength = &max } }
func WithPattern(pattern string) Keyword { return func(s *Schema) { s.Pattern = &pattern } }
func WithFormat(format string) Keyword   { return func(s *Schema) { s.Format = &format } }

// ===== number keywords =====

func Min(min float64) Keyword          { return func(s *Schema) { s.Minimum = NewRat(min) } }
func Max(max float64) Keyword          { return func(s *Schema) { s.Maximum = NewRat(max) } }
func ExclusiveMin(min float64) Keyword { return func(s *Schema) { s.ExclusiveMinimum = NewRat(min) } }
func ExclusiveMax(max float64) Keyword { return func(s *Schema) { s.ExclusiveMaximum = NewRat(max) } }
func MultipleOfValue(n float64) Keyword { return func(s *Schema) { s.MultipleOf = NewRat(n) } }

// ===== array keywords =====

func ItemsOf(item *Schema) Keyword { return func(s *Schema) { s.Items = &Items{Single: item} } }
func TupleOf(items ...*Schema) Keyword {
	return func(s *Schema) { s.Items = &Items{Tuple: items} }
}
func AdditionalItemsOf(schema *Schema) Keyword {
	return func(s *Schema) { s.AdditionalItems = schema }
}
func MinItemsOf(min int) Keyword      { return func(s *Schema) { s.MinItems = &min } }
func MaxItemsOf(max int) Keyword      { return func(s *Schema) { s.MaxItems = &max } }
func UniqueItemsOf(unique bool) Keyword { return func(s *Schema) { s.UniqueItems = &unique } }
func ContainsOf(schema *Schema) Keyword { return func(s *Schema) { s.Contains = schema } }

// ===== object keywords =====

func PatternPropertiesOf(entries map[string]*Schema) Keyword {
	return func(s *Schema) {
		m := SchemaMap(entries)
		s.PatternProperties = &m
	}
}
func AdditionalPropertiesOf(schema *Schema) Keyword {
	return func(s *Schema) { s.AdditionalProperties = schema }
}
func RequiredOf(names ...string) Keyword { return func(s *Schema) { s.Required = names } }
func MinPropertiesOf(min int) Keyword    { return func(s *Schema) { s.MinProperties = &min } }
func MaxPropertiesOf(max int) Keyword    { return func(s *Schema) { s.MaxProperties = &max } }
func PropertyNamesOf(schema *Schema) Keyword {
	return func(s *Schema) { s.PropertyNames = schema }
}
func DependentRequired(key string, props ...string) Keyword {
	return func(s *Schema) {
		if s.Dependencies == nil {
			s.Dependencies = make(map[string]*Dependency)
		}
		s.Dependencies[key] = &Dependency{Properties: props}
	}
}
func DependentSchema(key string, schema *Schema) Keyword {
	return func(s *Schema) {
		if s.Dependencies == nil {
			s.Dependencies = make(map[string]*Dependency)
		}
		s.Dependencies[key] = &Dependency{Schema: schema}
	}
}

// ===== metadata keywords =====

func WithTitle(title string) Keyword             { return func(s *Schema) { s.Title = &title } }
func WithDescription(desc string) Keyword        { return func(s *Schema) { s.Description = &desc } }
func WithDefault(value interface{}) Keyword {
	return func(s *Schema) { s.Default = value; s.HasDefault = true }
}
func ReadOnlyFlag(v bool) Keyword  { return func(s *Schema) { s.ReadOnly = &v } }
func WriteOnlyFlag(v bool) Keyword { return func(s *Schema) { s.WriteOnly = &v } }
