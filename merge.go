package jsonschema

import (
	"math/big"
	"sort"
)

// Merge computes the structural intersection of a and b: the schema
// accepting exactly the instances both accept. It normalizes its operands
// first and returns a fresh, normalized value; True() is the identity and
// False() is the absorbing element.
//
// Keyword pairs that cannot be folded into a single equivalent keyword (two
// unrelated patterns, two unrelated contains schemas, two non-integer
// multipleOf values neither of which divides the other, a recognised format
// next to an unrelated or unrecognised one) are retained side by
// side under allOf rather than approximated away, so the result never
// accepts more than the true intersection.
func Merge(a, b *Schema) *Schema {
	a, b = Normalize(a), Normalize(b)

	if av, ok := a.IsBoolean(); ok {
		if !av {
			return False()
		}
		return b.Clone()
	}
	if bv, ok := b.IsBoolean(); ok {
		if !bv {
			return False()
		}
		return a.Clone()
	}
	if SchemasEqual(a, b) {
		return a.Clone()
	}

	aBase, aAny, aOne := splitApplicators(a)
	bBase, bAny, bOne := splitApplicators(b)

	result, extraAllOf, ok := mergeBase(aBase, bBase)
	if !ok {
		return False()
	}

	if aAny != nil || bAny != nil {
		branches, ok := crossMergeBranches(orTrue(aAny), orTrue(bAny))
		if !ok {
			return False()
		}
		result.AnyOf = branches
	}
	if aOne != nil || bOne != nil {
		branches, ok := crossMergeBranches(orTrue(aOne), orTrue(bOne))
		if !ok {
			return False()
		}
		result.OneOf = branches
	}
	if len(extraAllOf) > 0 {
		result.AllOf = append(result.AllOf, extraAllOf...)
	}

	return Normalize(result)
}

func splitApplicators(s *Schema) (base *Schema, anyOf, oneOf []*Schema) {
	b := *s
	b.AnyOf, b.OneOf = nil, nil
	return &b, s.AnyOf, s.OneOf
}

func orTrue(branches []*Schema) []*Schema {
	if branches == nil {
		return []*Schema{True()}
	}
	return branches
}

// crossMergeBranches distributes merge across two OR-lists: (a1∨a2..)∧(b1∨b2..)
// = ∨ merge(ai,bj), dropping any pair whose merge is ∅. If every pair is ∅
// the distribution itself is unsatisfiable.
func crossMergeBranches(as, bs []*Schema) ([]*Schema, bool) {
	out := make([]*Schema, 0, len(as)*len(bs))
	for _, ai := range as {
		for _, bj := range bs {
			m := Merge(ai, bj)
			if !m.IsFalse() {
				out = append(out, m)
			}
		}
	}
	if len(out) == 0 {
		return nil, false
	}
	return out, true
}

// mergeBase intersects every keyword except anyOf/oneOf (handled by the
// caller's OR-distribution). It returns ok=false on structural
// contradiction, and any leftover constraints (from patterns, contains, or
// applicators) that can't collapse into a single keyword, to be appended to
// the result's allOf.
func mergeBase(a, b *Schema) (result *Schema, extraAllOf []*Schema, ok bool) {
	result = &Schema{}

	if a.ID != "" {
		result.ID = a.ID
	} else {
		result.ID = b.ID
	}
	result.Title = preferFirst(a.Title, b.Title)
	result.Description = preferFirst(a.Description, b.Description)

	if !mergeTypes(a, b, result) {
		return nil, nil, false
	}
	if !mergeConstEnum(a, b, result) {
		return nil, nil, false
	}
	if !mergeNumeric(a, b, result, &extraAllOf) {
		return nil, nil, false
	}
	if !mergeStringKeywords(a, b, result, &extraAllOf) {
		return nil, nil, false
	}
	if !mergeArrayKeywords(a, b, result, &extraAllOf) {
		return nil, nil, false
	}
	if !mergeObjectKeywords(a, b, result) {
		return nil, nil, false
	}

	result.AllOf = append(append([]*Schema(nil), a.AllOf...), b.AllOf...)
	result.Not = mergeNot(a.Not, b.Not, &extraAllOf)
	result.If, result.Then, result.Else = mergeConditional(a, b, &extraAllOf)

	return result, extraAllOf, true
}

func preferFirst(a, b *string) *string {
	if a != nil {
		return a
	}
	return b
}

func mergeTypes(a, b *Schema, result *Schema) bool {
	switch {
	case len(a.Type) == 0:
		result.Type = append(SchemaType(nil), b.Type...)
	case len(b.Type) == 0:
		result.Type = append(SchemaType(nil), a.Type...)
	default:
		inter := IntersectStrings(a.Type, b.Type)
		if len(inter) == 0 {
			return false
		}
		result.Type = SchemaType(inter)
	}
	return true
}

func mergeConstEnum(a, b *Schema, result *Schema) bool {
	switch {
	case a.Const != nil && a.Const.IsSet && b.Const != nil && b.Const.IsSet:
		if !DeepEqual(a.Const.Value, b.Const.Value) {
			return false
		}
		result.Const = NewConst(a.Const.Value)
	case a.Const != nil && a.Const.IsSet:
		if !enumAccepts(b.Enum, a.Const.Value) {
			return false
		}
		result.Const = NewConst(a.Const.Value)
	case b.Const != nil && b.Const.IsSet:
		if !enumAccepts(a.Enum, b.Const.Value) {
			return false
		}
		result.Const = NewConst(b.Const.Value)
	case a.Enum != nil && b.Enum != nil:
		inter := make([]any, 0, len(a.Enum))
		for _, v := range a.Enum {
			if enumAccepts(b.Enum, v) {
				inter = append(inter, v)
			}
		}
		if len(inter) == 0 {
			return false
		}
		result.Enum = inter
	case a.Enum != nil:
		result.Enum = append([]any(nil), a.Enum...)
	case b.Enum != nil:
		result.Enum = append([]any(nil), b.Enum...)
	}
	return true
}

func enumAccepts(enum []any, v any) bool {
	if enum == nil {
		return true
	}
	for _, e := range enum {
		if DeepEqual(e, v) {
			return true
		}
	}
	return false
}

func mergeNumeric(a, b *Schema, result *Schema, extraAllOf *[]*Schema) bool {
	result.Minimum = tighterLowerBound(a.Minimum, b.Minimum)
	result.Maximum = tighterUpperBound(a.Maximum, b.Maximum)
	result.ExclusiveMinimum = tighterLowerBound(a.ExclusiveMinimum, b.ExclusiveMinimum)
	result.ExclusiveMaximum = tighterUpperBound(a.ExclusiveMaximum, b.ExclusiveMaximum)

	if result.Minimum != nil && result.Maximum != nil && result.Minimum.Cmp(result.Maximum.Rat) > 0 {
		return false
	}

	switch {
	case a.MultipleOf == nil:
		result.MultipleOf = b.MultipleOf.Clone()
	case b.MultipleOf == nil:
		result.MultipleOf = a.MultipleOf.Clone()
	default:
		if lcm, ok := lcmRat(a.MultipleOf, b.MultipleOf); ok {
			result.MultipleOf = lcm
		} else {
			// Non-integer operands: when the larger is a multiple of the
			// smaller, the larger alone is exactly the combined constraint;
			// otherwise keep the larger on the keyword and restate the
			// smaller under allOf so both are still enforced.
			hi, lo := a.MultipleOf, b.MultipleOf
			if hi.Cmp(lo.Rat) < 0 {
				hi, lo = lo, hi
			}
			result.MultipleOf = hi.Clone()
			if lo.Sign() != 0 && !new(big.Rat).Quo(hi.Rat, lo.Rat).IsInt() {
				*extraAllOf = append(*extraAllOf, &Schema{MultipleOf: lo.Clone()})
			}
		}
	}
	return true
}

func tighterLowerBound(a, b *Rat) *Rat {
	if a == nil {
		return b.Clone()
	}
	if b == nil {
		return a.Clone()
	}
	if a.Cmp(b.Rat) >= 0 {
		return a.Clone()
	}
	return b.Clone()
}

func tighterUpperBound(a, b *Rat) *Rat {
	if a == nil {
		return b.Clone()
	}
	if b == nil {
		return a.Clone()
	}
	if a.Cmp(b.Rat) <= 0 {
		return a.Clone()
	}
	return b.Clone()
}

func mergeStringKeywords(a, b *Schema, result *Schema, extraAllOf *[]*Schema) bool {
	result.MinLength = maxIntPtr(a.MinLength, b.MinLength)
	result.MaxLength = minIntPtr(a.MaxLength, b.MaxLength)
	if result.MinLength != nil && result.MaxLength != nil && *result.MinLength > *result.MaxLength {
		return false
	}

	switch {
	case a.Pattern == nil:
		result.Pattern = clonePtr(b.Pattern)
	case b.Pattern == nil:
		result.Pattern = clonePtr(a.Pattern)
	case *a.Pattern == *b.Pattern:
		result.Pattern = clonePtr(a.Pattern)
	case IsPatternSubset(*a.Pattern, *b.Pattern):
		result.Pattern = clonePtr(a.Pattern)
	case IsPatternSubset(*b.Pattern, *a.Pattern):
		result.Pattern = clonePtr(b.Pattern)
	default:
		// Neither pattern is provably narrower: an instance must satisfy
		// both regexes, which Draft 7 has no single keyword for. Keep one
		// on the keyword itself and push the other into allOf so both are
		// still enforced.
		result.Pattern = clonePtr(a.Pattern)
		p := *b.Pattern
		*extraAllOf = append(*extraAllOf, &Schema{Pattern: &p})
	}

	switch {
	case a.Format == nil:
		result.Format = clonePtr(b.Format)
	case b.Format == nil:
		result.Format = clonePtr(a.Format)
	case *a.Format == *b.Format:
		result.Format = clonePtr(a.Format)
	case HasFormatConflict(*a.Format, *b.Format):
		return false
	case IsFormatSubtype(*a.Format, *b.Format) || IsFormatSubtype(*b.Format, *a.Format):
		f := MoreSpecificFormat(*a.Format, *b.Format)
		result.Format = &f
	default:
		// No known relation between the two (at least one is unrecognised):
		// keep a's on the keyword and restate b's under allOf so both are
		// still enforced.
		result.Format = clonePtr(a.Format)
		f := *b.Format
		*extraAllOf = append(*extraAllOf, &Schema{Format: &f})
	}

	result.ContentMediaType = preferFirst(a.ContentMediaType, b.ContentMediaType)
	result.ContentEncoding = preferFirst(a.ContentEncoding, b.ContentEncoding)
	return true
}

func maxIntPtr(a, b *int) *int {
	if a == nil {
		return clonePtr(b)
	}
	if b == nil {
		return clonePtr(a)
	}
	if *a >= *b {
		return clonePtr(a)
	}
	return clonePtr(b)
}

func minIntPtr(a, b *int) *int {
	if a == nil {
		return clonePtr(b)
	}
	if b == nil {
		return clonePtr(a)
	}
	if *a <= *b {
		return clonePtr(a)
	}
	return clonePtr(b)
}

func mergeArrayKeywords(a, b *Schema, result *Schema, extraAllOf *[]*Schema) bool {
	result.MinItems = maxIntPtr(a.MinItems, b.MinItems)
	result.MaxItems = minIntPtr(a.MaxItems, b.MaxItems)
	if result.MinItems != nil && result.MaxItems != nil && *result.MinItems > *result.MaxItems {
		return false
	}
	if (a.UniqueItems != nil && *a.UniqueItems) || (b.UniqueItems != nil && *b.UniqueItems) {
		t := true
		result.UniqueItems = &t
	}

	items, additional, ok := mergeItems(a, b)
	if !ok {
		return false
	}
	result.Items = items
	result.AdditionalItems = additional

	switch {
	case a.Contains == nil:
		result.Contains = b.Contains.Clone()
	case b.Contains == nil:
		result.Contains = a.Contains.Clone()
	case SchemasEqual(a.Contains, b.Contains):
		result.Contains = a.Contains.Clone()
	default:
		// Draft 7 allows only one "contains"; requiring the array to hold an
		// element matching both a.Contains and b.Contains independently is
		// expressed by keeping one on the keyword and restating the other
		// under allOf.
		result.Contains = a.Contains.Clone()
		*extraAllOf = append(*extraAllOf, &Schema{Contains: b.Contains.Clone()})
	}
	return true
}

func mergeItems(a, b *Schema) (items *Items, additional *Schema, ok bool) {
	if a.Items == nil && b.Items == nil {
		return nil, mergeAdditional(a.AdditionalItems, b.AdditionalItems), true
	}
	if a.Items == nil {
		return b.Items, b.AdditionalItems.Clone(), true
	}
	if b.Items == nil {
		return a.Items, a.AdditionalItems.Clone(), true
	}

	if !a.Items.IsTuple() && !b.Items.IsTuple() {
		return &Items{Single: Merge(a.Items.Single, b.Items.Single)}, mergeAdditional(a.AdditionalItems, b.AdditionalItems), true
	}

	// At least one side is a tuple: merge position-by-position, using the
	// other side's per-position schema (its own tuple entry, or its single
	// schema, or its additionalItems beyond its own tuple length).
	aTuple, aExtra := tupleView(a)
	bTuple, bExtra := tupleView(b)
	n := len(aTuple)
	if len(bTuple) > n {
		n = len(bTuple)
	}
	merged := make([]*Schema, n)
	for i := 0; i < n; i++ {
		merged[i] = Merge(positionSchema(aTuple, aExtra, i), positionSchema(bTuple, bExtra, i))
	}
	return &Items{Tuple: merged}, mergeAdditional(aExtra, bExtra), true
}

func tupleView(s *Schema) ([]*Schema, *Schema) {
	if s.Items.IsTuple() {
		return s.Items.Tuple, s.AdditionalItems
	}
	return nil, s.Items.Single
}

func positionSchema(tuple []*Schema, extra *Schema, i int) *Schema {
	if i < len(tuple) {
		return tuple[i]
	}
	return extra
}

func mergeAdditional(a, b *Schema) *Schema {
	if a == nil {
		return b.Clone()
	}
	if b == nil {
		return a.Clone()
	}
	return Merge(a, b)
}

func mergeObjectKeywords(a, b *Schema, result *Schema) bool {
	result.Required = SortedStrings(UnionStrings(a.Required, b.Required))
	result.MinProperties = maxIntPtr(a.MinProperties, b.MinProperties)
	result.MaxProperties = minIntPtr(a.MaxProperties, b.MaxProperties)
	if result.MinProperties != nil && result.MaxProperties != nil && *result.MinProperties > *result.MaxProperties {
		return false
	}

	names := map[string]struct{}{}
	if a.Properties != nil {
		for k := range *a.Properties {
			names[k] = struct{}{}
		}
	}
	if b.Properties != nil {
		for k := range *b.Properties {
			names[k] = struct{}{}
		}
	}
	if len(names) > 0 {
		props := make(SchemaMap, len(names))
		for name := range names {
			props[name] = Merge(effectiveProperty(a, name), effectiveProperty(b, name))
		}
		result.Properties = &props
	}

	patterns := map[string]struct{}{}
	if a.PatternProperties != nil {
		for k := range *a.PatternProperties {
			patterns[k] = struct{}{}
		}
	}
	if b.PatternProperties != nil {
		for k := range *b.PatternProperties {
			patterns[k] = struct{}{}
		}
	}
	if len(patterns) > 0 {
		pp := make(SchemaMap, len(patterns))
		for pat := range patterns {
			var av, bv *Schema
			if a.PatternProperties != nil {
				av = (*a.PatternProperties)[pat]
			}
			if b.PatternProperties != nil {
				bv = (*b.PatternProperties)[pat]
			}
			switch {
			case av == nil:
				pp[pat] = bv.Clone()
			case bv == nil:
				pp[pat] = av.Clone()
			default:
				pp[pat] = Merge(av, bv)
			}
		}
		result.PatternProperties = &pp
	}

	result.AdditionalProperties = mergeAdditional(a.AdditionalProperties, b.AdditionalProperties)

	switch {
	case a.PropertyNames == nil:
		result.PropertyNames = b.PropertyNames.Clone()
	case b.PropertyNames == nil:
		result.PropertyNames = a.PropertyNames.Clone()
	default:
		result.PropertyNames = Merge(a.PropertyNames, b.PropertyNames)
	}

	deps, ok := mergeDependencies(a.Dependencies, b.Dependencies)
	if !ok {
		return false
	}
	result.Dependencies = deps

	if hasRequiredConflict(result) {
		return false
	}
	return true
}

// hasRequiredConflict reports whether the merged object schema demands a
// property that can never be satisfied: a name in Required whose effective
// schema (its own entry, a matching patternProperties entry, or
// additionalProperties) is ∅. This catches cases like requiring "a" while
// additionalProperties is false and "a" has no properties entry, or two
// operands whose property schemas for the same name merge to ∅.
func hasRequiredConflict(result *Schema) bool {
	for _, name := range result.Required {
		if effectiveProperty(result, name).IsFalse() {
			return true
		}
	}
	return false
}

// effectiveProperty returns the schema s applies to property name: its
// explicit entry, the merge of every matching patternProperties entry, or
// additionalProperties (defaulting to the universal schema).
func effectiveProperty(s *Schema, name string) *Schema {
	if s.Properties != nil {
		if v, ok := (*s.Properties)[name]; ok {
			return v
		}
	}
	if s.PatternProperties != nil {
		patterns := make([]string, 0, len(*s.PatternProperties))
		for p := range *s.PatternProperties {
			patterns = append(patterns, p)
		}
		sort.Strings(patterns)
		var merged *Schema
		for _, p := range patterns {
			if matchesPattern(p, name) {
				sub := (*s.PatternProperties)[p]
				if merged == nil {
					merged = sub
				} else {
					merged = Merge(merged, sub)
				}
			}
		}
		if merged != nil {
			return merged
		}
	}
	if s.AdditionalProperties != nil {
		return s.AdditionalProperties
	}
	return True()
}

func matchesPattern(pattern, s string) bool {
	re, err := compileCached(pattern)
	return err == nil && re.MatchString(s)
}

func mergeDependencies(a, b map[string]*Dependency) (map[string]*Dependency, bool) {
	if a == nil && b == nil {
		return nil, true
	}
	keys := map[string]struct{}{}
	for k := range a {
		keys[k] = struct{}{}
	}
	for k := range b {
		keys[k] = struct{}{}
	}
	out := make(map[string]*Dependency, len(keys))
	for k := range keys {
		av, bv := a[k], b[k]
		switch {
		case av == nil:
			out[k] = bv
		case bv == nil:
			out[k] = av
		case !av.IsSchemaForm() && !bv.IsSchemaForm():
			out[k] = &Dependency{Properties: SortedStrings(UnionStrings(av.Properties, bv.Properties))}
		default:
			out[k] = &Dependency{Schema: Merge(av.AsSchema(), bv.AsSchema())}
		}
	}
	return out, true
}

func mergeNot(a, b *Schema, extraAllOf *[]*Schema) *Schema {
	switch {
	case a == nil:
		return b.Clone()
	case b == nil:
		return a.Clone()
	case SchemasEqual(a, b):
		return a.Clone()
	default:
		// not(a) ∧ not(b) has no single-keyword equivalent in general; keep
		// one on "not" and restate the other as a further not under allOf.
		*extraAllOf = append(*extraAllOf, &Schema{Not: b.Clone()})
		return a.Clone()
	}
}

func mergeConditional(a, b *Schema, extraAllOf *[]*Schema) (ifS, thenS, elseS *Schema) {
	if a.If == nil {
		return b.If.Clone(), b.Then.Clone(), b.Else.Clone()
	}
	if b.If == nil {
		return a.If.Clone(), a.Then.Clone(), a.Else.Clone()
	}
	if SchemasEqual(a.If, b.If) {
		return a.If.Clone(), mergeAdditional(a.Then, b.Then), mergeAdditional(a.Else, b.Else)
	}
	// Two different conditionals can't collapse into a single if/then/else;
	// keep a's on the keyword itself and restate b's as an allOf branch so
	// ResolveConditions still sees and resolves it.
	*extraAllOf = append(*extraAllOf, &Schema{If: b.If.Clone(), Then: b.Then.Clone(), Else: b.Else.Clone()})
	return a.If.Clone(), a.Then.Clone(), a.Else.Clone()
}
