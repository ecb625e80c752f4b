package jsonschema

import (
	"fmt"
	"sort"
)

// Check compares candidate against target and reports whether candidate is
// structurally compatible with it (candidate ⊆ target), the merged
// (intersected) schema, and where it diverges. Check normalizes both
// operands, then walks normalize(candidate) against normalize(merge(candidate,
// target)) in lockstep: every keyword the merge tightened, dropped, or added
// relative to candidate becomes one diff, tagged changed/removed/added. When
// the merge collapses to ∅ the two schemas share no instance at all, which is
// reported as a single root-level "incompatible" sentinel rather than a
// keyword-by-keyword listing.
func Check(candidate, target *Schema) *CheckResult {
	a, b := Normalize(candidate), Normalize(target)
	merged := Normalize(Merge(a, b))
	subset := IsSubset(a, b)

	result := &CheckResult{IsSubset: subset, Merged: merged}
	if !subset {
		if merged.IsFalse() {
			result.Diffs = []Diff{{Type: "incompatible", Path: "$"}}
		} else {
			result.Diffs = diffSchemas(a, merged, "")
			if len(result.Diffs) == 0 {
				result.Diffs = []Diff{{Type: "incompatible", Path: "$"}}
			}
		}
	}
	return result
}

// diffSchemas compares a against merged - both already normalized, with
// merged ⊆ a - and reports every keyword where merged is more restrictive
// (changed), absent from a entirely (added), or present on a but dropped by
// the merge (removed). Nested applicators recurse so that a change deep
// inside properties/items/etc. is reported at its own path rather than
// bubbling up as a single opaque diff on the parent.
func diffSchemas(a, merged *Schema, path string) []Diff {
	if SchemasEqual(a, merged) {
		return nil
	}
	_, aIsBool := a.IsBoolean()
	_, mIsBool := merged.IsBoolean()
	if aIsBool || mIsBool {
		return []Diff{{Type: "changed", Path: path}}
	}

	var diffs []Diff
	diffs = append(diffs, diffScalarKeywords(a, merged, path)...)
	diffs = append(diffs, diffNestedSchemaKeywords(a, merged, path)...)
	diffs = append(diffs, diffSchemaMaps(a, merged, path)...)
	diffs = append(diffs, diffItemsField(a, merged, path)...)
	diffs = append(diffs, diffApplicatorLists(a, merged, path)...)
	diffs = append(diffs, diffDependenciesField(a, merged, path)...)
	diffs = append(diffs, diffConditional(a, merged, path)...)
	return diffs
}

// kw appends a keyword name to a dot-notation path prefix.
func kw(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

// diffSlot is the generic presence/equality classifier every keyword-level
// diff reduces to: present on both sides and equal is silent, present on
// both and unequal is "changed", present only on merged is "added" (the
// merge tightened this schema with a constraint candidate didn't have), and
// present only on a is "removed" (the merge dropped a constraint candidate
// had - rare, but possible when an approximation widens during merge).
func diffSlot(inA, inMerged, equal bool, path string) []Diff {
	switch {
	case inA && inMerged:
		if equal {
			return nil
		}
		return []Diff{{Type: "changed", Path: path}}
	case inMerged && !inA:
		return []Diff{{Type: "added", Path: path}}
	case inA && !inMerged:
		return []Diff{{Type: "removed", Path: path}}
	default:
		return nil
	}
}

func diffScalarKeywords(a, merged *Schema, path string) []Diff {
	var diffs []Diff

	diffs = append(diffs, diffSlot(a.Title != nil, merged.Title != nil, strPtrEq(a.Title, merged.Title), kw(path, "title"))...)
	diffs = append(diffs, diffSlot(a.Description != nil, merged.Description != nil, strPtrEq(a.Description, merged.Description), kw(path, "description"))...)
	diffs = append(diffs, diffSlot(len(a.Type) > 0, len(merged.Type) > 0, sortedStringsEqual(a.Type, merged.Type), kw(path, "type"))...)
	diffs = append(diffs, diffConstSlot(a, merged, path)...)
	diffs = append(diffs, diffEnumSlot(a, merged, path)...)

	diffs = append(diffs, diffRatSlot(a.Minimum, merged.Minimum, kw(path, "minimum"))...)
	diffs = append(diffs, diffRatSlot(a.Maximum, merged.Maximum, kw(path, "maximum"))...)
	diffs = append(diffs, diffRatSlot(a.ExclusiveMinimum, merged.ExclusiveMinimum, kw(path, "exclusiveMinimum"))...)
	diffs = append(diffs, diffRatSlot(a.ExclusiveMaximum, merged.ExclusiveMaximum, kw(path, "exclusiveMaximum"))...)
	diffs = append(diffs, diffRatSlot(a.MultipleOf, merged.MultipleOf, kw(path, "multipleOf"))...)

	diffs = append(diffs, diffIntSlot(a.MinLength, merged.MinLength, kw(path, "minLength"))...)
	diffs = append(diffs, diffIntSlot(a.MaxLength, merged.MaxLength, kw(path, "maxLength"))...)
	diffs = append(diffs, diffStrSlot(a.Pattern, merged.Pattern, kw(path, "pattern"))...)
	diffs = append(diffs, diffStrSlot(a.Format, merged.Format, kw(path, "format"))...)
	diffs = append(diffs, diffStrSlot(a.ContentMediaType, merged.ContentMediaType, kw(path, "contentMediaType"))...)
	diffs = append(diffs, diffStrSlot(a.ContentEncoding, merged.ContentEncoding, kw(path, "contentEncoding"))...)

	diffs = append(diffs, diffIntSlot(a.MinItems, merged.MinItems, kw(path, "minItems"))...)
	diffs = append(diffs, diffIntSlot(a.MaxItems, merged.MaxItems, kw(path, "maxItems"))...)
	diffs = append(diffs, diffBoolSlot(a.UniqueItems, merged.UniqueItems, kw(path, "uniqueItems"))...)

	diffs = append(diffs, diffIntSlot(a.MinProperties, merged.MinProperties, kw(path, "minProperties"))...)
	diffs = append(diffs, diffIntSlot(a.MaxProperties, merged.MaxProperties, kw(path, "maxProperties"))...)
	diffs = append(diffs, diffStringSetSlot(a.Required, merged.Required, kw(path, "required"))...)

	return diffs
}

func strPtrEq(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func sortedStringsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := SortedStrings(append([]string(nil), a...))
	bs := SortedStrings(append([]string(nil), b...))
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

func diffRatSlot(a, b *Rat, path string) []Diff {
	equal := a != nil && b != nil && a.Cmp(b.Rat) == 0
	return diffSlot(a != nil, b != nil, equal, path)
}

func diffIntSlot(a, b *int, path string) []Diff {
	equal := a != nil && b != nil && *a == *b
	return diffSlot(a != nil, b != nil, equal, path)
}

func diffStrSlot(a, b *string, path string) []Diff {
	equal := a != nil && b != nil && *a == *b
	return diffSlot(a != nil, b != nil, equal, path)
}

func diffBoolSlot(a, b *bool, path string) []Diff {
	equal := a != nil && b != nil && *a == *b
	return diffSlot(a != nil, b != nil, equal, path)
}

func diffStringSetSlot(a, b []string, path string) []Diff {
	return diffSlot(len(a) > 0, len(b) > 0, sortedStringsEqual(a, b), path)
}

func diffConstSlot(a, merged *Schema, path string) []Diff {
	inA := a.Const != nil && a.Const.IsSet
	inM := merged.Const != nil && merged.Const.IsSet
	equal := inA && inM && DeepEqual(a.Const.Value, merged.Const.Value)
	return diffSlot(inA, inM, equal, kw(path, "const"))
}

func diffEnumSlot(a, merged *Schema, path string) []Diff {
	inA := a.Enum != nil
	inM := merged.Enum != nil
	equal := inA && inM && enumSetEqual(a.Enum, merged.Enum)
	return diffSlot(inA, inM, equal, kw(path, "enum"))
}

func enumSetEqual(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for _, v := range a {
		if !enumAccepts(b, v) {
			return false
		}
	}
	return true
}

// diffNestedSchema compares a single-valued schema slot (contains,
// additionalProperties, an items position, ...) against its merged
// counterpart, recursing when both sides are present so the inner diffs
// carry their own path instead of collapsing to one opaque entry.
func diffNestedSchema(a, merged *Schema, path string) []Diff {
	switch {
	case a == nil && merged == nil:
		return nil
	case a == nil:
		return []Diff{{Type: "added", Path: path}}
	case merged == nil:
		return []Diff{{Type: "removed", Path: path}}
	case SchemasEqual(a, merged):
		return nil
	default:
		sub := diffSchemas(a, merged, path)
		if len(sub) == 0 {
			return []Diff{{Type: "changed", Path: path}}
		}
		return sub
	}
}

func diffNestedSchemaKeywords(a, merged *Schema, path string) []Diff {
	var diffs []Diff
	diffs = append(diffs, diffNestedSchema(a.Not, merged.Not, kw(path, "not"))...)
	diffs = append(diffs, diffNestedSchema(a.Contains, merged.Contains, kw(path, "contains"))...)
	diffs = append(diffs, diffNestedSchema(a.PropertyNames, merged.PropertyNames, kw(path, "propertyNames"))...)
	diffs = append(diffs, diffNestedSchema(a.AdditionalProperties, merged.AdditionalProperties, kw(path, "additionalProperties"))...)
	return diffs
}

func diffSchemaMaps(a, merged *Schema, path string) []Diff {
	var diffs []Diff
	diffs = append(diffs, diffSchemaMap(a.Properties, merged.Properties, kw(path, "properties"))...)
	diffs = append(diffs, diffSchemaMap(a.PatternProperties, merged.PatternProperties, kw(path, "patternProperties"))...)
	return diffs
}

func diffSchemaMap(a, merged *SchemaMap, path string) []Diff {
	if a == nil && merged == nil {
		return nil
	}
	keys := map[string]struct{}{}
	if a != nil {
		for k := range *a {
			keys[k] = struct{}{}
		}
	}
	if merged != nil {
		for k := range *merged {
			keys[k] = struct{}{}
		}
	}
	names := make([]string, 0, len(keys))
	for k := range keys {
		names = append(names, k)
	}
	sort.Strings(names)

	var diffs []Diff
	for _, name := range names {
		var av, mv *Schema
		if a != nil {
			av = (*a)[name]
		}
		if merged != nil {
			mv = (*merged)[name]
		}
		diffs = append(diffs, diffNestedSchema(av, mv, path+"."+name)...)
	}
	return diffs
}

// diffItemsField compares the items/additionalItems slots. Tuple form
// compares position by position (each side falling back to its own
// additionalItems/single schema beyond its own tuple length, same as
// mergeItems), single form compares the one schema directly.
func diffItemsField(a, merged *Schema, path string) []Diff {
	p := kw(path, "items")
	switch {
	case a.Items == nil && merged.Items == nil:
		return nil
	case a.Items == nil:
		return []Diff{{Type: "added", Path: p}}
	case merged.Items == nil:
		return []Diff{{Type: "removed", Path: p}}
	}

	if !a.Items.IsTuple() && !merged.Items.IsTuple() {
		return diffNestedSchema(a.Items.Single, merged.Items.Single, p)
	}

	aTuple, aExtra := tupleView(a)
	mTuple, mExtra := tupleView(merged)
	n := len(aTuple)
	if len(mTuple) > n {
		n = len(mTuple)
	}
	var diffs []Diff
	for i := 0; i < n; i++ {
		ai := positionSchema(aTuple, aExtra, i)
		mi := positionSchema(mTuple, mExtra, i)
		diffs = append(diffs, diffNestedSchema(ai, mi, fmt.Sprintf("%s[%d]", p, i))...)
	}
	diffs = append(diffs, diffNestedSchema(a.AdditionalItems, merged.AdditionalItems, kw(path, "additionalItems"))...)
	return diffs
}

// diffApplicatorLists compares allOf/anyOf/oneOf as unordered multisets of
// schemas, since merge's OR-distribution and allOf concatenation don't
// preserve positional correspondence with either operand's original list.
func diffApplicatorLists(a, merged *Schema, path string) []Diff {
	var diffs []Diff
	diffs = append(diffs, diffSchemaList(a.AllOf, merged.AllOf, kw(path, "allOf"))...)
	diffs = append(diffs, diffSchemaList(a.AnyOf, merged.AnyOf, kw(path, "anyOf"))...)
	diffs = append(diffs, diffSchemaList(a.OneOf, merged.OneOf, kw(path, "oneOf"))...)
	return diffs
}

func diffSchemaList(a, merged []*Schema, path string) []Diff {
	if schemaListEqual(a, merged) {
		return nil
	}
	usedA := make([]bool, len(a))
	usedM := make([]bool, len(merged))
	for i, as := range a {
		for j, ms := range merged {
			if !usedM[j] && SchemasEqual(as, ms) {
				usedA[i], usedM[j] = true, true
				break
			}
		}
	}

	var diffs []Diff
	for i, used := range usedA {
		if !used {
			diffs = append(diffs, Diff{Type: "removed", Path: fmt.Sprintf("%s[%d]", path, i)})
		}
	}
	for j, used := range usedM {
		if !used {
			diffs = append(diffs, Diff{Type: "added", Path: fmt.Sprintf("%s[%d]", path, j)})
		}
	}
	if len(diffs) == 0 {
		diffs = append(diffs, Diff{Type: "changed", Path: path})
	}
	return diffs
}

func schemaListEqual(a, b []*Schema) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, as := range a {
		found := false
		for j, bs := range b {
			if !used[j] && SchemasEqual(as, bs) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func diffDependenciesField(a, merged *Schema, path string) []Diff {
	if a.Dependencies == nil && merged.Dependencies == nil {
		return nil
	}
	keys := map[string]struct{}{}
	for k := range a.Dependencies {
		keys[k] = struct{}{}
	}
	for k := range merged.Dependencies {
		keys[k] = struct{}{}
	}
	names := make([]string, 0, len(keys))
	for k := range keys {
		names = append(names, k)
	}
	sort.Strings(names)

	p := kw(path, "dependencies")
	var diffs []Diff
	for _, name := range names {
		ad, aok := a.Dependencies[name]
		md, mok := merged.Dependencies[name]
		switch {
		case !aok:
			diffs = append(diffs, Diff{Type: "added", Path: p + "." + name})
		case !mok:
			diffs = append(diffs, Diff{Type: "removed", Path: p + "." + name})
		default:
			diffs = append(diffs, diffNestedSchema(ad.AsSchema(), md.AsSchema(), p+"."+name)...)
		}
	}
	return diffs
}

func diffConditional(a, merged *Schema, path string) []Diff {
	switch {
	case a.If == nil && merged.If == nil:
		return nil
	case a.If == nil:
		return []Diff{{Type: "added", Path: kw(path, "if")}}
	case merged.If == nil:
		return []Diff{{Type: "removed", Path: kw(path, "if")}}
	}

	var diffs []Diff
	if !SchemasEqual(a.If, merged.If) {
		diffs = append(diffs, diffNestedSchema(a.If, merged.If, kw(path, "if"))...)
	}
	diffs = append(diffs, diffNestedSchema(a.Then, merged.Then, kw(path, "then"))...)
	diffs = append(diffs, diffNestedSchema(a.Else, merged.Else, kw(path, "else"))...)
	return diffs
}
