package jsonschema

import "math/big"

// Matches reports whether data satisfies schema, evaluated directly against
// Draft 7 semantics (not via merge/subset). It exists to let ResolveConditions
// pick branches from concrete instance data; it is not a general-purpose
// validator and does not produce diagnostics.
func Matches(schema *Schema, data any) bool {
	if schema == nil {
		return true
	}
	if v, ok := schema.IsBoolean(); ok {
		return v
	}

	tag := jsonTypeOf(data)
	if len(schema.Type) > 0 && !schema.Type.Has(tag) {
		if !(schema.Type.Has("number") && tag == "integer") {
			return false
		}
	}
	if schema.Const != nil && schema.Const.IsSet && !DeepEqual(data, schema.Const.Value) {
		return false
	}
	if schema.Enum != nil && !enumAccepts(schema.Enum, data) {
		return false
	}

	switch v := data.(type) {
	case string:
		if !matchesString(schema, v) {
			return false
		}
	case []any:
		if !matchesArray(schema, v) {
			return false
		}
	case map[string]any:
		if !matchesObject(schema, v) {
			return false
		}
	default:
		if n, ok := asNumber(data); ok && !matchesNumber(schema, n) {
			return false
		}
	}

	return matchesApplicators(schema, data)
}

func matchesNumber(schema *Schema, n *big.Rat) bool {
	if schema.Minimum != nil && n.Cmp(schema.Minimum.Rat) < 0 {
		return false
	}
	if schema.Maximum != nil && n.Cmp(schema.Maximum.Rat) > 0 {
		return false
	}
	if schema.ExclusiveMinimum != nil && n.Cmp(schema.ExclusiveMinimum.Rat) <= 0 {
		return false
	}
	if schema.ExclusiveMaximum != nil && n.Cmp(schema.ExclusiveMaximum.Rat) >= 0 {
		return false
	}
	if schema.MultipleOf != nil {
		q := new(big.Rat).Quo(n, schema.MultipleOf.Rat)
		if !q.IsInt() {
			return false
		}
	}
	return true
}

func matchesString(schema *Schema, s string) bool {
	runes := []rune(s)
	if schema.MinLength != nil && len(runes) < *schema.MinLength {
		return false
	}
	if schema.MaxLength != nil && len(runes) > *schema.MaxLength {
		return false
	}
	if schema.Pattern != nil {
		re, err := compileCached(*schema.Pattern)
		if err != nil || !re.MatchString(s) {
			return false
		}
	}
	if schema.Format != nil && ValidateFormat(*schema.Format, s) == FormatInvalid {
		return false
	}
	return true
}

func matchesArray(schema *Schema, items []any) bool {
	if schema.MinItems != nil && len(items) < *schema.MinItems {
		return false
	}
	if schema.MaxItems != nil && len(items) > *schema.MaxItems {
		return false
	}
	if schema.UniqueItems != nil && *schema.UniqueItems && !allUnique(items) {
		return false
	}
	if schema.Items != nil {
		if schema.Items.IsTuple() {
			for i, item := range items {
				if i < len(schema.Items.Tuple) {
					if !Matches(schema.Items.Tuple[i], item) {
						return false
					}
				} else if schema.AdditionalItems != nil && !Matches(schema.AdditionalItems, item) {
					return false
				}
			}
		} else {
			for _, item := range items {
				if !Matches(schema.Items.Single, item) {
					return false
				}
			}
		}
	}
	if schema.Contains != nil {
		found := false
		for _, item := range items {
			if Matches(schema.Contains, item) {
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

func allUnique(items []any) bool {
	for i := range items {
		for j := i + 1; j < len(items); j++ {
			if DeepEqual(items[i], items[j]) {
				return false
			}
		}
	}
	return true
}

func matchesObject(schema *Schema, obj map[string]any) bool {
	for _, req := range schema.Required {
		if _, ok := obj[req]; !ok {
			return false
		}
	}
	if schema.MinProperties != nil && len(obj) < *schema.MinProperties {
		return false
	}
	if schema.MaxProperties != nil && len(obj) > *schema.MaxProperties {
		return false
	}
	for key, val := range obj {
		explicit := false
		if schema.Properties != nil {
			if sub, ok := (*schema.Properties)[key]; ok {
				explicit = true
				if !Matches(sub, val) {
					return false
				}
			}
		}
		patterned := false
		if schema.PatternProperties != nil {
			for pat, sub := range *schema.PatternProperties {
				if matchesPattern(pat, key) {
					patterned = true
					if !Matches(sub, val) {
						return false
					}
				}
			}
		}
		if !explicit && !patterned && schema.AdditionalProperties != nil && !Matches(schema.AdditionalProperties, val) {
			return false
		}
	}
	if schema.PropertyNames != nil {
		for key := range obj {
			if !Matches(schema.PropertyNames, key) {
				return false
			}
		}
	}
	for key, dep := range schema.Dependencies {
		if _, present := obj[key]; !present {
			continue
		}
		if dep.IsSchemaForm() {
			if !Matches(dep.Schema, obj) {
				return false
			}
			continue
		}
		for _, req := range dep.Properties {
			if _, ok := obj[req]; !ok {
				return false
			}
		}
	}
	return true
}

func matchesApplicators(schema *Schema, data any) bool {
	for _, sub := range schema.AllOf {
		if !Matches(sub, data) {
			return false
		}
	}
	if len(schema.AnyOf) > 0 {
		ok := false
		for _, sub := range schema.AnyOf {
			if Matches(sub, data) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	if len(schema.OneOf) > 0 {
		count := 0
		for _, sub := range schema.OneOf {
			if Matches(sub, data) {
				count++
			}
		}
		if count != 1 {
			return false
		}
	}
	if schema.Not != nil && Matches(schema.Not, data) {
		return false
	}
	if schema.If != nil {
		if Matches(schema.If, data) {
			if schema.Then != nil && !Matches(schema.Then, data) {
				return false
			}
		} else if schema.Else != nil && !Matches(schema.Else, data) {
			return false
		}
	}
	return true
}

// ResolveResult is the outcome of ResolveConditions: the fully folded
// schema, which top-level branch (if any) was taken, and the assertion
// keywords extracted from the top-level "if" condition that decided it.
type ResolveResult struct {
	Resolved     *Schema        `json:"resolved"`
	Branch       string         `json:"branch,omitempty"`
	Discriminant map[string]any `json:"discriminant,omitempty"`
}

// ResolveConditions partially evaluates schema against concrete instance
// data: every if/then/else it can reach (at the top level, inside allOf
// entries, and recursively inside properties against the corresponding
// instance value) is replaced by whichever branch data actually satisfies,
// folded into the surrounding schema. The fold uses property-oriented
// override semantics, not a general intersect: a branch's own scalar
// keywords (type, bounds, length, pattern, format) replace the enclosing
// schema's rather than tightening against them, since "then"/"else" express
// what becomes true given the condition, not an additional constraint to
// AND in. Structural keywords (properties, required, additionalProperties)
// still combine, since both the enclosing schema and the branch describe
// the same object.
//
// Branch and Discriminant only describe the schema's own top-level "if",
// not conditionals nested inside allOf or properties - those are still
// folded into Resolved, just not separately reported, since there's no
// single "the" branch to name once more than one conditional is in play.
func ResolveConditions(schema *Schema, data any) *ResolveResult {
	if schema == nil {
		return &ResolveResult{}
	}

	branch := ""
	var discriminant map[string]any
	if _, ok := schema.IsBoolean(); !ok && schema.If != nil {
		if Matches(schema.If, data) {
			branch = "then"
		} else {
			branch = "else"
		}
		discriminant = extractDiscriminant(schema.If)
	}

	return &ResolveResult{
		Resolved:     resolveConditions(schema, data),
		Branch:       branch,
		Discriminant: discriminant,
	}
}

// extractDiscriminant pulls the assertion keywords out of an "if" condition
// that a caller could use to tell which branch was taken without re-running
// Matches: a top-level const/enum/type, or a const/enum on an immediate
// property (the common "tagged union" idiom, if: {properties: {kind:
// {const: "..."}}}).
func extractDiscriminant(cond *Schema) map[string]any {
	if cond == nil {
		return nil
	}
	out := map[string]any{}
	if cond.Const != nil && cond.Const.IsSet {
		out["const"] = cond.Const.Value
	}
	if cond.Enum != nil {
		out["enum"] = cond.Enum
	}
	if len(cond.Type) > 0 {
		out["type"] = []string(cond.Type)
	}
	if cond.Properties != nil {
		for name, sub := range *cond.Properties {
			if sub == nil {
				continue
			}
			if sub.Const != nil && sub.Const.IsSet {
				out["properties."+name+".const"] = sub.Const.Value
			}
			if sub.Enum != nil {
				out["properties."+name+".enum"] = sub.Enum
			}
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func resolveConditions(schema *Schema, data any) *Schema {
	if schema == nil {
		return nil
	}
	if _, ok := schema.IsBoolean(); ok {
		return schema.Clone()
	}

	out := schema.Clone()

	if out.If != nil {
		cond, thenS, elseS := out.If, out.Then, out.Else
		out.If, out.Then, out.Else = nil, nil, nil
		branch := elseS
		if Matches(cond, data) {
			branch = thenS
		}
		if branch != nil {
			out = foldBranch(out, resolveConditions(branch, data))
		}
	}

	if len(out.AllOf) > 0 {
		rest := out.AllOf
		out.AllOf = nil
		for _, sub := range rest {
			out = foldBranch(out, resolveConditions(sub, data))
		}
	}

	obj, isObj := data.(map[string]any)
	if out.Properties != nil {
		for name, sub := range *out.Properties {
			var pdata any
			if isObj {
				pdata = obj[name]
			}
			(*out.Properties)[name] = resolveConditions(sub, pdata)
		}
	}

	return Normalize(out)
}

// foldBranch combines base with a resolved branch using override semantics
// for scalar assertions and union/merge semantics for structural keywords.
func foldBranch(base, branch *Schema) *Schema {
	if branch == nil {
		return base
	}
	if bv, ok := branch.IsBoolean(); ok {
		if !bv {
			return False()
		}
		return base
	}
	if basev, ok := base.IsBoolean(); ok {
		if !basev {
			return False()
		}
		return branch.Clone()
	}

	out := base

	if len(branch.Type) > 0 {
		out.Type = append(SchemaType(nil), branch.Type...)
	}
	if branch.Const != nil && branch.Const.IsSet {
		out.Const = NewConst(branch.Const.Value)
	}
	if branch.Enum != nil {
		out.Enum = append([]any(nil), branch.Enum...)
	}
	if branch.Minimum != nil {
		out.Minimum = branch.Minimum.Clone()
	}
	if branch.Maximum != nil {
		out.Maximum = branch.Maximum.Clone()
	}
	if branch.ExclusiveMinimum != nil {
		out.ExclusiveMinimum = branch.ExclusiveMinimum.Clone()
	}
	if branch.ExclusiveMaximum != nil {
		out.ExclusiveMaximum = branch.ExclusiveMaximum.Clone()
	}
	if branch.MultipleOf != nil {
		out.MultipleOf = branch.MultipleOf.Clone()
	}
	if branch.MinLength != nil {
		out.MinLength = clonePtr(branch.MinLength)
	}
	if branch.MaxLength != nil {
		out.MaxLength = clonePtr(branch.MaxLength)
	}
	if branch.Pattern != nil {
		out.Pattern = clonePtr(branch.Pattern)
	}
	if branch.Format != nil {
		out.Format = clonePtr(branch.Format)
	}
	if branch.MinItems != nil {
		out.MinItems = clonePtr(branch.MinItems)
	}
	if branch.MaxItems != nil {
		out.MaxItems = clonePtr(branch.MaxItems)
	}
	if branch.UniqueItems != nil {
		out.UniqueItems = clonePtr(branch.UniqueItems)
	}

	if branch.Properties != nil {
		if out.Properties == nil {
			empty := SchemaMap{}
			out.Properties = &empty
		}
		for k, v := range *branch.Properties {
			if existing, ok := (*out.Properties)[k]; ok {
				(*out.Properties)[k] = foldBranch(existing, v)
			} else {
				(*out.Properties)[k] = v
			}
		}
	}
	out.Required = SortedStrings(UnionStrings(out.Required, branch.Required))
	out.AdditionalProperties = mergeAdditional(out.AdditionalProperties, branch.AdditionalProperties)
	out.AllOf = append(out.AllOf, branch.AllOf...)

	return out
}
