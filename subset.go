package jsonschema

// IsSubset reports whether every instance accepted by a is also accepted by
// b (a ⊆ b). The core test is the algebraic identity
// a ⊆ b ⇔ merge(a, b) ≡ a; an identity short-circuit (SchemasEqual) and a
// fast path for schemas whose only content is an anyOf skip the merge in the
// common cases.
func IsSubset(a, b *Schema) bool {
	a, b = Normalize(a), Normalize(b)

	if av, ok := a.IsBoolean(); ok {
		if !av {
			return true // ∅ is a subset of everything
		}
		bv, bok := b.IsBoolean()
		return (bok && bv) || (!bok && b.IsTrue())
	}
	if bv, ok := b.IsBoolean(); ok {
		if bv {
			return true // everything is a subset of the universal schema
		}
		return a.IsFalse() // only ∅ is a subset of ∅
	}

	if SchemasEqual(a, b) {
		return true
	}

	if isPureAnyOfWrapper(a) {
		for _, branch := range a.AnyOf {
			if !IsSubset(branch, b) {
				return false
			}
		}
		return true
	}
	if isPureAnyOfWrapper(b) {
		for _, branch := range b.AnyOf {
			if IsSubset(a, branch) {
				return true
			}
		}
		// No single branch covers a; fall through to the general
		// merge-equivalence test, which still correctly handles the case
		// where a's own disjunction is covered branch-wise by b's.
	}

	merged := Merge(a, b)
	return SchemasEqual(Normalize(merged), a)
}

// IsEqual reports whether a and b accept exactly the same instances.
func IsEqual(a, b *Schema) bool {
	return IsSubset(a, b) && IsSubset(b, a)
}

// isPureAnyOfWrapper reports whether s is exactly {anyOf: [...]} with no
// other keywords, the shape that licenses per-branch subset distribution.
func isPureAnyOfWrapper(s *Schema) bool {
	if s == nil || s.Boolean != nil || s.AnyOf == nil {
		return false
	}
	probe := *s
	probe.AnyOf = nil
	return isEmptyProbe(probe)
}

func isEmptyProbe(probe Schema) bool {
	return SchemasEqual(&probe, &Schema{})
}
