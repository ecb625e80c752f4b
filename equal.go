package jsonschema

import (
	"math/big"
	"sort"
)

// DeepEqual is the canonical structural-equality comparison used throughout
// this package (normalize idempotence checks, enum/const comparison, diff
// value comparison, condition evaluation against instance data). It treats
// map[string]any as unordered, compares slices element-wise, and treats
// numeric values equal across Go numeric representations (float64 vs int vs
// *big.Rat) when they denote the same number. It does not special-case dates
// or regular expressions: those are just strings here.
func DeepEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if an, aok := asNumber(a); aok {
		if bn, bok := asNumber(b); bok {
			return an.Cmp(bn) == 0
		}
		return false
	}

	switch av := a.(type) {
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !DeepEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			bvv, ok := bv[k]
			if !ok || !DeepEqual(v, bvv) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

// asNumber converts supported numeric Go representations to a *big.Rat for
// exact cross-representation comparison.
func asNumber(v any) (*big.Rat, bool) {
	switch n := v.(type) {
	case float64:
		return new(big.Rat).SetFloat64(n), n == n // false for NaN
	case float32:
		return new(big.Rat).SetFloat64(float64(n)), true
	case int:
		return new(big.Rat).SetInt64(int64(n)), true
	case int64:
		return new(big.Rat).SetInt64(n), true
	case *Rat:
		if n == nil || n.Rat == nil {
			return nil, false
		}
		return n.Rat, true
	case *big.Rat:
		return n, true
	default:
		return nil, false
	}
}

// UnionStrings returns the set-union of a and b, each string appearing once,
// in stable order: a's elements first (in their original order), then any of
// b's elements not already present.
func UnionStrings(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, s := range a {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	for _, s := range b {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}

// IntersectStrings returns the elements common to both a and b, in a's
// order.
func IntersectStrings(a, b []string) []string {
	set := make(map[string]struct{}, len(b))
	for _, s := range b {
		set[s] = struct{}{}
	}
	out := make([]string, 0)
	for _, s := range a {
		if _, ok := set[s]; ok {
			out = append(out, s)
		}
	}
	return out
}

// SortedStrings returns a sorted copy of ss, used wherever merge output must
// be deterministic regardless of operand order.
func SortedStrings(ss []string) []string {
	out := append([]string(nil), ss...)
	sort.Strings(out)
	return out
}

// IsPlainObject reports whether v is a JSON object (map[string]any), as
// opposed to an array, scalar, or nil.
func IsPlainObject(v any) bool {
	_, ok := v.(map[string]any)
	return ok
}

// OmitKeys returns a copy of m without the given keys. If none of the keys
// are present, the original map is returned unchanged rather than a copy.
func OmitKeys(m map[string]any, keys ...string) map[string]any {
	if len(m) == 0 {
		return m
	}
	remove := make(map[string]struct{}, len(keys))
	any0 := false
	for _, k := range keys {
		if _, ok := m[k]; ok {
			remove[k] = struct{}{}
			any0 = true
		}
	}
	if !any0 {
		return m
	}
	out := make(map[string]any, len(m)-len(remove))
	for k, v := range m {
		if _, drop := remove[k]; drop {
			continue
		}
		out[k] = v
	}
	return out
}
