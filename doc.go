// Package jsonschema implements a Draft 7 JSON Schema structural-compatibility
// algebra.
//
// It answers questions about the relationship between two schemas without
// ever validating a specific instance against either one (except where
// ResolveConditions needs concrete data to pick an if/then/else branch):
// does every instance A accepts also satisfy B (IsSubset), do A and B accept
// exactly the same instances (IsEqual), what is the schema accepting exactly
// what both accept (Intersect), and where exactly do two schemas diverge
// (Check).
//
// Schemas are represented by Schema, a typed Go value rather than a raw
// map[string]any: every Draft 7 keyword this package interprets has its own
// field, and anything else is preserved opaquely in Schema.Extra. Normalize
// puts a schema into canonical form (inferring type from const/enum,
// collapsing redundant keywords, collapsing provable double negation) so
// that structural comparisons don't have to special-case every way the same
// constraint can be spelled.
//
// Every exported transformation - Normalize, Intersect, Check,
// ResolveConditions - returns a fresh value built through Schema.Clone
// rather than mutating its arguments.
package jsonschema
