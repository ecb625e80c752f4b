package jsonschema

// This file assembles the package's public operations on top of the
// individual keyword-level components (normalize.go, merge.go, subset.go,
// diff.go, resolve.go, format.go, patternsubset.go). Most of the work
// already lives in exported functions on those files; Intersect, CanConnect
// and CheckResolved are thin, named compositions kept here so the package's
// operation surface reads as a single list.

// Intersect returns the structural intersection of a and b: the schema
// accepting exactly the instances both accept.
func Intersect(a, b *Schema) *Schema {
	return Merge(a, b)
}

// ConnectionResult is the outcome of CanConnect: whether an upstream
// schema's output is accepted everywhere a downstream schema expects input,
// the fixed direction that check runs in, and the diffs explaining any gap.
type ConnectionResult struct {
	IsSubset  bool   `json:"isSubset"`
	Direction string `json:"direction"`
	Diffs     []Diff `json:"diffs,omitempty"`
}

// CanConnect reports whether every instance an upstream schema can produce
// is accepted by a downstream schema expecting input, i.e. whether the two
// can be wired together without a possible runtime mismatch. It is Check
// under a connection-oriented name: sourceOutput ⊆ targetInput.
func CanConnect(sourceOutput, targetInput *Schema) *ConnectionResult {
	result := Check(sourceOutput, targetInput)
	return &ConnectionResult{
		IsSubset:  result.IsSubset,
		Direction: "sourceOutput ⊆ targetInput",
		Diffs:     result.Diffs,
	}
}

// ResolvedCheckResult is the outcome of CheckResolved: both operands after
// their own if/then/else conditionals were folded against their respective
// instance data, and the Check result comparing those resolved schemas.
type ResolvedCheckResult struct {
	ResolvedSub *Schema `json:"resolvedSub"`
	ResolvedSup *Schema `json:"resolvedSup"`
	IsSubset    bool    `json:"isSubset"`
	Merged      *Schema `json:"merged,omitempty"`
	Diffs       []Diff  `json:"diffs,omitempty"`
}

// CheckResolved resolves sub against subData and sup against supData
// (folding in whichever if/then/else branches each side's own data actually
// selects) before running Check between the two results, for callers who
// know the shape of the data flowing through each side of a contract and
// want diffs against the data-specific schemas rather than the fully
// general ones. supData may be nil when sup has no top-level conditional to
// resolve.
func CheckResolved(sub, sup *Schema, subData, supData any) *ResolvedCheckResult {
	resolvedSub := ResolveConditions(sub, subData).Resolved
	resolvedSup := ResolveConditions(sup, supData).Resolved
	result := Check(resolvedSub, resolvedSup)
	return &ResolvedCheckResult{
		ResolvedSub: resolvedSub,
		ResolvedSup: resolvedSup,
		IsSubset:    result.IsSubset,
		Merged:      result.Merged,
		Diffs:       result.Diffs,
	}
}
