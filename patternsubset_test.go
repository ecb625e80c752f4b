package jsonschema

import "testing"

func TestIsPatternSubsetIdentity(t *testing.T) {
	if !IsPatternSubset("^[a-z]+$", "^[a-z]+$") {
		t.Error("expected identical patterns to be subsets of each other")
	}
}

func TestIsPatternSubsetNarrowing(t *testing.T) {
	if !IsPatternSubset("^[0-9]{3}$", "^[0-9]+$") {
		t.Error("expected a fixed-width digit pattern to be a subset of a general digit pattern")
	}
	if IsPatternSubset("^[0-9]+$", "^[0-9]{3}$") {
		t.Error("expected the general digit pattern to NOT be a subset of the fixed-width one")
	}
}

func TestIsPatternSubsetUnrelated(t *testing.T) {
	if IsPatternSubset("^[a-z]+$", "^[0-9]+$") {
		t.Error("expected unrelated patterns to not be subsets")
	}
}

func TestIsPatternSubsetInvalidRegex(t *testing.T) {
	if IsPatternSubset("(unterminated", "^.*$") {
		t.Error("expected invalid regex to be treated conservatively as not-subset")
	}
}

func TestArePatternsEquivalent(t *testing.T) {
	if !ArePatternsEquivalent("^(a|b)$", "^(a|b)$") {
		t.Error("expected pattern to be equivalent to itself")
	}
	if ArePatternsEquivalent("^[a-z]+$", "^[a-z]{2,4}$") {
		t.Error("expected non-equivalent patterns to be reported as such")
	}
}

func TestIsTrivialPattern(t *testing.T) {
	trivial := []string{"", ".*", ".+", "^.*$", "(.*)", "(?:.+)"}
	for _, p := range trivial {
		if !IsTrivialPattern(p) {
			t.Errorf("expected %q to be trivial", p)
		}
	}
	if IsTrivialPattern("^[a-z]+$") {
		t.Error("expected a restrictive pattern to not be trivial")
	}
}
