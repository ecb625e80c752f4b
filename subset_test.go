package jsonschema

import "testing"

func TestIsSubsetBooleanSchemas(t *testing.T) {
	if !IsSubset(False(), String()) {
		t.Error("expected False() to be a subset of everything")
	}
	if !IsSubset(String(), True()) {
		t.Error("expected everything to be a subset of True()")
	}
	if IsSubset(True(), String()) {
		t.Error("expected True() to not be a subset of a restrictive schema")
	}
	if !IsSubset(False(), False()) {
		t.Error("expected False() to be a subset of itself")
	}
}

func TestIsSubsetNumericRange(t *testing.T) {
	narrow := Integer(Min(5), Max(10))
	wide := Integer(Min(0), Max(20))
	if !IsSubset(narrow, wide) {
		t.Error("expected narrower numeric range to be a subset of the wider one")
	}
	if IsSubset(wide, narrow) {
		t.Error("expected wider numeric range to not be a subset of the narrower one")
	}
}

func TestIsSubsetStringLength(t *testing.T) {
	a := String(MinLen(3), MaxLen(5))
	b := String(MinLen(1), MaxLen(10))
	if !IsSubset(a, b) {
		t.Error("expected tighter length bounds to be a subset of looser ones")
	}
}

func TestIsSubsetAnyOfBranchDistribution(t *testing.T) {
	a := AnyOfSchemas(Integer(Min(0), Max(5)), Integer(Min(10), Max(15)))
	b := Integer(Min(0), Max(20))
	if !IsSubset(a, b) {
		t.Error("expected every anyOf branch covered by b to make a a subset of b")
	}
}

func TestIsSubsetAnyOfOnRight(t *testing.T) {
	a := Integer(Min(0), Max(5))
	b := AnyOfSchemas(Integer(Min(0), Max(10)), String())
	if !IsSubset(a, b) {
		t.Error("expected a to be a subset when one branch of b covers it")
	}
}

func TestIsEqual(t *testing.T) {
	a := Integer(Min(0), Max(10))
	b := Integer(Min(0), Max(10))
	if !IsEqual(a, b) {
		t.Error("expected structurally equivalent schemas to be equal")
	}
	c := Integer(Min(0), Max(9))
	if IsEqual(a, c) {
		t.Error("expected schemas with different bounds to not be equal")
	}
}

func TestIsSubsetObjectProperties(t *testing.T) {
	a := Object(Prop("name", String(MinLen(3))), RequiredOf("name"))
	b := Object(Prop("name", String(MinLen(1))))
	if !IsSubset(a, b) {
		t.Error("expected a stricter required property schema to be a subset of a looser one")
	}
	if IsSubset(b, a) {
		t.Error("expected the looser schema (no required) to not be a subset of the stricter one")
	}
}
