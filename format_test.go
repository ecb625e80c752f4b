package jsonschema

import "testing"

func TestValidateFormatKnown(t *testing.T) {
	if ValidateFormat("email", "a@b.com") != FormatValid {
		t.Error("expected valid email")
	}
	if ValidateFormat("email", "not-an-email") != FormatInvalid {
		t.Error("expected invalid email")
	}
	if ValidateFormat("uuid", "not-a-uuid") != FormatInvalid {
		t.Error("expected invalid uuid")
	}
	if ValidateFormat("ipv4", "127.0.0.1") != FormatValid {
		t.Error("expected valid ipv4")
	}
	if ValidateFormat("ipv4", "::1") != FormatInvalid {
		t.Error("expected ipv6 literal to fail ipv4")
	}
}

func TestValidateFormatUnknownIsConservative(t *testing.T) {
	if ValidateFormat("made-up-format", "anything") != FormatUnknown {
		t.Error("expected unrecognised format to return FormatUnknown")
	}
}

func TestValidateFormatNonStringAlwaysPasses(t *testing.T) {
	if ValidateFormat("email", 42) != FormatValid {
		t.Error("format keyword should not constrain non-string instances")
	}
}

func TestIsFormatSubtype(t *testing.T) {
	if !IsFormatSubtype("email", "idn-email") {
		t.Error("expected email subtype of idn-email")
	}
	if IsFormatSubtype("idn-email", "email") {
		t.Error("expected idn-email not a subtype of email")
	}
	if !IsFormatSubtype("uri", "uri") {
		t.Error("expected reflexive subtype relation")
	}
	if IsFormatSubtype("email", "hostname") {
		t.Error("expected unrelated formats to not be subtypes")
	}
}

func TestHasFormatConflict(t *testing.T) {
	if HasFormatConflict("email", "email") {
		t.Error("same format should not conflict")
	}
	if HasFormatConflict("email", "idn-email") {
		t.Error("format and its supertype should not conflict")
	}
	if !HasFormatConflict("email", "hostname") {
		t.Error("unrelated recognised formats should conflict")
	}
	if !HasFormatConflict("made-up-a", "made-up-b") {
		t.Error("two distinct unrecognised formats should conflict")
	}
}

func TestMoreSpecificFormat(t *testing.T) {
	if MoreSpecificFormat("email", "idn-email") != "email" {
		t.Error("expected the subtype to win")
	}
	if MoreSpecificFormat("idn-email", "email") != "email" {
		t.Error("expected the subtype to win regardless of argument order")
	}
}
