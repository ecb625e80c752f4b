package jsonschema

import (
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
	"time"
)

// FormatUnknown is returned by ValidateFormat when name is not a recognised
// format: callers must treat this as "no evidence either way" rather than
// pass/fail; undecidable formats are treated conservatively.
type formatResult int

const (
	// FormatInvalid means the value does not satisfy the named format.
	FormatInvalid formatResult = iota
	// FormatValid means the value satisfies the named format.
	FormatValid
	// FormatUnknown means name is not recognised; skip, don't fail.
	FormatUnknown
)

// formatValidators mirrors a Draft 7-compatible Formats registry (in the
// lineage of santhosh-tekuri/jsonschema), trimmed to the format vocabulary
// this package's subtype hierarchy cares about, plus the idn-* and iri
// variants.
var formatValidators = map[string]func(string) bool{
	"date-time":     isDateTime,
	"date":          isDate,
	"time":          isTime,
	"email":         isEmail,
	"idn-email":     isIDNEmail,
	"hostname":      isHostname,
	"idn-hostname":  isIDNHostname,
	"ipv4":          isIPv4,
	"ipv6":          isIPv6,
	"uri":           isURI,
	"iri":           isIRI,
	"uri-reference": isURIReference,
	"iri-reference": isIRIReference,
	"uri-template":  isURITemplate,
	"json-pointer":  isJSONPointer,
	"regex":         isValidRegex,
	"uuid":          isUUID,
}

// formatHierarchy lists, for each format, the formats it is a subtype of
// (i.e. every value satisfying the key also satisfies each listed value).
// This is a closed partial order: email ⊂ idn-email, hostname ⊂
// idn-hostname, uri ⊂ iri, uri-reference ⊂ iri-reference.
var formatHierarchy = map[string][]string{
	"email":         {"idn-email"},
	"hostname":      {"idn-hostname"},
	"uri":           {"iri"},
	"uri-reference": {"iri-reference"},
}

// ValidateFormat checks value against the named format. If name is not
// recognised, it returns FormatUnknown and callers should treat the keyword
// as contributing no evidence: undecidable formats are treated conservatively.
func ValidateFormat(name string, value any) formatResult {
	fn, ok := formatValidators[name]
	if !ok {
		return FormatUnknown
	}
	s, ok := value.(string)
	if !ok {
		// Format only constrains strings; non-string instances trivially pass.
		return FormatValid
	}
	if fn(s) {
		return FormatValid
	}
	return FormatInvalid
}

// IsFormatSubtype reports whether every value satisfying format a also
// satisfies format b: a = b, or there is a chain a ⊂ ... ⊂ b in
// formatHierarchy.
func IsFormatSubtype(a, b string) bool {
	if a == b {
		return true
	}
	visited := map[string]bool{a: true}
	queue := []string{a}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range formatHierarchy[cur] {
			if next == b {
				return true
			}
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	return false
}

// HasFormatConflict reports whether f1 and f2 are treated as unsatisfiable
// together: true when both are recognised, distinct, and neither is a
// subtype of the other, and also when both are unrecognised and distinct. A
// recognised format paired with an unrecognised one is not a conflict.
func HasFormatConflict(f1, f2 string) bool {
	if f1 == f2 {
		return false
	}
	_, ok1 := formatValidators[f1]
	_, ok2 := formatValidators[f2]
	if !ok1 || !ok2 {
		// Two distinct unrecognised formats are treated as a conflict rather
		// than as unknown.
		return !ok1 && !ok2
	}
	return !IsFormatSubtype(f1, f2) && !IsFormatSubtype(f2, f1)
}

// MoreSpecificFormat returns whichever of f1, f2 is a subtype of the other
// (the "tighter" format); f1 when the names are equal, and f2 when they are
// distinct and neither is a subtype of the other.
func MoreSpecificFormat(f1, f2 string) string {
	if f1 == f2 {
		return f1
	}
	if IsFormatSubtype(f1, f2) {
		return f1
	}
	return f2
}

// --- validators, adapted from kaptinlin-jsonschema/formats.go ---

func isDateTime(s string) bool {
	if len(s) < 20 {
		return false
	}
	if s[10] != 'T' && s[10] != 't' {
		return false
	}
	return isDate(s[:10]) && isTime(s[11:])
}

func isDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func isTime(s string) bool {
	for _, layout := range []string{"15:04:05Z07:00", "15:04:05.999999999Z07:00"} {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

func isEmail(s string) bool {
	if strings.ContainsAny(s, " \t\n") {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == s
}

func isIDNEmail(s string) bool {
	// idn-email permits Unicode in the local/domain parts; every ASCII email
	// is already a valid idn-email, so fall back to the ASCII validator and
	// otherwise just check for the mandatory single '@'.
	if isEmail(s) {
		return true
	}
	at := strings.Count(s, "@")
	return at == 1 && !strings.HasPrefix(s, "@") && !strings.HasSuffix(s, "@")
}

var hostnameRE = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?)*$`)

func isHostname(s string) bool {
	return len(s) <= 255 && hostnameRE.MatchString(s)
}

func isIDNHostname(s string) bool {
	if isHostname(s) {
		return true
	}
	if len(s) == 0 || len(s) > 255 {
		return false
	}
	for _, label := range strings.Split(s, ".") {
		if label == "" || len(label) > 63 {
			return false
		}
	}
	return true
}

func isIPv4(s string) bool {
	ip := net.ParseIP(s)
	return ip != nil && ip.To4() != nil && !strings.Contains(s, ":")
}

func isIPv6(s string) bool {
	ip := net.ParseIP(s)
	return ip != nil && strings.Contains(s, ":")
}

func isURI(s string) bool {
	u, err := url.Parse(s)
	if err != nil || !u.IsAbs() {
		return false
	}
	return isASCII(s)
}

func isIRI(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.IsAbs()
}

func isURIReference(s string) bool {
	_, err := url.Parse(s)
	return err == nil && isASCII(s)
}

func isIRIReference(s string) bool {
	_, err := url.Parse(s)
	return err == nil
}

func isURITemplate(s string) bool {
	_, err := url.Parse(strings.NewReplacer("{", "", "}", "").Replace(s))
	return err == nil
}

func isJSONPointer(s string) bool {
	if s == "" {
		return true
	}
	if s[0] != '/' {
		return false
	}
	return !strings.Contains(s, "~0~") // cheap structural check, not a full validator
}

var uuidRE = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

func isUUID(s string) bool { return uuidRE.MatchString(s) }

func isValidRegex(s string) bool {
	_, err := regexp.Compile(s)
	return err == nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return false
		}
	}
	return true
}
