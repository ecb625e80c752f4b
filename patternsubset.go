package jsonschema

import (
	"regexp"
	"regexp/syntax"
	"strings"
)

// maxPatternSamples bounds how many representative strings IsPatternSubset
// generates from the candidate subset pattern before testing them against
// the candidate superset pattern, capped at a fixed sample budget.
const maxPatternSamples = 200

// IsPatternSubset decides whether every string matching regex p also
// matches regex q, using sampling: it generates representative strings from
// p and checks each against q, accepting only on a universal match.
//
// This is best-effort and documented as such: an invalid
// regex or an empty sample set yields "unknown", and unknown is treated
// conservatively as not-subset, never as subset.
func IsPatternSubset(p, q string) bool {
	if p == q {
		return true
	}
	reQ, err := regexp.Compile(q)
	if err != nil {
		return false
	}
	if _, err := regexp.Compile(p); err != nil {
		return false
	}
	parsed, err := syntax.Parse(p, syntax.Perl)
	if err != nil {
		return false
	}
	samples := genSamples(parsed.Simplify(), maxPatternSamples)
	if len(samples) == 0 {
		return false
	}
	for _, s := range samples {
		if !reQ.MatchString(s) {
			return false
		}
	}
	return true
}

// ArePatternsEquivalent reports whether p and q accept the same language, as
// approximated by sampling in both directions.
func ArePatternsEquivalent(p, q string) bool {
	return IsPatternSubset(p, q) && IsPatternSubset(q, p)
}

// IsTrivialPattern reports whether p matches essentially any string: ".*",
// ".+", their anchored forms, the empty pattern, or a plain non-capturing/
// capturing wrapper around one of those.
func IsTrivialPattern(p string) bool {
	p = strings.TrimSpace(p)
	if p == "" {
		return true
	}
	for _, body := range []string{p} {
		if isTrivialBody(body) {
			return true
		}
	}
	// Strip one layer of a plain group wrapper, e.g. "(.*)" or "(?:.+)".
	if strings.HasPrefix(p, "(") && strings.HasSuffix(p, ")") {
		inner := p[1 : len(p)-1]
		inner = strings.TrimPrefix(inner, "?:")
		if isTrivialBody(inner) {
			return true
		}
	}
	return false
}

func isTrivialBody(body string) bool {
	switch body {
	case ".*", ".+", "^.*$", "^.+$", "^.*", ".*$", "^.+", ".+$":
		return true
	default:
		return false
	}
}

// genSamples produces up to max representative strings matched by re,
// following Draft 7/ECMA regex semantics for the RE2-compatible subset Go
// supports. Zero-width assertions contribute the empty string; they are not
// resolvable by sampling alone, which is the documented limitation.
func genSamples(re *syntax.Regexp, max int) []string {
	if max <= 0 {
		return nil
	}
	switch re.Op {
	case syntax.OpEmptyMatch, syntax.OpBeginLine, syntax.OpEndLine,
		syntax.OpBeginText, syntax.OpEndText, syntax.OpWordBoundary, syntax.OpNoWordBoundary:
		return []string{""}
	case syntax.OpLiteral:
		return []string{string(re.Rune)}
	case syntax.OpCharClass:
		return sampleCharClass(re.Rune, max)
	case syntax.OpAnyChar:
		return capSamples([]string{"a", "1", " ", "\n", "_"}, max)
	case syntax.OpAnyCharNotNL:
		return capSamples([]string{"a", "1", " ", "_"}, max)
	case syntax.OpCapture:
		if len(re.Sub) == 1 {
			return genSamples(re.Sub[0], max)
		}
		return []string{""}
	case syntax.OpStar:
		return genRepeat(re.Sub[0], 0, -1, max)
	case syntax.OpPlus:
		return genRepeat(re.Sub[0], 1, -1, max)
	case syntax.OpQuest:
		return genRepeat(re.Sub[0], 0, 1, max)
	case syntax.OpRepeat:
		return genRepeat(re.Sub[0], re.Min, re.Max, max)
	case syntax.OpConcat:
		result := []string{""}
		for _, sub := range re.Sub {
			result = combineSamples(result, genSamples(sub, max), max)
			if len(result) == 0 {
				break
			}
		}
		return result
	case syntax.OpAlternate:
		result := make([]string, 0, max)
		for _, sub := range re.Sub {
			result = capSamples(append(result, genSamples(sub, max)...), max)
			if len(result) >= max {
				break
			}
		}
		return result
	default:
		return []string{""}
	}
}

// genRepeat samples an inner expression repeated a handful of representative
// counts: the boundaries (min, min+1) and, if bounded, max — rather than
// every count, to keep the sample set small and finite for unbounded
// quantifiers.
func genRepeat(inner *syntax.Regexp, min, max int, budget int) []string {
	counts := map[int]struct{}{min: {}}
	if min+1 >= 0 {
		counts[min+1] = struct{}{}
	}
	if max >= 0 {
		counts[max] = struct{}{}
	} else if min+3 >= 0 {
		counts[min+3] = struct{}{}
	}

	result := make([]string, 0, budget)
	for n := range counts {
		if n < 0 {
			continue
		}
		reps := repeatSamples(inner, n, budget)
		result = capSamples(append(result, reps...), budget)
		if len(result) >= budget {
			break
		}
	}
	if len(result) == 0 {
		result = []string{""}
	}
	return result
}

func repeatSamples(inner *syntax.Regexp, n int, budget int) []string {
	if n == 0 {
		return []string{""}
	}
	one := genSamples(inner, budget)
	result := []string{""}
	for i := 0; i < n; i++ {
		result = combineSamples(result, one, budget)
		if len(result) == 0 {
			return []string{""}
		}
	}
	return result
}

// sampleCharClass picks a handful of representative runes from each range in
// a character class: the low end, the high end, and the midpoint.
func sampleCharClass(ranges []rune, max int) []string {
	result := make([]string, 0, max)
	for i := 0; i+1 < len(ranges); i += 2 {
		lo, hi := ranges[i], ranges[i+1]
		mid := lo + (hi-lo)/2
		for _, r := range []rune{lo, mid, hi} {
			result = append(result, string(r))
			if len(result) >= max {
				return capSamples(result, max)
			}
		}
	}
	if len(result) == 0 {
		return []string{""}
	}
	return result
}

func combineSamples(a, b []string, max int) []string {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	result := make([]string, 0, max)
	for _, x := range a {
		for _, y := range b {
			result = append(result, x+y)
			if len(result) >= max {
				return result
			}
		}
	}
	return result
}

func capSamples(s []string, max int) []string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
