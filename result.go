package jsonschema

import (
	"embed"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/kaptinlin/go-i18n"
)

//go:embed locales/*.json
var localesFS embed.FS

// I18n returns an internationalization bundle loaded with this package's
// embedded locale files, for FormatResultLocalized and diff-message
// translation. Callers derive localizers from it with bundle.NewLocalizer.
func I18n() (*i18n.I18n, error) {
	bundle := i18n.NewBundle(
		i18n.WithDefaultLocale("en"),
		i18n.WithLocales("en", "zh-Hans"),
	)
	if err := bundle.LoadFS(localesFS, "locales/*.json"); err != nil {
		return nil, err
	}
	return bundle, nil
}

// Diff describes one localized structural discrepancy found by Check:
// something the target schema requires (or excludes) that the candidate
// does not guarantee, at a dot-notation path into the schema tree (e.g.
// "properties.address.city", "items[2]", "anyOf[1]").
type Diff struct {
	Type     string `json:"type"`
	Path     string `json:"path"`
	Expected any    `json:"expected,omitempty"`
	Actual   any    `json:"actual,omitempty"`
}

// CheckResult is the outcome of Check: whether the candidate is a subset of
// the target, the merged (intersected) schema, and the diffs explaining any
// gap.
type CheckResult struct {
	IsSubset bool    `json:"isSubset"`
	Merged   *Schema `json:"merged,omitempty"`
	Diffs    []Diff  `json:"diffs,omitempty"`
}

var defaultMessages = map[string]string{}

func init() {
	var m map[string]string
	data, err := localesFS.ReadFile("locales/en.json")
	if err != nil {
		return
	}
	if err := json.Unmarshal(data, &m); err == nil {
		defaultMessages = m
	}
}

// FormatResult renders a CheckResult as human-readable English text: a
// ✅/❌ header line, then one "+"/"-"/"~"/"!" line per diff (see diffSymbol).
func FormatResult(r *CheckResult) string {
	return FormatResultLocalized(r, nil)
}

// FormatResultLocalized renders r using localizer for diff messages, falling
// back to the embedded English templates when localizer is nil or lacks a
// translation for a diff's type.
func FormatResultLocalized(r *CheckResult, localizer *i18n.Localizer) string {
	var b strings.Builder
	if r.IsSubset {
		b.WriteString("✅ compatible\n")
		return b.String()
	}
	b.WriteString("❌ incompatible\n")
	for _, d := range r.Diffs {
		fmt.Fprintf(&b, "%s %s: %s\n", diffSymbol(d), diffPathLabel(d.Path), diffMessage(d, localizer))
	}
	return b.String()
}

func diffPathLabel(path string) string {
	if path == "" {
		return "(root)"
	}
	return path
}

// diffSymbol follows the convention: "+" for a constraint the merge added
// that candidate didn't have, "-" for one the merge dropped, "!" for an
// outright incompatibility, "~" for one that simply changed.
func diffSymbol(d Diff) string {
	switch d.Type {
	case "added":
		return "+"
	case "removed":
		return "-"
	case "incompatible":
		return "!"
	default:
		return "~"
	}
}

func diffMessage(d Diff, localizer *i18n.Localizer) string {
	params := map[string]any{"path": diffPathLabel(d.Path), "expected": d.Expected, "actual": d.Actual}
	if localizer != nil {
		if msg := localizer.Get(d.Type, i18n.Vars(params)); msg != "" {
			return msg
		}
	}
	template, ok := defaultMessages[d.Type]
	if !ok {
		template = d.Type
	}
	return replaceParams(template, params)
}

func replaceParams(template string, params map[string]any) string {
	for key, value := range params {
		template = strings.ReplaceAll(template, "{"+key+"}", fmt.Sprint(value))
	}
	return template
}
