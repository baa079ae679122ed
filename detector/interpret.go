package detector

import (
	"strings"

	"github.com/tidwall/gjson"
)

var knownFields = map[string]bool{
	"verdict":             true,
	"confidence":          true,
	"explanation":         true,
	"supporting_facts":    true,
	"contradicting_facts": true,
	"red_flags":           true,
}

// Interpret parses a completion into a Verdict. Anything that is not a
// JSON object becomes an ERROR verdict whose explanation is the raw text.
// Field values are taken as they come; no schema is enforced.
func Interpret(raw string) Verdict {
	if !gjson.Valid(raw) {
		return errorVerdict(raw)
	}
	doc := gjson.Parse(raw)
	if !doc.IsObject() {
		return errorVerdict(raw)
	}

	v := Verdict{
		Verdict:            text(doc.Get("verdict")),
		Confidence:         text(doc.Get("confidence")),
		Explanation:        text(doc.Get("explanation")),
		SupportingFacts:    list(doc.Get("supporting_facts")),
		ContradictingFacts: list(doc.Get("contradicting_facts")),
		RedFlags:           list(doc.Get("red_flags")),
	}
	if strings.TrimSpace(v.Verdict) == "" {
		v.Verdict = VerdictUncertain
	}

	doc.ForEach(func(key, value gjson.Result) bool {
		if knownFields[key.String()] {
			return true
		}
		if v.Extra == nil {
			v.Extra = map[string]any{}
		}
		v.Extra[key.String()] = value.Value()
		return true
	})
	return v
}

func errorVerdict(raw string) Verdict {
	return Verdict{Verdict: VerdictError, Explanation: raw}
}

func text(r gjson.Result) string {
	if !r.Exists() || r.Type == gjson.Null {
		return ""
	}
	if r.IsObject() || r.IsArray() {
		return r.Raw
	}
	return r.String()
}

// list keeps array elements in order; a lone scalar becomes a one-item list.
func list(r gjson.Result) []string {
	if !r.Exists() || r.Type == gjson.Null {
		return nil
	}
	if !r.IsArray() {
		if s := text(r); s != "" {
			return []string{s}
		}
		return nil
	}
	out := []string{}
	for _, item := range r.Array() {
		out = append(out, text(item))
	}
	return out
}
