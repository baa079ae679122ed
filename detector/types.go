package detector

import "strings"

// Model is an OpenAI chat model offered for analysis.
type Model string

const (
	ModelGPT4o      Model = "gpt-4o"
	ModelGPT4Turbo  Model = "gpt-4-turbo"
	ModelGPT35Turbo Model = "gpt-3.5-turbo"

	DefaultModel = ModelGPT4o
)

// Models lists the selectable models, default first.
var Models = []Model{ModelGPT4o, ModelGPT4Turbo, ModelGPT35Turbo}

// Valid reports whether m is one of Models.
func (m Model) Valid() bool {
	for _, known := range Models {
		if m == known {
			return true
		}
	}
	return false
}

// Verdict values. ERROR is never produced by the model; it marks a
// completion that could not be parsed.
const (
	VerdictReal      = "REAL"
	VerdictFake      = "FAKE"
	VerdictUncertain = "UNCERTAIN"
	VerdictError     = "ERROR"
)

// Verdict 模型输出的结构化结论；除 Verdict 外均可缺省。
type Verdict struct {
	Verdict            string         `json:"verdict"`
	Confidence         string         `json:"confidence,omitempty"`
	Explanation        string         `json:"explanation,omitempty"`
	SupportingFacts    []string       `json:"supporting_facts,omitempty"`
	ContradictingFacts []string       `json:"contradicting_facts,omitempty"`
	RedFlags           []string       `json:"red_flags,omitempty"`
	Extra              map[string]any `json:"extra,omitempty"`
}

// Class is how a verdict is displayed.
type Class string

const (
	ClassReal      Class = "real"
	ClassFake      Class = "fake"
	ClassUncertain Class = "uncertain"
	ClassError     Class = "error"
)

// Class matches the verdict loosely: "Likely FAKE" is fake, "real" is
// real, anything unrecognised is uncertain. FAKE is tested before REAL.
func (v Verdict) Class() Class {
	upper := strings.ToUpper(strings.TrimSpace(v.Verdict))
	switch {
	case upper == VerdictError:
		return ClassError
	case strings.Contains(upper, VerdictFake):
		return ClassFake
	case strings.Contains(upper, VerdictReal):
		return ClassReal
	default:
		return ClassUncertain
	}
}

// Label is the canonical upper-case verdict shown to users.
func (c Class) Label() string {
	switch c {
	case ClassFake:
		return VerdictFake
	case ClassReal:
		return VerdictReal
	case ClassError:
		return VerdictError
	default:
		return VerdictUncertain
	}
}

// RequestConfig is the per-analysis configuration. It is passed into every
// call instead of being read from process globals.
type RequestConfig struct {
	APIKey    string   `json:"-"`
	Model     Model    `json:"model"`
	Language  Language `json:"language"`
	WebSearch bool     `json:"web_search"`
}
