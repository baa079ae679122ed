package detector_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"fake_news_detector/detector"
)

func TestInterpret(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want detector.Verdict
	}{
		{
			name: "fake verdict passes through",
			raw:  `{"verdict":"FAKE","confidence":"medium","explanation":"No record of this event."}`,
			want: detector.Verdict{Verdict: "FAKE", Confidence: "medium", Explanation: "No record of this event."},
		},
		{
			name: "full record",
			raw: `{"verdict":"REAL","confidence":"high","explanation":"Confirmed.",
				"supporting_facts":["a","b"],"contradicting_facts":[],"red_flags":["c"]}`,
			want: detector.Verdict{
				Verdict:            "REAL",
				Confidence:         "high",
				Explanation:        "Confirmed.",
				SupportingFacts:    []string{"a", "b"},
				ContradictingFacts: []string{},
				RedFlags:           []string{"c"},
			},
		},
		{
			name: "missing verdict defaults to uncertain",
			raw:  `{"explanation":"not sure"}`,
			want: detector.Verdict{Verdict: "UNCERTAIN", Explanation: "not sure"},
		},
		{
			name: "null verdict defaults to uncertain",
			raw:  `{"verdict":null}`,
			want: detector.Verdict{Verdict: "UNCERTAIN"},
		},
		{
			name: "lowercase verdict is not corrected",
			raw:  `{"verdict":"likely fake"}`,
			want: detector.Verdict{Verdict: "likely fake"},
		},
		{
			name: "unexpected types are taken as they come",
			raw:  `{"verdict":"REAL","confidence":0.9,"supporting_facts":"single fact","red_flags":[1,"two"]}`,
			want: detector.Verdict{
				Verdict:         "REAL",
				Confidence:      "0.9",
				SupportingFacts: []string{"single fact"},
				RedFlags:        []string{"1", "two"},
			},
		},
		{
			name: "unknown fields are kept",
			raw:  `{"verdict":"FAKE","sources":["x"],"score":3}`,
			want: detector.Verdict{
				Verdict: "FAKE",
				Extra:   map[string]any{"sources": []any{"x"}, "score": float64(3)},
			},
		},
		{
			name: "surrounding whitespace is fine",
			raw:  "\n  {\"verdict\":\"REAL\"}  \n",
			want: detector.Verdict{Verdict: "REAL"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detector.Interpret(tt.raw)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Interpret() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInterpret_FallbackKeepsRawText(t *testing.T) {
	inputs := []string{
		"",
		"The claim is FAKE.",
		"```json\n{\"verdict\":\"FAKE\"}\n```",
		`{"verdict":"FAKE"`,
		`["FAKE"]`,
		`"FAKE"`,
		`42`,
	}
	for _, raw := range inputs {
		got := detector.Interpret(raw)
		assert.Equal(t, detector.VerdictError, got.Verdict, "input %q", raw)
		assert.Equal(t, raw, got.Explanation, "input %q", raw)
		assert.Empty(t, got.SupportingFacts)
		assert.Empty(t, got.Confidence)
	}
}

func TestVerdict_Class(t *testing.T) {
	tests := []struct {
		verdict string
		want    detector.Class
	}{
		{"FAKE", detector.ClassFake},
		{"REAL", detector.ClassReal},
		{"UNCERTAIN", detector.ClassUncertain},
		{"ERROR", detector.ClassError},
		{"fake", detector.ClassFake},
		{"Mostly Real", detector.ClassReal},
		{"REAL/FAKE/UNCERTAIN", detector.ClassFake},
		{"misleading", detector.ClassUncertain},
		{"", detector.ClassUncertain},
	}
	for _, tt := range tests {
		t.Run(tt.verdict, func(t *testing.T) {
			got := detector.Verdict{Verdict: tt.verdict}.Class()
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, "UNCERTAIN", detector.ClassUncertain.Label())
	assert.Equal(t, "FAKE", detector.ClassFake.Label())
}
