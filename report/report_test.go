package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fake_news_detector/detector"
	"fake_news_detector/evidence"
	"fake_news_detector/report"
)

func TestMarkdown(t *testing.T) {
	v := detector.Verdict{
		Verdict:            "REAL",
		Confidence:         "HIGH",
		Explanation:        "Multiple independent sources confirm the 1969 landing.",
		SupportingFacts:    []string{"Retroreflectors left on the surface are still used today."},
		ContradictingFacts: []string{},
	}

	got := report.Markdown(v)

	assert.True(t, strings.HasPrefix(got, "**VERDICT: REAL**\n\n"))
	assert.Contains(t, got, "**Confidence Level:** High")
	assert.Contains(t, got, "### Explanation\n\nMultiple independent sources")
	assert.Contains(t, got, "### Supporting Facts\n\n✅ Retroreflectors")
	assert.NotContains(t, got, "Contradicting Facts")
	assert.NotContains(t, got, "Red Flags")
}

func TestMarkdown_MinimalVerdicts(t *testing.T) {
	tests := []struct {
		name     string
		verdict  detector.Verdict
		headline string
	}{
		{"error sentinel", detector.Verdict{Verdict: "ERROR", Explanation: "not json"}, "VERDICT: ERROR"},
		{"loose fake", detector.Verdict{Verdict: "probably fake"}, "VERDICT: FAKE"},
		{"unknown", detector.Verdict{Verdict: "MISLEADING"}, "VERDICT: UNCERTAIN"},
		{"empty", detector.Verdict{}, "VERDICT: UNCERTAIN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := report.Markdown(tt.verdict)
			assert.Contains(t, got, tt.headline)
			assert.Equal(t, tt.headline, report.Headline(tt.verdict))
			assert.NotContains(t, got, "Confidence Level")
		})
	}
}

func TestMarkdown_FactMarkers(t *testing.T) {
	got := report.Markdown(detector.Verdict{
		Verdict:            "FAKE",
		ContradictingFacts: []string{"c1", "c2"},
		RedFlags:           []string{"r1"},
	})
	assert.Contains(t, got, "❌ c1\n\n❌ c2")
	assert.Contains(t, got, "🚩 r1")
}

func TestEvidenceMarkdown(t *testing.T) {
	got := report.EvidenceMarkdown([]evidence.Item{{Source: "Wikipedia", Text: "Page: A\nSummary: B"}})
	assert.Equal(t, "### Wikipedia Results\n\n> Page: A\n> Summary: B\n\n", got)
	assert.Contains(t, report.EvidenceMarkdown(nil), "No search results")
}

func TestMarkdownToHTML_Sanitises(t *testing.T) {
	html, err := report.MarkdownToHTML(report.Markdown(detector.Verdict{
		Verdict:     "FAKE",
		Explanation: "See [site](javascript:alert(1)) <script>alert('x')</script>",
		RedFlags:    []string{"<img src=x onerror=alert(1)>"},
	}))
	require.NoError(t, err)

	assert.Contains(t, html, "<strong>VERDICT: FAKE</strong>")
	assert.Contains(t, html, "<h3>Red Flags</h3>")
	assert.NotContains(t, html, "<script")
	assert.NotContains(t, html, "<img")
	assert.NotContains(t, html, `href="javascript`)
}

func TestStatusAt(t *testing.T) {
	assert.Equal(t, "Searching for relevant sources...", report.StatusAt(0))
	assert.Equal(t, "Searching for relevant sources...", report.StatusAt(29))
	assert.Equal(t, "Cross-referencing information...", report.StatusAt(30))
	assert.Equal(t, "Analyzing content authenticity...", report.StatusAt(89))
	assert.Equal(t, "Finalizing verdict...", report.StatusAt(90))
	assert.Equal(t, "Finalizing verdict...", report.StatusAt(100))
}

func TestSimulateProgress(t *testing.T) {
	var buf bytes.Buffer
	report.SimulateProgress(&buf, 0)

	out := buf.String()
	for _, s := range report.ProgressSteps {
		assert.Contains(t, out, s.Message)
	}
}

func TestBadge(t *testing.T) {
	for _, v := range []string{"REAL", "FAKE", "UNCERTAIN", "ERROR"} {
		assert.Contains(t, report.Badge(detector.Verdict{Verdict: v}), "VERDICT: "+v)
	}
}

func TestTerminal(t *testing.T) {
	out, err := report.Terminal(report.Markdown(detector.Verdict{Verdict: "REAL", Explanation: "Confirmed."}), 60)
	require.NoError(t, err)
	assert.Contains(t, out, "Confirmed.")
}
