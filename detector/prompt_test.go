package detector_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"fake_news_detector/detector"
	"fake_news_detector/evidence"
)

func TestBuildEvidenceBlock(t *testing.T) {
	items := []evidence.Item{
		{Source: "Web Search", Text: "web text"},
		{Source: "Wikipedia", Text: "Page: Apollo 11\nSummary: ..."},
	}

	got := detector.BuildEvidenceBlock(items)

	assert.Equal(t,
		"--- Web Search Results ---\nweb text\n\n"+
			"--- Wikipedia Results ---\nPage: Apollo 11\nSummary: ...\n\n",
		got)
	assert.Empty(t, detector.BuildEvidenceBlock(nil))
}

func TestBuildInstruction(t *testing.T) {
	items := []evidence.Item{{Source: "Wikipedia", Text: "snippet"}}

	got := detector.BuildInstruction(items, detector.English)

	assert.True(t, strings.HasPrefix(got, "You are an expert fact-checker."))
	assert.Contains(t, got, "--- Wikipedia Results ---\nsnippet\n")
	for _, field := range []string{"verdict", "confidence", "explanation", "supporting_facts", "contradicting_facts", "red_flags"} {
		assert.Contains(t, got, `"`+field+`":`)
	}
	assert.True(t, strings.HasSuffix(got, "Provide your response in English.\n"))
}

func TestBuildInstruction_EmptyEvidence(t *testing.T) {
	got := detector.BuildInstruction(nil, detector.English)

	assert.Contains(t, got, "Here are the search results found for this claim:\n\n\n\nAnalyze the claim")
	assert.Contains(t, got, `"verdict": "REAL/FAKE/UNCERTAIN"`)
	assert.Contains(t, got, "Provide your response in English.")
}

func TestBuildInstruction_Language(t *testing.T) {
	tests := []struct {
		lang detector.Language
		want string
	}{
		{detector.French, "Fournissez votre réponse en français."},
		{detector.Spanish, "Proporciona tu respuesta en español."},
		{detector.Japanese, "日本語で回答してください。"},
		{detector.Language("Klingon"), "Provide your response in English."},
		{detector.Language(""), "Provide your response in English."},
	}
	for _, tt := range tests {
		t.Run(string(tt.lang), func(t *testing.T) {
			got := detector.BuildInstruction(nil, tt.lang)
			assert.Contains(t, got, tt.want)
			if tt.want != "Provide your response in English." {
				assert.NotContains(t, got, "Provide your response in English.")
			}
		})
	}
}

func TestBuildInstruction_Deterministic(t *testing.T) {
	items := []evidence.Item{{Source: "Web Search", Text: "a"}, {Source: "Wikipedia", Text: "b"}}
	assert.Equal(t, detector.BuildInstruction(items, detector.German), detector.BuildInstruction(items, detector.German))
}

func TestLanguages(t *testing.T) {
	assert.Len(t, detector.Languages, 10)
	for _, l := range detector.Languages {
		assert.True(t, l.Valid(), string(l))
		assert.NotEmpty(t, detector.Directive(l))
	}
	assert.False(t, detector.Language("english").Valid())
}

func TestBuildRequest_Prompt(t *testing.T) {
	req := detector.BuildRequest("The moon landing was staged", nil, detector.English)
	p := req.Prompt()

	assert.Equal(t, req.Instruction, p.System)
	assert.Equal(t, "NEWS CLAIM TO VERIFY: The moon landing was staged", p.User)
}
