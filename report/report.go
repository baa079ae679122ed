// Package report renders gathered evidence and verdicts for people: as
// Markdown, as sanitised HTML for the web page and styled for terminals.
package report

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"fake_news_detector/detector"
	"fake_news_detector/evidence"
)

// Headline is the verdict banner, e.g. "VERDICT: FAKE".
func Headline(v detector.Verdict) string {
	return "VERDICT: " + v.Class().Label()
}

// Markdown 生成结论报告，缺省字段直接跳过。
func Markdown(v detector.Verdict) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("**%s**\n\n", Headline(v)))

	if v.Confidence != "" {
		sb.WriteString(fmt.Sprintf("**Confidence Level:** %s\n\n", capitalize(v.Confidence)))
	}
	if v.Explanation != "" {
		sb.WriteString("### Explanation\n\n")
		sb.WriteString(v.Explanation)
		sb.WriteString("\n\n")
	}
	writeList(&sb, "Supporting Facts", "✅", v.SupportingFacts)
	writeList(&sb, "Contradicting Facts", "❌", v.ContradictingFacts)
	writeList(&sb, "Red Flags", "🚩", v.RedFlags)
	return strings.TrimRight(sb.String(), "\n") + "\n"
}

func writeList(sb *strings.Builder, title, marker string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(fmt.Sprintf("### %s\n\n", title))
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("%s %s\n\n", marker, item))
	}
}

// EvidenceMarkdown lists the gathered evidence under "<source> Results".
func EvidenceMarkdown(items []evidence.Item) string {
	if len(items) == 0 {
		return "_No search results._\n"
	}
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("### %s Results\n\n", item.Source))
		for _, line := range strings.Split(strings.TrimSpace(item.Text), "\n") {
			sb.WriteString("> ")
			sb.WriteString(line)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
