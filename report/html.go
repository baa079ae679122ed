package report

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var (
	md     = goldmark.New()
	policy = bluemonday.UGCPolicy()
)

// MarkdownToHTML converts markdown and drops anything unsafe. Model and
// search output is untrusted, so the result is always sanitised.
func MarkdownToHTML(src string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return policy.Sanitize(buf.String()), nil
}
