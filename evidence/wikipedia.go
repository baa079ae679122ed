package evidence

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

const (
	defaultWikiTopK     = 2
	defaultWikiMaxChars = 500
	maxWikiQueryLength  = 300
	noWikiResults       = "No good Wikipedia Search Result was found"
)

// Wikipedia looks a query up through the MediaWiki action API and returns
// "Page: <title>\nSummary: <intro>" blocks for the best matches.
type Wikipedia struct {
	BaseURL  string
	TopK     int
	MaxChars int
	client   *http.Client
}

// NewWikipedia builds the source. An empty baseURL selects the public
// endpoint for lang ("en" when lang is empty).
func NewWikipedia(client *http.Client, baseURL, lang string, topK, maxChars int) *Wikipedia {
	if client == nil {
		client = NewHTTPClient(0)
	}
	if lang == "" {
		lang = "en"
	}
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.wikipedia.org/w/api.php", lang)
	}
	if topK <= 0 {
		topK = defaultWikiTopK
	}
	if maxChars <= 0 {
		maxChars = defaultWikiMaxChars
	}
	return &Wikipedia{BaseURL: baseURL, TopK: topK, MaxChars: maxChars, client: client}
}

func (w *Wikipedia) Name() string { return "wikipedia" }

func (w *Wikipedia) Search(ctx context.Context, query string) (string, error) {
	query = truncateRunes(strings.TrimSpace(query), maxWikiQueryLength)
	if query == "" {
		return "", fmt.Errorf("query is required")
	}

	titles, err := w.searchTitles(ctx, query)
	if err != nil {
		return "", err
	}

	var summaries []string
	for _, title := range titles {
		extract, err := w.intro(ctx, title)
		if err != nil {
			return "", err
		}
		if extract == "" {
			continue
		}
		summaries = append(summaries, fmt.Sprintf("Page: %s\nSummary: %s", title, extract))
	}
	if len(summaries) == 0 {
		return noWikiResults, nil
	}
	return truncateRunes(strings.Join(summaries, "\n\n"), w.MaxChars), nil
}

func (w *Wikipedia) searchTitles(ctx context.Context, query string) ([]string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "search")
	params.Set("srsearch", query)
	params.Set("srlimit", strconv.Itoa(w.TopK))
	params.Set("format", "json")
	params.Set("utf8", "1")

	body, err := w.get(ctx, params)
	if err != nil {
		return nil, err
	}

	var titles []string
	for _, hit := range gjson.GetBytes(body, "query.search").Array() {
		if t := hit.Get("title").String(); t != "" {
			titles = append(titles, t)
		}
	}
	return titles, nil
}

func (w *Wikipedia) intro(ctx context.Context, title string) (string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("prop", "extracts")
	params.Set("exintro", "1")
	params.Set("explaintext", "1")
	params.Set("redirects", "1")
	params.Set("titles", title)
	params.Set("format", "json")

	body, err := w.get(ctx, params)
	if err != nil {
		return "", err
	}

	var extract string
	gjson.GetBytes(body, "query.pages").ForEach(func(_, page gjson.Result) bool {
		extract = strings.TrimSpace(page.Get("extract").String())
		return extract == ""
	})
	return extract, nil
}

func (w *Wikipedia) get(ctx context.Context, params url.Values) ([]byte, error) {
	body, err := fetch(ctx, w.client, w.BaseURL+"?"+params.Encode(), "application/json")
	if err != nil {
		return nil, fmt.Errorf("wikipedia: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("wikipedia: invalid JSON response")
	}
	if msg := gjson.GetBytes(body, "error.info"); msg.Exists() {
		return nil, fmt.Errorf("wikipedia: %s", msg.String())
	}
	return body, nil
}

func truncateRunes(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
