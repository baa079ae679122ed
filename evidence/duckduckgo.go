package evidence

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

const (
	// DefaultDuckDuckGoURL is the HTML-only endpoint, no API key needed.
	DefaultDuckDuckGoURL = "https://html.duckduckgo.com/html/"
	defaultWebResults    = 5
	noWebResults         = "No good DuckDuckGo Search Result was found"
)

// DuckDuckGo searches the web through the DuckDuckGo HTML interface and
// returns the result snippets joined into one text block.
type DuckDuckGo struct {
	BaseURL    string
	MaxResults int
	client     *http.Client
}

func NewDuckDuckGo(client *http.Client, baseURL string, maxResults int) *DuckDuckGo {
	if client == nil {
		client = NewHTTPClient(0)
	}
	if baseURL == "" {
		baseURL = DefaultDuckDuckGoURL
	}
	if maxResults <= 0 {
		maxResults = defaultWebResults
	}
	return &DuckDuckGo{BaseURL: baseURL, MaxResults: maxResults, client: client}
}

func (d *DuckDuckGo) Name() string { return "duckduckgo" }

func (d *DuckDuckGo) Search(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", fmt.Errorf("query is required")
	}
	searchURL := d.BaseURL + "?q=" + url.QueryEscape(query)
	body, err := fetch(ctx, d.client, searchURL, "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	if err != nil {
		return "", fmt.Errorf("duckduckgo: %w", err)
	}

	snippets, err := parseSnippets(body, d.MaxResults)
	if err != nil {
		return "", fmt.Errorf("duckduckgo: %w", err)
	}
	if len(snippets) == 0 {
		return noWebResults, nil
	}
	return strings.Join(snippets, " "), nil
}

// parseSnippets collects the text of result__snippet links, in page order.
func parseSnippets(page []byte, limit int) ([]string, error) {
	doc, err := html.Parse(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var out []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if len(out) >= limit {
			return
		}
		if n.Type == html.ElementNode && hasClass(n, "result__snippet") {
			if text := textContent(n); text != "" {
				out = append(out, text)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return out, nil
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}
