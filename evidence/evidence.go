package evidence

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Source labels, in the order they are queried.
const (
	LabelWebSearch = "Web Search"
	LabelWikipedia = "Wikipedia"
)

// Item is one piece of gathered evidence.
type Item struct {
	Source string `json:"source"`
	Text   string `json:"text"`
}

// Source is a query -> text lookup service.
type Source interface {
	Name() string
	Search(ctx context.Context, query string) (string, error)
}

// Reporter receives progress notifications and per-source failures while
// gathering. Failures are reported here instead of being returned.
type Reporter interface {
	Progress(msg string)
	SourceFailed(source string, err error)
}

// SourceError is a failed sub-query.
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("error during %s search: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// Gatherer queries the web search source and then the encyclopedia source.
type Gatherer struct {
	Web    Source
	Wiki   Source
	logger *zap.Logger
}

// NewGatherer builds a gatherer. web may be nil when web search is not
// available in this deployment.
func NewGatherer(web, wiki Source, logger *zap.Logger) *Gatherer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gatherer{Web: web, Wiki: wiki, logger: logger}
}

// WebSearchAvailable reports whether a web search source is wired in.
func (g *Gatherer) WebSearchAvailable() bool {
	return g != nil && g.Web != nil
}

// Gather runs the sub-queries one after another. Failed sub-queries are
// omitted from the result and reported to rep; Gather itself never fails.
func (g *Gatherer) Gather(ctx context.Context, claim string, webSearch bool, rep Reporter) []Item {
	if rep == nil {
		rep = nopReporter{}
	}
	var items []Item

	if webSearch && g.Web != nil {
		rep.Progress("🔎 Searching web sources...")
		if item, ok := g.run(ctx, LabelWebSearch, g.Web, claim, rep); ok {
			items = append(items, item)
		}
	}

	if g.Wiki != nil {
		rep.Progress("📚 Searching Wikipedia...")
		if item, ok := g.run(ctx, LabelWikipedia, g.Wiki, claim, rep); ok {
			items = append(items, item)
		}
	}

	return items
}

func (g *Gatherer) run(ctx context.Context, label string, src Source, claim string, rep Reporter) (Item, bool) {
	text, err := src.Search(ctx, claim)
	if err != nil {
		serr := &SourceError{Source: label, Err: err}
		g.logger.Warn("evidence sub-query failed",
			zap.String("source", label),
			zap.String("provider", src.Name()),
			zap.Error(err))
		rep.SourceFailed(label, serr)
		return Item{}, false
	}
	g.logger.Debug("evidence sub-query done",
		zap.String("source", label),
		zap.Int("chars", len(text)))
	return Item{Source: label, Text: text}, true
}

type nopReporter struct{}

func (nopReporter) Progress(string)            {}
func (nopReporter) SourceFailed(string, error) {}
