package server

import (
	"go.uber.org/zap"

	"fake_news_detector/detector"
)

type notice struct {
	Kind    string `json:"kind"`
	Source  string `json:"source,omitempty"`
	Message string `json:"message"`
}

// collector keeps the notifications of one analysis for the response.
type collector struct {
	logger  *zap.Logger
	notices []notice
}

func (c *collector) Progress(msg string) {
	c.notices = append(c.notices, notice{Kind: "progress", Message: msg})
}

func (c *collector) SourceFailed(source string, err error) {
	c.notices = append(c.notices, notice{Kind: "error", Source: source, Message: err.Error()})
}

func (c *collector) StageChanged(from, to detector.Stage) {
	c.logger.Debug("stage", zap.String("from", string(from)), zap.String("to", string(to)))
}
