package detector

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"fake_news_detector/evidence"
)

// Observer follows an analysis: stage changes, gathering progress and
// failed sub-queries.
type Observer interface {
	evidence.Reporter
	StageChanged(from, to Stage)
}

// Options configures a Detector.
type Options struct {
	Gatherer *evidence.Gatherer
	NewLLM   LLMFactory
	Provider string
	BaseURL  string
	// AllowEmptyEvidence lets the analysis continue to the model when every
	// sub-query failed.
	AllowEmptyEvidence bool
	Logger             *zap.Logger
}

// Detector 负责：检索证据 -> 组装提示词 -> 请求模型 -> 解析结论。
// It holds only read-only collaborators and is safe for concurrent use.
type Detector struct {
	gatherer   *evidence.Gatherer
	newLLM     LLMFactory
	provider   string
	baseURL    string
	allowEmpty bool
	logger     *zap.Logger
}

func New(opts Options) (*Detector, error) {
	if opts.Gatherer == nil {
		return nil, errors.New("evidence gatherer is required")
	}
	if opts.NewLLM == nil {
		return nil, errors.New("llm factory is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Detector{
		gatherer:   opts.Gatherer,
		newLLM:     opts.NewLLM,
		provider:   opts.Provider,
		baseURL:    opts.BaseURL,
		allowEmpty: opts.AllowEmptyEvidence,
		logger:     logger,
	}, nil
}

// WebSearchAvailable is the process-wide web search capability flag.
func (d *Detector) WebSearchAvailable() bool {
	return d.gatherer.WebSearchAvailable()
}

// Analyze runs the whole pipeline for one claim. The returned Run is
// always non-nil once the claim is accepted; on failure it is in
// StageFailed and carries no verdict.
func (d *Detector) Analyze(ctx context.Context, claim string, cfg RequestConfig, obs Observer) (*Run, error) {
	claim = strings.TrimSpace(claim)
	if claim == "" {
		return nil, ErrEmptyClaim
	}
	if obs == nil {
		obs = nopObserver{}
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Language == "" {
		cfg.Language = DefaultLanguage
	}
	cfg.WebSearch = cfg.WebSearch && d.WebSearchAvailable()

	run := NewRun(claim, cfg)
	log := d.logger.With(zap.String("run", run.ID))
	step := func(to Stage) error {
		from := run.Stage
		if err := run.advance(to); err != nil {
			return err
		}
		log.Debug("stage", zap.String("from", string(from)), zap.String("to", string(to)))
		obs.StageChanged(from, to)
		return nil
	}
	fail := func(err error) (*Run, error) {
		from := run.Stage
		err = run.fail(err)
		obs.StageChanged(from, StageFailed)
		log.Warn("analysis failed", zap.String("stage", string(from)), zap.Error(err))
		return run, err
	}

	if err := step(StageGathering); err != nil {
		return run, err
	}
	counter := &failureCounter{Reporter: obs}
	run.Evidence = d.gatherer.Gather(ctx, claim, cfg.WebSearch, counter)
	if len(run.Evidence) == 0 && len(counter.errs) > 0 && !d.allowEmpty {
		return fail(errors.Join(ErrNoEvidence, errors.Join(counter.errs...)))
	}

	if err := step(StagePrompting); err != nil {
		return run, err
	}
	run.Request = BuildRequest(claim, run.Evidence, cfg.Language)

	if err := step(StageRequesting); err != nil {
		return run, err
	}
	raw, err := RequestVerdict(ctx, d.newLLM, LLMSettings{
		Provider: d.provider,
		Model:    cfg.Model,
		APIKey:   cfg.APIKey,
		BaseURL:  d.baseURL,
	}, run.Request)
	if err != nil {
		return fail(err)
	}
	run.Completion = raw

	if err := step(StageInterpreting); err != nil {
		return run, err
	}
	verdict := Interpret(raw)
	if verdict.Verdict == VerdictError {
		log.Warn("completion is not a JSON object, keeping raw text", zap.Int("chars", len(raw)))
	}
	run.Verdict = &verdict

	if err := step(StageDone); err != nil {
		return run, err
	}
	log.Info("analysis done",
		zap.String("model", string(cfg.Model)),
		zap.String("language", string(cfg.Language)),
		zap.Int("evidence", len(run.Evidence)),
		zap.String("verdict", verdict.Verdict))
	return run, nil
}

// failureCounter collects sub-query failures on the way to the observer.
type failureCounter struct {
	evidence.Reporter
	errs []error
}

func (c *failureCounter) SourceFailed(source string, err error) {
	c.errs = append(c.errs, err)
	c.Reporter.SourceFailed(source, err)
}

type nopObserver struct{}

func (nopObserver) Progress(string)            {}
func (nopObserver) SourceFailed(string, error) {}
func (nopObserver) StageChanged(Stage, Stage)  {}
