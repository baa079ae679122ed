package server

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fake_news_detector/detector"
	"fake_news_detector/evidence"
	"fake_news_detector/report"
)

//go:embed web/dist
var embeddedStatic embed.FS

// Options configures the HTTP front-end.
type Options struct {
	// APIKey is the process credential; a request may bring its own.
	APIKey         string
	Model          detector.Model
	Language       detector.Language
	WebSearch      bool
	AllowedOrigins []string
	RequestTimeout time.Duration
	Logger         *zap.Logger
}

type Server struct {
	detector *detector.Detector
	opts     Options
	logger   *zap.Logger
	staticFS http.Handler
}

func New(d *detector.Detector, opts Options) (*Server, error) {
	if d == nil {
		return nil, errors.New("detector required")
	}
	sub, err := fs.Sub(embeddedStatic, "web/dist")
	if err != nil {
		return nil, err
	}
	if opts.Model == "" {
		opts.Model = detector.DefaultModel
	}
	if opts.Language == "" {
		opts.Language = detector.DefaultLanguage
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		detector: d,
		opts:     opts,
		logger:   logger,
		staticFS: http.FileServer(http.FS(sub)),
	}, nil
}

func (s *Server) Routes() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), s.logMiddleware())
	if len(s.opts.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins: s.opts.AllowedOrigins,
			AllowMethods: []string{http.MethodGet, http.MethodPost},
			AllowHeaders: []string{"Content-Type"},
			MaxAge:       12 * time.Hour,
		}))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	api := r.Group("/api")
	{
		api.GET("/meta", s.handleMeta)
		api.POST("/analyze", s.handleAnalyze)
	}
	r.NoRoute(s.staticHandler)
	return r
}

func (s *Server) staticHandler(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	s.staticFS.ServeHTTP(c.Writer, c.Request)
}

// --- Handlers ---

type metaResp struct {
	Models               []detector.Model      `json:"models"`
	Languages            []detector.Language   `json:"languages"`
	DefaultModel         detector.Model        `json:"default_model"`
	DefaultLanguage      detector.Language     `json:"default_language"`
	WebSearchAvailable   bool                  `json:"web_search_available"`
	CredentialConfigured bool                  `json:"credential_configured"`
	ProgressSteps        []report.ProgressStep `json:"progress_steps"`
}

func (s *Server) handleMeta(c *gin.Context) {
	c.JSON(http.StatusOK, metaResp{
		Models:               detector.Models,
		Languages:            detector.Languages,
		DefaultModel:         s.opts.Model,
		DefaultLanguage:      s.opts.Language,
		WebSearchAvailable:   s.webSearch(),
		CredentialConfigured: s.opts.APIKey != "",
		ProgressSteps:        report.ProgressSteps,
	})
}

type analyzeReq struct {
	Claim    string `json:"claim"`
	Language string `json:"language"`
	Model    string `json:"model"`
	APIKey   string `json:"api_key"`
}

type analyzeResp struct {
	ID           string                 `json:"id"`
	Claim        string                 `json:"claim"`
	Language     detector.Language      `json:"language"`
	Model        detector.Model         `json:"model"`
	WebSearch    bool                   `json:"web_search"`
	Stages       []detector.StageChange `json:"stages"`
	Notices      []notice               `json:"notices"`
	Evidence     []evidence.Item        `json:"evidence"`
	Verdict      *detector.Verdict      `json:"verdict"`
	VerdictClass detector.Class         `json:"verdict_class"`
	Headline     string                 `json:"headline"`
	ReportHTML   string                 `json:"report_html"`
	EvidenceHTML string                 `json:"evidence_html"`
}

type errorResp struct {
	Error   string         `json:"error"`
	Stage   detector.Stage `json:"stage,omitempty"`
	Notices []notice       `json:"notices,omitempty"`
}

func (s *Server) handleAnalyze(c *gin.Context) {
	var req analyzeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResp{Error: err.Error()})
		return
	}
	cfg, err := s.requestConfig(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResp{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	if s.opts.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.RequestTimeout)
		defer cancel()
	}

	obs := &collector{logger: s.logger}
	run, err := s.detector.Analyze(ctx, req.Claim, cfg, obs)
	if err != nil {
		resp := errorResp{Error: err.Error(), Notices: obs.notices}
		if run != nil {
			resp.Stage = run.Stage
		}
		c.JSON(statusFor(err), resp)
		return
	}

	resp := analyzeResp{
		ID:           run.ID,
		Claim:        run.Claim,
		Language:     run.Config.Language,
		Model:        run.Config.Model,
		WebSearch:    run.Config.WebSearch,
		Stages:       run.History,
		Notices:      obs.notices,
		Evidence:     run.Evidence,
		Verdict:      run.Verdict,
		VerdictClass: run.Verdict.Class(),
		Headline:     report.Headline(*run.Verdict),
	}
	if resp.Notices == nil {
		resp.Notices = []notice{}
	}
	if resp.Evidence == nil {
		resp.Evidence = []evidence.Item{}
	}
	if resp.ReportHTML, err = report.MarkdownToHTML(report.Markdown(*run.Verdict)); err != nil {
		s.logger.Warn("render report", zap.Error(err))
	}
	if resp.EvidenceHTML, err = report.MarkdownToHTML(report.EvidenceMarkdown(run.Evidence)); err != nil {
		s.logger.Warn("render evidence", zap.Error(err))
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) requestConfig(req analyzeReq) (detector.RequestConfig, error) {
	if strings.TrimSpace(req.Claim) == "" {
		return detector.RequestConfig{}, detector.ErrEmptyClaim
	}
	cfg := detector.RequestConfig{
		APIKey:    s.opts.APIKey,
		Model:     s.opts.Model,
		Language:  s.opts.Language,
		WebSearch: s.webSearch(),
	}
	if key := strings.TrimSpace(req.APIKey); key != "" {
		cfg.APIKey = key
	}
	if req.Model != "" {
		cfg.Model = detector.Model(req.Model)
		if !cfg.Model.Valid() {
			return cfg, errors.New("unsupported model " + req.Model)
		}
	}
	if req.Language != "" {
		cfg.Language = detector.Language(req.Language)
		if !cfg.Language.Valid() {
			return cfg, errors.New("unsupported language " + req.Language)
		}
	}
	return cfg, nil
}

func (s *Server) webSearch() bool {
	return s.opts.WebSearch && s.detector.WebSearchAvailable()
}

func statusFor(err error) int {
	var upstream *detector.UpstreamError
	switch {
	case errors.Is(err, detector.ErrEmptyClaim), errors.Is(err, detector.ErrUnsupportedModel):
		return http.StatusBadRequest
	case errors.Is(err, detector.ErrMissingCredential):
		return http.StatusUnauthorized
	case errors.As(err, &upstream), errors.Is(err, detector.ErrNoEvidence):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// --- Helpers ---

func (s *Server) logMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.Request.URL.Path
		if path == "" {
			path = "/"
		}
		s.logger.Info("http",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("took", time.Since(start)))
	}
}
