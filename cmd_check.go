package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"fake_news_detector/config"
	"fake_news_detector/detector"
	"fake_news_detector/report"
)

var checkOpts struct {
	language    string
	model       string
	noWebSearch bool
	noProgress  bool
	asJSON      bool
	mock        bool
}

var checkCmd = &cobra.Command{
	Use:   "check [claim...]",
	Short: "Fact-check one claim",
	Long:  `Fact-check a claim given as arguments, or read from stdin when no arguments (or "-") are given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		claim, err := readClaim(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if checkOpts.mock {
			cfg.LLM.Provider = config.ProviderMock
		}
		if checkOpts.noWebSearch {
			off := false
			cfg.Search.WebSearch = &off
		}
		reqCfg := detector.RequestConfig{
			Model:     detector.Model(cfg.LLM.Model),
			Language:  detector.Language(cfg.Language),
			WebSearch: cfg.WebSearchEnabled(),
		}
		if checkOpts.model != "" {
			reqCfg.Model = detector.Model(checkOpts.model)
		}
		if checkOpts.language != "" {
			reqCfg.Language = detector.Language(checkOpts.language)
		}
		if !reqCfg.Model.Valid() {
			return fmt.Errorf("%w: %q (choose one of %v)", detector.ErrUnsupportedModel, reqCfg.Model, detector.Models)
		}
		if !reqCfg.Language.Valid() {
			return fmt.Errorf("language %q not supported; choose one of %v", reqCfg.Language, detector.Languages)
		}

		d, err := buildDetector(cfg, logger)
		if err != nil {
			return err
		}
		reqCfg.APIKey, err = resolveAPIKey(cfg, config.TerminalPrompt(os.Stdin, cmd.ErrOrStderr()))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		errOut := cmd.ErrOrStderr()
		if !d.WebSearchAvailable() && !checkOpts.asJSON {
			fmt.Fprintln(errOut, report.Warning.Render("Web search is not available. Some functionality will be limited."))
		}

		run, err := d.Analyze(context.Background(), claim, reqCfg, &cliObserver{w: errOut})
		if err != nil {
			if errors.Is(err, detector.ErrMissingCredential) {
				return fmt.Errorf("%w (set %s, add it to %s, or enter it when prompted)", err, config.APIKeyName, cfg.SecretsFile)
			}
			fmt.Fprintln(errOut, report.Failure.Render(err.Error()))
			return err
		}

		if checkOpts.asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(run)
		}
		return printRun(out, errOut, run, cfg)
	},
}

func init() {
	f := checkCmd.Flags()
	f.StringVarP(&checkOpts.language, "language", "l", "", "language of the analysis (English, Spanish, French, ...)")
	f.StringVarP(&checkOpts.model, "model", "m", "", "OpenAI model (gpt-4o, gpt-4-turbo, gpt-3.5-turbo)")
	f.BoolVar(&checkOpts.noWebSearch, "no-web-search", false, "skip the web search sub-query")
	f.BoolVar(&checkOpts.noProgress, "no-progress", false, "do not draw the progress bar")
	f.BoolVar(&checkOpts.asJSON, "json", false, "print the analysis as JSON")
	f.BoolVar(&checkOpts.mock, "mock", false, "use the offline mock model")
}

func readClaim(in io.Reader, args []string) (string, error) {
	var claim string
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		b, err := io.ReadAll(in)
		if err != nil {
			return "", err
		}
		claim = string(b)
	} else {
		claim = strings.Join(args, " ")
	}
	claim = strings.TrimSpace(claim)
	if claim == "" {
		return "", detector.ErrEmptyClaim
	}
	return claim, nil
}

func printRun(out, errOut io.Writer, run *detector.Run, cfg config.Config) error {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	fmt.Fprintln(out, report.Heading.Render("Search Results"))
	ev, err := report.Terminal(report.EvidenceMarkdown(run.Evidence), width)
	if err != nil {
		return err
	}
	fmt.Fprint(out, ev)

	if !checkOpts.noProgress {
		fmt.Fprintln(errOut, report.Heading.Render("Analysis Progress"))
		report.SimulateProgress(errOut, cfg.ProgressDelay())
	}

	fmt.Fprintln(out, report.Heading.Render("Analysis Results"))
	fmt.Fprintln(out, report.Badge(*run.Verdict))
	body, err := report.Terminal(report.Markdown(*run.Verdict), width)
	if err != nil {
		return err
	}
	fmt.Fprint(out, body)
	return nil
}

// cliObserver prints gathering progress and failed sub-queries.
type cliObserver struct {
	w io.Writer
}

func (o *cliObserver) Progress(msg string) {
	fmt.Fprintln(o.w, msg)
}

func (o *cliObserver) SourceFailed(_ string, err error) {
	fmt.Fprintln(o.w, report.Warning.Render(err.Error()))
}

func (o *cliObserver) StageChanged(from, to detector.Stage) {
	logger.Debug(fmt.Sprintf("stage %s -> %s", from, to))
}
