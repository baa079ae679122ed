package main

import (
	"fmt"

	"go.uber.org/zap"

	"fake_news_detector/config"
	"fake_news_detector/detector"
	"fake_news_detector/evidence"
)

func buildLLM(cfg config.Config) (detector.LLMFactory, error) {
	switch cfg.LLM.Provider {
	case config.ProviderOpenAI:
		return detector.OpenAIFactory, nil
	case config.ProviderMock:
		return detector.MockFactory, nil
	default:
		return nil, fmt.Errorf("llm provider %s not supported", cfg.LLM.Provider)
	}
}

// buildDetector wires the evidence sources and the model client. The web
// search capability is decided here, once per process.
func buildDetector(cfg config.Config, log *zap.Logger) (*detector.Detector, error) {
	newLLM, err := buildLLM(cfg)
	if err != nil {
		return nil, err
	}

	client := evidence.NewHTTPClient(cfg.SearchTimeout())
	var web evidence.Source
	if cfg.WebSearchEnabled() {
		web = evidence.NewDuckDuckGo(client, cfg.Search.DuckDuckGoURL, cfg.Search.WebMaxResults)
	} else {
		log.Warn("web search is disabled; only Wikipedia will be consulted")
	}
	wiki := evidence.NewWikipedia(client, cfg.Search.WikipediaURL, cfg.Search.WikipediaLang,
		cfg.Search.WikipediaTopK, cfg.Search.WikipediaMaxChars)

	return detector.New(detector.Options{
		Gatherer:           evidence.NewGatherer(web, wiki, log.Named("evidence")),
		NewLLM:             newLLM,
		Provider:           cfg.LLM.Provider,
		BaseURL:            cfg.LLM.BaseURL,
		AllowEmptyEvidence: cfg.AllowEmptyEvidence,
		Logger:             log.Named("detector"),
	})
}

// resolveAPIKey returns the process credential. The mock provider needs
// none, so it gets a placeholder.
func resolveAPIKey(cfg config.Config, prompt config.PromptFunc) (string, error) {
	key, source, err := config.ResolveCredential(cfg.SecretsFile, prompt)
	if err != nil {
		return "", err
	}
	if key == "" && cfg.LLM.Provider == config.ProviderMock {
		return "mock", nil
	}
	if key != "" {
		logger.Info("OpenAI API key detected", zap.String("source", source))
	}
	return key, nil
}
