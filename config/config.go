package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"fake_news_detector/detector"
)

// Config holds process-wide settings. It is read once at startup; the
// per-analysis values derived from it are passed explicitly.
type Config struct {
	LLM                LLMConfig    `json:"llm" yaml:"llm"`
	Language           string       `json:"language,omitempty" yaml:"language,omitempty"`
	Search             SearchConfig `json:"search" yaml:"search"`
	ServerAddr         string       `json:"server_addr,omitempty" yaml:"server_addr,omitempty"`
	AllowedOrigins     []string     `json:"allowed_origins,omitempty" yaml:"allowed_origins,omitempty"`
	AllowEmptyEvidence bool         `json:"allow_empty_evidence,omitempty" yaml:"allow_empty_evidence,omitempty"`
	SecretsFile        string       `json:"secrets_file,omitempty" yaml:"secrets_file,omitempty"`
	ProgressDelayMS    *int         `json:"progress_delay_ms,omitempty" yaml:"progress_delay_ms,omitempty"`
}

// LLMConfig 模型配置；api key 不写在这里，见 ResolveCredential。
type LLMConfig struct {
	Provider string `json:"provider,omitempty" yaml:"provider,omitempty"`
	Model    string `json:"model,omitempty" yaml:"model,omitempty"`
	BaseURL  string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
}

// SearchConfig configures the evidence sources.
type SearchConfig struct {
	WebSearch         *bool  `json:"web_search,omitempty" yaml:"web_search,omitempty"`
	DuckDuckGoURL     string `json:"duckduckgo_url,omitempty" yaml:"duckduckgo_url,omitempty"`
	WebMaxResults     int    `json:"web_max_results,omitempty" yaml:"web_max_results,omitempty"`
	WikipediaURL      string `json:"wikipedia_url,omitempty" yaml:"wikipedia_url,omitempty"`
	WikipediaLang     string `json:"wikipedia_lang,omitempty" yaml:"wikipedia_lang,omitempty"`
	WikipediaTopK     int    `json:"wikipedia_top_k,omitempty" yaml:"wikipedia_top_k,omitempty"`
	WikipediaMaxChars int    `json:"wikipedia_max_chars,omitempty" yaml:"wikipedia_max_chars,omitempty"`
	TimeoutSeconds    int    `json:"timeout_seconds,omitempty" yaml:"timeout_seconds,omitempty"`
}

const (
	ProviderOpenAI = "openai"
	ProviderMock   = "mock"

	defaultAddr          = ":8080"
	defaultSecretsFile   = ".secrets.yaml"
	defaultProgressDelay = 30
)

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		LLM: LLMConfig{
			Provider: ProviderOpenAI,
			Model:    string(detector.DefaultModel),
		},
		Language:    string(detector.DefaultLanguage),
		ServerAddr:  defaultAddr,
		SecretsFile: defaultSecretsFile,
	}
}

// LoadConfig reads a JSON or YAML (by extension) config from disk on top
// of Default. An empty path returns Default.
func LoadConfig(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from the environment.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("OPENAI_BASE_URL"); v != "" {
		c.LLM.BaseURL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.ServerAddr = ":" + v
	}
}

// Validate checks the enumerated settings.
func (c Config) Validate() error {
	switch c.LLM.Provider {
	case ProviderOpenAI, ProviderMock:
	default:
		return fmt.Errorf("llm provider %s not supported", c.LLM.Provider)
	}
	if !detector.Model(c.LLM.Model).Valid() {
		return fmt.Errorf("llm model %q not supported; choose one of %v", c.LLM.Model, detector.Models)
	}
	if !detector.Language(c.Language).Valid() {
		return fmt.Errorf("language %q not supported; choose one of %v", c.Language, detector.Languages)
	}
	if c.Search.TimeoutSeconds < 0 {
		return fmt.Errorf("search.timeout_seconds must not be negative")
	}
	return nil
}

// WebSearchEnabled defaults to true.
func (c Config) WebSearchEnabled() bool {
	return c.Search.WebSearch == nil || *c.Search.WebSearch
}

// SearchTimeout is zero (no client timeout) unless configured.
func (c Config) SearchTimeout() time.Duration {
	return time.Duration(c.Search.TimeoutSeconds) * time.Second
}

// ProgressDelay is the pause between simulated progress steps.
func (c Config) ProgressDelay() time.Duration {
	ms := defaultProgressDelay
	if c.ProgressDelayMS != nil {
		ms = *c.ProgressDelayMS
	}
	return time.Duration(ms) * time.Millisecond
}
