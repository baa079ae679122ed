package main

import (
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fake_news_detector/detector"
	"fake_news_detector/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web interface",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		d, err := buildDetector(cfg, logger)
		if err != nil {
			return err
		}
		// no interactive prompt here: the page asks for the key instead
		apiKey, err := resolveAPIKey(cfg, nil)
		if err != nil {
			return err
		}
		if apiKey == "" {
			logger.Warn("no API key found; users must enter one in the page")
		}

		srv, err := server.New(d, server.Options{
			APIKey:         apiKey,
			Model:          detector.Model(cfg.LLM.Model),
			Language:       detector.Language(cfg.Language),
			WebSearch:      cfg.WebSearchEnabled(),
			AllowedOrigins: cfg.AllowedOrigins,
			Logger:         logger.Named("http"),
		})
		if err != nil {
			return err
		}

		listen := cfg.ServerAddr
		if serveAddr != "" {
			listen = serveAddr
		}
		logger.Info("starting web server", zap.String("addr", listen))
		return http.ListenAndServe(listen, srv.Routes())
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "http listen address (overrides config server_addr)")
}
