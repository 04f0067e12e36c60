package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aashish23092/ocr-autofill/client"
	"github.com/Aashish23092/ocr-autofill/config"
	"github.com/Aashish23092/ocr-autofill/service"
	"github.com/Aashish23092/ocr-autofill/utils"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "ocr-autofill",
	Short: "Extract structured fields from Aadhaar cards and Form 21 certificates",
	Long: `ocr-autofill turns OCR or PDF text of identity documents and vehicle sale
certificates into clean JSON records using an LLM plus deterministic cleaning rules.
Without a subcommand it starts the HTTP server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override LOG_LEVEL (debug, info, warn, error)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the environment, applies flag overrides and sets up logging.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	cfg.SetupLogger(nil)
	return cfg, nil
}

func newExtractionService(cfg *config.Config) *service.ExtractionService {
	gemini := client.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiBaseURL, cfg.GeminiModel, cfg.LLMTimeout)
	return service.NewExtractionService(gemini, utils.NewAddressCleaner(cfg.AddressFixups))
}
