package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Aashish23092/ocr-autofill/utils"
)

type Config struct {
	ServerPort string

	GeminiAPIKey  string
	GeminiBaseURL string
	GeminiModel   string
	LLMTimeout    time.Duration

	TesseractDataPath string
	OCRLanguages      string
	MaxFileSize       int64

	AddressFixupsFile string
	AddressFixups     []utils.Substitution

	LogLevel  string
	LogFormat string

	CORSAllowedOrigins []string
}

// LoadConfig reads an optional .env file, then the environment. The address
// fixup table is compiled here so a bad pattern fails at startup.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	timeout, err := time.ParseDuration(getEnv("LLM_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("LLM_TIMEOUT: %w", err)
	}

	maxSize, err := strconv.ParseInt(getEnv("MAX_UPLOAD_BYTES", strconv.Itoa(10<<20)), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("MAX_UPLOAD_BYTES: %w", err)
	}

	cfg := &Config{
		ServerPort:         getEnv("SERVER_PORT", "5000"),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		GeminiBaseURL:      getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		GeminiModel:        getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		LLMTimeout:         timeout,
		TesseractDataPath:  getEnv("TESSDATA_PREFIX", "/usr/share/tesseract-ocr/5/tessdata/"),
		OCRLanguages:       getEnv("OCR_LANGUAGES", "eng"),
		MaxFileSize:        maxSize,
		AddressFixupsFile:  os.Getenv("ADDRESS_FIXUPS_FILE"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "console"),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}

	if cfg.AddressFixupsFile != "" {
		fixups, err := utils.LoadSubstitutions(cfg.AddressFixupsFile)
		if err != nil {
			return nil, fmt.Errorf("ADDRESS_FIXUPS_FILE: %w", err)
		}
		cfg.AddressFixups = fixups
	}

	return cfg, nil
}

// Validate reports settings the extraction endpoint cannot run without.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.GeminiAPIKey) == "" {
		errs = append(errs, errors.New("GEMINI_API_KEY is required"))
	}
	if c.LLMTimeout <= 0 {
		errs = append(errs, errors.New("LLM_TIMEOUT must be positive"))
	}
	if c.MaxFileSize <= 0 {
		errs = append(errs, errors.New("MAX_UPLOAD_BYTES must be positive"))
	}
	if _, err := strconv.Atoi(c.ServerPort); err != nil {
		errs = append(errs, fmt.Errorf("SERVER_PORT %q is not a number", c.ServerPort))
	}
	return errors.Join(errs...)
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
