package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"SERVER_PORT", "GEMINI_API_KEY", "GEMINI_BASE_URL", "GEMINI_MODEL", "LLM_TIMEOUT",
		"TESSDATA_PREFIX", "OCR_LANGUAGES", "MAX_UPLOAD_BYTES", "ADDRESS_FIXUPS_FILE",
		"LOG_LEVEL", "LOG_FORMAT", "CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.ServerPort)
	assert.Equal(t, "gemini-2.0-flash", cfg.GeminiModel)
	assert.Equal(t, 30*time.Second, cfg.LLMTimeout)
	assert.Equal(t, int64(10<<20), cfg.MaxFileSize)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Nil(t, cfg.AddressFixups)

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestLoadConfigOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("GEMINI_API_KEY", "k")
	t.Setenv("LLM_TIMEOUT", "5s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://app.example.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8081", cfg.ServerPort)
	assert.Equal(t, 5*time.Second, cfg.LLMTimeout)
	assert.Equal(t, []string{"http://localhost:3000", "https://app.example.com"}, cfg.CORSAllowedOrigins)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigBadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_TIMEOUT", "soon")
	_, err := LoadConfig()
	assert.Error(t, err)

	clearEnv(t)
	t.Setenv("MAX_UPLOAD_BYTES", "ten")
	_, err = LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigFixupsFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "fixups.yaml")
	require.NoError(t, os.WriteFile(path, []byte("substitutions:\n  - pattern: '(?i)\\bmathigri\\b'\n    replacement: MATHIGIRI\n"), 0o600))
	t.Setenv("ADDRESS_FIXUPS_FILE", path)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Len(t, cfg.AddressFixups, 1)
	assert.Equal(t, "MATHIGIRI", cfg.AddressFixups[0].Apply("mathigri"))

	require.NoError(t, os.WriteFile(path, []byte("substitutions:\n  - pattern: '(unclosed'\n    replacement: X\n"), 0o600))
	_, err = LoadConfig()
	assert.Error(t, err)
}

func TestSetupLogger(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.DebugLevel)

	var buf bytes.Buffer
	cfg := &Config{LogLevel: "warn", LogFormat: "json"}
	logger := cfg.SetupLogger(&buf)

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"message":"shown"`)
}
