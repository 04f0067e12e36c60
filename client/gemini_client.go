package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Aashish23092/ocr-autofill/dto"
)

const (
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultGeminiModel   = "gemini-2.0-flash"

	// Low temperature and a short output keep replies to the JSON object.
	generationTemperature = 0.3
	maxOutputTokens       = 512

	maxResponseBytes = 4 << 20
)

// GeminiClient calls the generateContent endpoint once per prompt.
type GeminiClient struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateRequest struct {
	Contents         []geminiContent  `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *geminiError `json:"error"`
}

type geminiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// NewGeminiClient creates a client. Empty baseURL/model fall back to the
// public endpoint and gemini-2.0-flash; timeout bounds the whole call.
func NewGeminiClient(apiKey, baseURL, model string, timeout time.Duration) *GeminiClient {
	if baseURL == "" {
		baseURL = defaultGeminiBaseURL
	}
	if model == "" {
		model = defaultGeminiModel
	}
	return &GeminiClient{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *GeminiClient) endpoint() string {
	return fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, url.PathEscape(c.model), url.QueryEscape(c.apiKey))
}

// Generate sends prompt as a single user turn and returns the first text
// part of the first candidate. A reply without text returns "" and no error.
// Transport failures, timeouts and error payloads are UpstreamServiceErrors.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	logger := zerolog.Ctx(ctx).With().Str("llm_call_id", uuid.NewString()).Str("model", c.model).Logger()

	body, err := json.Marshal(generateRequest{
		Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:     generationTemperature,
			MaxOutputTokens: maxOutputTokens,
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal gemini request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error().Err(redact(err, c.apiKey)).Msg("gemini request failed")
		return "", dto.UpstreamServiceError("LLM service unreachable", redact(err, c.apiKey))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", dto.UpstreamServiceError("failed to read LLM response", err)
	}
	logger.Debug().Int("status", resp.StatusCode).Dur("elapsed", time.Since(start)).Msg("gemini responded")

	var decoded generateResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		if resp.StatusCode != http.StatusOK {
			return "", dto.UpstreamServiceError(fmt.Sprintf("LLM service returned status %d", resp.StatusCode), errors.New(truncate(string(raw), 200)))
		}
		return "", dto.UpstreamServiceError("malformed LLM response", err)
	}

	if decoded.Error != nil {
		logger.Error().Int("code", decoded.Error.Code).Str("status", decoded.Error.Status).Msg(decoded.Error.Message)
		return "", dto.UpstreamServiceError(decoded.Error.Message, fmt.Errorf("gemini error %d %s", decoded.Error.Code, decoded.Error.Status))
	}
	if resp.StatusCode != http.StatusOK {
		return "", dto.UpstreamServiceError(fmt.Sprintf("LLM service returned status %d", resp.StatusCode), nil)
	}

	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return decoded.Candidates[0].Content.Parts[0].Text, nil
}

// redact keeps the API key out of logged url.Errors.
func redact(err error, secret string) error {
	if secret == "" {
		return err
	}
	msg := strings.ReplaceAll(err.Error(), url.QueryEscape(secret), "REDACTED")
	msg = strings.ReplaceAll(msg, secret, "REDACTED")
	return errors.New(msg)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
