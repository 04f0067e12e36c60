package service

import (
	"bytes"
	"context"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Aashish23092/ocr-autofill/dto"
)

var (
	reFenceOpen  = regexp.MustCompile("^```[A-Za-z0-9_+.\\-]*[ \\t]*\\r?\\n?")
	reFenceClose = regexp.MustCompile("\\s*```$")
)

// StripCodeFence removes a markdown code fence (with optional language tag)
// wrapping the model reply. Unfenced text is only trimmed.
func StripCodeFence(reply string) string {
	s := strings.TrimSpace(reply)
	s = reFenceOpen.ReplaceAllString(s, "")
	s = reFenceClose.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// ParseResponse turns a model reply into a record for docType. A reply that is
// not a JSON object yields a parse-failure record carrying the unwrapped
// payload. A parsed record always has every schema field.
func ParseResponse(ctx context.Context, docType dto.DocumentType, reply string) *dto.ExtractedRecord {
	logger := zerolog.Ctx(ctx)
	payload := StripCodeFence(reply)

	dec := json.NewDecoder(bytes.NewReader([]byte(payload)))
	dec.UseNumber()

	var decoded any
	if err := dec.Decode(&decoded); err != nil {
		logger.Warn().Err(err).Str("doc_type", string(docType)).Msg("model reply is not valid JSON")
		return dto.NewParseFailure(payload)
	}
	if dec.More() {
		logger.Warn().Str("doc_type", string(docType)).Msg("trailing data after JSON object in model reply")
		return dto.NewParseFailure(payload)
	}
	obj, ok := decoded.(map[string]any)
	if !ok {
		logger.Warn().Str("doc_type", string(docType)).Msg("model reply is not a JSON object")
		return dto.NewParseFailure(payload)
	}

	if err := ValidateReply(docType, decoded); err != nil {
		logger.Warn().Str("doc_type", string(docType)).
			Strs("violations", SchemaViolations(err)).
			Msg("model reply shape differs from schema")
	}

	record := dto.NewExtractedRecord(docType)
	byFold := make(map[string]string)
	for _, f := range docType.Fields() {
		byFold[strings.ToLower(f)] = f
	}
	for key, value := range obj {
		field, known := byFold[strings.ToLower(key)]
		if !known {
			logger.Debug().Str("key", key).Msg("dropping key outside schema")
			continue
		}
		// an exact key wins over a case variant
		if field != key {
			if _, exact := obj[field]; exact {
				continue
			}
		}
		record.Set(field, coerceValue(value))
	}
	return record
}

// coerceValue renders any decoded JSON value as a field string.
func coerceValue(v any) string {
	switch t := v.(type) {
	case nil:
		return dto.NotAvailable
	case string:
		if s := strings.TrimSpace(t); s != "" {
			return s
		}
		return dto.NotAvailable
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			if s := coerceValue(item); s != dto.NotAvailable {
				parts = append(parts, s)
			}
		}
		if len(parts) == 0 {
			return dto.NotAvailable
		}
		return strings.Join(parts, ", ")
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return dto.NotAvailable
		}
		return string(b)
	}
}
