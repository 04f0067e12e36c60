package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Aashish23092/ocr-autofill/dto"
	"github.com/Aashish23092/ocr-autofill/utils"
)

// Generator sends one prompt to a language model and returns its reply text.
// An empty reply with a nil error means the model produced nothing.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ExtractionService turns raw document text into a cleaned record.
type ExtractionService struct {
	generator Generator
	addresses *utils.AddressCleaner
}

// NewExtractionService creates a new ExtractionService instance
func NewExtractionService(generator Generator, addresses *utils.AddressCleaner) *ExtractionService {
	if addresses == nil {
		addresses = utils.NewAddressCleaner(nil)
	}
	return &ExtractionService{
		generator: generator,
		addresses: addresses,
	}
}

// Extract runs prompt -> model -> parse -> clean for one document. Invalid
// input fails before the model is called. The model is called at most once.
func (s *ExtractionService) Extract(ctx context.Context, docType, text string) (dto.ExtractionOutcome, error) {
	logger := zerolog.Ctx(ctx)

	if strings.TrimSpace(docType) == "" || strings.TrimSpace(text) == "" {
		return dto.ExtractionOutcome{}, dto.InvalidRequestError("docType and text are required")
	}
	dt, err := dto.ParseDocumentType(docType)
	if err != nil {
		return dto.ExtractionOutcome{}, dto.InvalidDocumentTypeError(docType)
	}

	prompt, err := BuildPrompt(dt, text)
	if err != nil {
		return dto.ExtractionOutcome{}, err
	}
	logger.Debug().Str("state", "prompt_built").Str("doc_type", string(dt)).Int("prompt_len", len(prompt)).Msg("extraction")
	logger.Debug().Str("prompt", prompt).Msg("prompt text")

	logger.Debug().Str("state", "awaiting_model").Msg("extraction")
	reply, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		logger.Error().Err(err).Str("state", "failed").Str("doc_type", string(dt)).Msg("model call failed")
		if _, ok := dto.KindOf(err); ok {
			return dto.ExtractionOutcome{}, err
		}
		return dto.ExtractionOutcome{}, dto.UpstreamServiceError("model request failed", err)
	}

	logger.Debug().Str("state", "response_received").Int("reply_len", len(reply)).Msg("extraction")
	logger.Debug().Str("reply", reply).Msg("model reply")
	if strings.TrimSpace(reply) == "" {
		logger.Info().Str("doc_type", string(dt)).Msg("no result found")
		return dto.ExtractionOutcome{Kind: dto.OutcomeNoResult}, nil
	}

	record := ParseResponse(ctx, dt, reply)
	if !record.Failed() {
		s.clean(dt, record, text)
	}
	logger.Debug().Str("state", "cleaned").Bool("parse_failed", record.Failed()).Msg("extraction")

	logger.Info().Str("doc_type", string(dt)).Bool("parse_failed", record.Failed()).Msgf("%s data extracted", dt.Label())
	return dto.ExtractionOutcome{Kind: dto.OutcomeRecord, Record: record}, nil
}

func (s *ExtractionService) clean(dt dto.DocumentType, record *dto.ExtractedRecord, raw string) {
	switch dt {
	case dto.DocTypeForm21:
		s.cleanForm21(record, raw)
	case dto.DocTypeAadhaar:
		cleanAadhaar(record, raw)
	}
}

func (s *ExtractionService) cleanForm21(record *dto.ExtractedRecord, raw string) {
	update := func(field string, fn func(string) string) {
		if v, ok := record.Get(field); ok {
			record.Set(field, fn(v))
		}
	}

	update("nameOfBuyer", utils.CleanName)
	update("monthOfManufacture", utils.ConvertShortMonthToFull)

	buyer, _ := record.Get("nameOfBuyer")
	anchor := utils.BuyerSectionStart(raw, buyer)

	if pin, _ := record.Get("pincode"); isMissing(pin) {
		if found, ok := utils.RecoverPincode(raw, anchor); ok {
			record.Set("pincode", found)
		}
	}

	if mobile, _ := record.Get("mobileNumber"); isMissing(mobile) {
		if found, ok := utils.RecoverMobileNumber(raw, anchor); ok {
			record.Set("mobileNumber", found)
		}
	} else {
		update("mobileNumber", utils.CleanMobileNumber)
	}

	pin, _ := record.Get("pincode")
	rel, _ := utils.FindRelation(raw)
	update("address", func(addr string) string {
		return s.addresses.Clean(addr, pin, rel)
	})
}

// cleanAadhaar trims every field and fills the ones the model missed from
// labels found in the OCR text.
func cleanAadhaar(record *dto.ExtractedRecord, raw string) {
	for _, k := range record.Keys() {
		v, _ := record.Get(k)
		v = utils.NormalizeWhitespace(v)
		if v == "" {
			v = dto.NotAvailable
		}
		record.Set(k, v)
	}

	hints := utils.RecoverAadhaarFields(raw)
	for field, hint := range map[string]string{
		"name":          hints.Name,
		"dob":           hints.DOB,
		"gender":        hints.Gender,
		"aadhaarNumber": hints.AadhaarNumber,
	} {
		if v, ok := record.Get(field); ok && isMissing(v) && hint != "" {
			record.Set(field, hint)
		}
	}
}

func isMissing(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || v == dto.NotAvailable
}
