package client

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
	"github.com/rs/zerolog/log"
)

const defaultTessdataPrefix = "/usr/share/tesseract-ocr/5/tessdata/"

type TesseractClient struct {
	dataPath  string
	languages []string
}

// NewTesseractClient uses the default tessdata path and English when the
// arguments are empty. languages is a "+"-separated list, e.g. "eng+hin".
func NewTesseractClient(dataPath, languages string) *TesseractClient {
	if dataPath == "" {
		dataPath = defaultTessdataPrefix
	}
	langs := strings.FieldsFunc(languages, func(r rune) bool { return r == '+' || r == ',' || r == ' ' })
	if len(langs) == 0 {
		langs = []string{"eng"}
	}
	return &TesseractClient{
		dataPath:  dataPath,
		languages: langs,
	}
}

// ExtractTextFromBytes OCRs one encoded image (PNG, JPEG, ...).
func (tc *TesseractClient) ExtractTextFromBytes(data []byte) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetTessdataPrefix(tc.dataPath); err != nil {
		return "", fmt.Errorf("failed to set tessdata prefix: %w", err)
	}
	if err := client.SetLanguage(tc.languages...); err != nil {
		return "", fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetImageFromBytes(data); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("failed to extract text: %w", err)
	}

	log.Debug().Int("chars", len(text)).Strs("languages", tc.languages).Msg("tesseract OCR done")
	return text, nil
}

// Languages reports the configured OCR languages.
func (tc *TesseractClient) Languages() []string {
	out := make([]string, len(tc.languages))
	copy(out, tc.languages)
	return out
}
