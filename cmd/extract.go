package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Aashish23092/ocr-autofill/dto"
	"github.com/Aashish23092/ocr-autofill/service"
)

var (
	extractDocType  string
	extractFile     string
	extractPassword string
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract fields from a text or PDF file and print the JSON result",
	Example: `  ocr-autofill extract --type form21 --file form21.pdf
  ocr-autofill extract --type aadhaar --file ocr.txt`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractDocType, "type", "t", "", "document type: aadhaar or form21 (required)")
	extractCmd.Flags().StringVarP(&extractFile, "file", "f", "", "text or PDF file with the raw document text (required)")
	extractCmd.Flags().StringVar(&extractPassword, "password", "", "password for an encrypted PDF")
	_ = extractCmd.MarkFlagRequired("type")
	_ = extractCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := os.ReadFile(extractFile)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	text := string(data)
	if strings.EqualFold(filepath.Ext(extractFile), ".pdf") {
		text, err = service.NewPDFProcessor().ExtractText(data, extractPassword)
		if err != nil {
			return fmt.Errorf("extract pdf text: %w", err)
		}
	}

	outcome, err := newExtractionService(cfg).Extract(cmd.Context(), extractDocType, text)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(dto.NewExtractResponse(outcome))
}
