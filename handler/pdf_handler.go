package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Aashish23092/ocr-autofill/dto"
	"github.com/Aashish23092/ocr-autofill/service"
)

// PDFHandler serves POST /extract-pdf-text.
type PDFHandler struct {
	pdfProcessor service.PDFProcessor
	maxFileSize  int64
}

func NewPDFHandler(pdfProcessor service.PDFProcessor, maxFileSize int64) *PDFHandler {
	return &PDFHandler{
		pdfProcessor: pdfProcessor,
		maxFileSize:  maxFileSize,
	}
}

// ExtractPDFText reads the "pdf" form file and returns its text layer.
func (h *PDFHandler) ExtractPDFText(c *gin.Context) {
	logger := zerolog.Ctx(c.Request.Context())

	file, err := c.FormFile("pdf")
	if err != nil {
		sendBadRequest(c, "No PDF file uploaded", err)
		return
	}
	if h.maxFileSize > 0 && file.Size > h.maxFileSize {
		sendBadRequest(c, "PDF file is too large", nil)
		return
	}

	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = inferMimeType(file.Filename)
	}
	if !strings.Contains(strings.ToLower(mimeType), "pdf") {
		sendBadRequest(c, "Invalid file type. Supported: PDF", nil)
		return
	}

	reader, err := file.Open()
	if err != nil {
		sendError(c, err, "Failed to open uploaded file")
		return
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		sendError(c, err, "Failed to read file data")
		return
	}

	logger.Info().Str("file", file.Filename).Int64("size", file.Size).Msg("extracting pdf text")
	text, err := h.pdfProcessor.ExtractText(data, c.PostForm("password"))
	if err != nil {
		if errors.Is(err, service.ErrDecrypt) {
			sendBadRequest(c, "Failed to decrypt PDF. Check password.", err)
			return
		}
		sendError(c, err, "Failed to extract text from PDF")
		return
	}

	c.JSON(http.StatusOK, dto.PDFTextResponse{Text: text})
}
