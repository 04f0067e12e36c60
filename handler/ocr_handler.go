package handler

import (
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Aashish23092/ocr-autofill/dto"
	"github.com/Aashish23092/ocr-autofill/service"
)

// OCRHandler serves POST /extract-image-text.
type OCRHandler struct {
	imageTextService *service.ImageTextService
	maxFileSize      int64
}

func NewOCRHandler(imageTextService *service.ImageTextService, maxFileSize int64) *OCRHandler {
	return &OCRHandler{
		imageTextService: imageTextService,
		maxFileSize:      maxFileSize,
	}
}

// ExtractImageText OCRs every "file" upload (e.g. Aadhaar front and back)
// in the order sent and returns the combined text.
func (h *OCRHandler) ExtractImageText(c *gin.Context) {
	logger := zerolog.Ctx(c.Request.Context())

	form, err := c.MultipartForm()
	if err != nil || form == nil || len(form.File["file"]) == 0 {
		sendBadRequest(c, "At least one file is required", err)
		return
	}
	files := form.File["file"]
	logger.Info().Int("files", len(files)).Msg("received images for OCR")

	uploads := make([]service.Upload, 0, len(files))
	for _, file := range files {
		if h.maxFileSize > 0 && file.Size > h.maxFileSize {
			sendBadRequest(c, "File "+file.Filename+" is too large", nil)
			return
		}

		mimeType := file.Header.Get("Content-Type")
		if mimeType == "" || mimeType == "application/octet-stream" {
			mimeType = inferMimeType(file.Filename)
		}
		if !isValidMimeType(mimeType) {
			sendBadRequest(c, "Invalid file type. Supported: PDF, PNG, JPEG", nil)
			return
		}

		data, err := readFile(file)
		if err != nil {
			sendError(c, err, "Failed to read uploaded image")
			return
		}
		uploads = append(uploads, service.Upload{Name: file.Filename, MimeType: mimeType, Data: data})
	}

	text, pages, err := h.imageTextService.ExtractText(c.Request.Context(), uploads, c.PostForm("password"))
	if err != nil {
		sendError(c, err, "Failed to extract text from images")
		return
	}

	c.JSON(http.StatusOK, dto.ImageTextResponse{Text: text, Pages: pages})
}

func readFile(file *multipart.FileHeader) ([]byte, error) {
	reader, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	return io.ReadAll(reader)
}

// isValidMimeType checks if the MIME type is supported
func isValidMimeType(mimeType string) bool {
	validTypes := []string{
		"application/pdf",
		"image/png",
		"image/jpeg",
		"image/jpg",
	}

	mimeType = strings.ToLower(mimeType)
	for _, valid := range validTypes {
		if strings.Contains(mimeType, valid) {
			return true
		}
	}
	return false
}

// inferMimeType infers MIME type from file extension
func inferMimeType(filename string) string {
	lower := strings.ToLower(filename)
	if strings.HasSuffix(lower, ".pdf") {
		return "application/pdf"
	} else if strings.HasSuffix(lower, ".png") {
		return "image/png"
	} else if strings.HasSuffix(lower, ".jpg") || strings.HasSuffix(lower, ".jpeg") {
		return "image/jpeg"
	}
	return ""
}
