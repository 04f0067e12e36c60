package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aashish23092/ocr-autofill/dto"
	"github.com/Aashish23092/ocr-autofill/service"
)

// ExtractHandler serves POST /extract-info.
type ExtractHandler struct {
	extractionService *service.ExtractionService
}

func NewExtractHandler(extractionService *service.ExtractionService) *ExtractHandler {
	return &ExtractHandler{
		extractionService: extractionService,
	}
}

// ExtractInfo binds {docType, text} and returns {result}. A model reply with
// no text is still a 200 carrying "No result found".
func (h *ExtractHandler) ExtractInfo(c *gin.Context) {
	var req dto.ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendBadRequest(c, "docType and text are required", err)
		return
	}

	outcome, err := h.extractionService.Extract(c.Request.Context(), req.DocType, req.Text)
	if err != nil {
		sendError(c, err, "Failed to extract document fields")
		return
	}

	c.JSON(http.StatusOK, dto.NewExtractResponse(outcome))
}
