package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handlers groups everything the router serves.
type Handlers struct {
	Extract *ExtractHandler
	PDF     *PDFHandler
	OCR     *OCRHandler
}

// NewRouter wires middleware and routes onto a fresh gin engine.
func NewRouter(h Handlers, corsOrigins []string, maxMultipartMemory int64) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(), CORS(corsOrigins))

	if maxMultipartMemory > 0 {
		router.MaxMultipartMemory = maxMultipartMemory
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "OCR Autofill",
		})
	})

	if h.Extract != nil {
		router.POST("/extract-info", h.Extract.ExtractInfo)
	}
	if h.PDF != nil {
		router.POST("/extract-pdf-text", h.PDF.ExtractPDFText)
	}
	if h.OCR != nil {
		router.POST("/extract-image-text", h.OCR.ExtractImageText)
	}

	return router
}
