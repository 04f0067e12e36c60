package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Aashish23092/ocr-autofill/dto"
)

// statusFor maps an extraction error kind to its HTTP status.
func statusFor(err error) (int, string) {
	kind, ok := dto.KindOf(err)
	if !ok {
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
	switch kind {
	case dto.KindInvalidRequest, dto.KindInvalidDocumentType:
		return http.StatusBadRequest, string(kind)
	case dto.KindUpstreamService:
		return http.StatusBadGateway, string(kind)
	}
	return http.StatusInternalServerError, string(kind)
}

// sendError writes the error body. ExtractionErrors expose their message;
// anything else is logged and reported with the given fallback message.
func sendError(c *gin.Context, err error, fallback string) {
	status, code := statusFor(err)
	message := fallback

	var ee *dto.ExtractionError
	if errors.As(err, &ee) {
		message = ee.Message
	}

	logger := zerolog.Ctx(c.Request.Context())
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("code", code).Msg(fallback)
	} else {
		logger.Warn().Err(err).Str("code", code).Msg(message)
	}

	c.AbortWithStatusJSON(status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// sendBadRequest reports a client error that never reached the services.
func sendBadRequest(c *gin.Context, message string, err error) {
	if err == nil {
		err = dto.InvalidRequestError(message)
	} else {
		err = &dto.ExtractionError{Kind: dto.KindInvalidRequest, Message: message, Err: err}
	}
	sendError(c, err, message)
}
