package dto

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindInvalidRequest      ErrorKind = "INVALID_REQUEST"
	KindInvalidDocumentType ErrorKind = "INVALID_DOCUMENT_TYPE"
	KindUpstreamService     ErrorKind = "UPSTREAM_SERVICE_ERROR"
)

// ExtractionError is a hard failure of an extraction request.
type ExtractionError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

func InvalidRequestError(message string) *ExtractionError {
	return &ExtractionError{Kind: KindInvalidRequest, Message: message}
}

func InvalidDocumentTypeError(docType string) *ExtractionError {
	return &ExtractionError{Kind: KindInvalidDocumentType, Message: "Invalid docType", Err: fmt.Errorf("unknown document type %q", docType)}
}

func UpstreamServiceError(message string, err error) *ExtractionError {
	return &ExtractionError{Kind: KindUpstreamService, Message: message, Err: err}
}

// KindOf returns the kind of an ExtractionError anywhere in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var ee *ExtractionError
	if errors.As(err, &ee) {
		return ee.Kind, true
	}
	return "", false
}
