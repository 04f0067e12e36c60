package dto

// ExtractRequest is the body of POST /extract-info.
type ExtractRequest struct {
	DocType string `json:"docType" binding:"required"`
	Text    string `json:"text" binding:"required"`
}
