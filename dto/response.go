package dto

// NoResultMessage is returned with 200 when the model produced no text.
const NoResultMessage = "No result found"

type OutcomeKind int

const (
	OutcomeRecord OutcomeKind = iota
	OutcomeNoResult
)

// ExtractionOutcome is what one extraction produced. Record is nil for OutcomeNoResult.
type ExtractionOutcome struct {
	Kind   OutcomeKind
	Record *ExtractedRecord
}

// ExtractResponse wraps either an *ExtractedRecord or NoResultMessage.
type ExtractResponse struct {
	Result any `json:"result"`
}

// NewExtractResponse keeps the external "No result found" contract for an empty reply.
func NewExtractResponse(outcome ExtractionOutcome) ExtractResponse {
	if outcome.Kind == OutcomeNoResult || outcome.Record == nil {
		return ExtractResponse{Result: NoResultMessage}
	}
	return ExtractResponse{Result: outcome.Record}
}

type PDFTextResponse struct {
	Text string `json:"text"`
}

type ImageTextResponse struct {
	Text  string `json:"text"`
	Pages int    `json:"pages"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
