package dto

import (
	"fmt"
	"strings"
)

// NotAvailable is the sentinel for a field the model could not find.
const NotAvailable = "N/A"

type DocumentType string

const (
	DocTypeAadhaar DocumentType = "aadhaar"
	DocTypeForm21  DocumentType = "form21"
)

var schemas = map[DocumentType][]string{
	DocTypeAadhaar: {"name", "dob", "gender", "aadhaarNumber", "address"},
	DocTypeForm21: {
		"engineNumber", "chassisNumber", "yearOfManufacture", "monthOfManufacture",
		"nameOfBuyer", "address", "pincode", "mobileNumber", "dated",
	},
}

// ParseDocumentType accepts the wire names case-insensitively.
func ParseDocumentType(s string) (DocumentType, error) {
	dt := DocumentType(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := schemas[dt]; !ok {
		return "", fmt.Errorf("unknown document type %q", s)
	}
	return dt, nil
}

// Fields returns the ordered schema keys for the document type.
func (d DocumentType) Fields() []string {
	fields := schemas[d]
	out := make([]string, len(fields))
	copy(out, fields)
	return out
}

func (d DocumentType) Valid() bool {
	_, ok := schemas[d]
	return ok
}

// Label is the human-readable name used in logs and prompts.
func (d DocumentType) Label() string {
	switch d {
	case DocTypeAadhaar:
		return "Aadhaar"
	case DocTypeForm21:
		return "Form 21"
	}
	return string(d)
}
