package service

import (
	"strings"

	"github.com/Aashish23092/ocr-autofill/dto"
)

type promptTemplate struct {
	intro   string
	hints   []string
	outro   string
	heading string
}

var promptTemplates = map[dto.DocumentType]promptTemplate{
	dto.DocTypeAadhaar: {
		intro: "Extract the following details from the OCR text of an Aadhaar card (which may include text from both front and back sides):",
		hints: []string{
			`Full Name (look for "Name", "नाम", or similar labels, or a name-like string near the top)`,
			`Date of Birth (format: DD/MM/YYYY, look for "DOB", "Date of Birth", "जन्म तिथि", or a date pattern like DD/MM/YYYY)`,
			`Gender (look for "Gender", "लिंग", "Male", "Female", "M", "F", or similar)`,
			`Aadhaar Number (12 digits, often in the format XXXX XXXX XXXX or 12 consecutive digits)`,
			`Full Address (look for "Address", "पता", or a multi-line string that looks like an address, often containing words like "Street", "Road", "Village", "City", "Pin", etc.)`,
		},
		outro:   "Be flexible with formatting and look for patterns even if labels are missing.",
		heading: "OCR Text:",
	},
	dto.DocTypeForm21: {
		intro: "Extract the following details from the text of a Form 21 (Vehicle Sale Certificate):",
		hints: []string{
			"Engine Number",
			"Chassis Number",
			"Year of Manufacture (format: YYYY)",
			"Month of Manufacture (e.g., January, February, etc.)",
			`Name of Buyer (look for "Name of Buyer", "Buyer Name" or "Purchaser"; not the dealer)`,
			"Full Address of the buyer (not the dealer's address)",
			"Pincode of the buyer's address (6 digits)",
			`Mobile Number of the buyer (10 digits, usually after "Ph", "Mob", "Phone" or "Mobile" in the buyer section; not the dealer's number)`,
			"Dated (format: DD/MM/YYYY)",
		},
		heading: "Text:",
	},
}

// BuildPrompt renders the instruction for docType with the trimmed raw text
// embedded in a quoted block. The output depends only on its inputs.
func BuildPrompt(docType dto.DocumentType, rawText string) (string, error) {
	tmpl, ok := promptTemplates[docType]
	if !ok {
		return "", dto.InvalidDocumentTypeError(string(docType))
	}

	var b strings.Builder
	b.WriteString(tmpl.intro)
	b.WriteString("\n\n")
	for _, h := range tmpl.hints {
		b.WriteString("* ")
		b.WriteString(h)
		b.WriteString("\n")
	}

	b.WriteString("\nReturn ONLY a valid JSON object with these exact keys:\n{\n")
	fields := docType.Fields()
	for i, f := range fields {
		b.WriteString(`  "`)
		b.WriteString(f)
		b.WriteString(`": ""`)
		if i < len(fields)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("}\n\n")

	b.WriteString(`If a field cannot be found, return "` + dto.NotAvailable + `" for that field.`)
	if tmpl.outro != "" {
		b.WriteString(" ")
		b.WriteString(tmpl.outro)
	}
	b.WriteString("\n\n")

	b.WriteString(tmpl.heading)
	b.WriteString("\n\"\"\"\n")
	b.WriteString(strings.TrimSpace(rawText))
	b.WriteString("\n\"\"\"")

	return b.String(), nil
}
