package dto

import (
	"encoding/xml"
	"strings"
)

// AadhaarQRData represents the XML structure in Aadhaar QR code
// Based on UIDAI's secure QR code format
type AadhaarQRData struct {
	XMLName     xml.Name `xml:"PrintLetterBarcodeData"`
	UID         string   `xml:"uid,attr"`
	Name        string   `xml:"name,attr"`
	Gender      string   `xml:"gender,attr"`
	YearOfBirth string   `xml:"yob,attr"`
	DateOfBirth string   `xml:"dob,attr"`
	CO          string   `xml:"co,attr"` // Care of
	House       string   `xml:"house,attr"`
	Street      string   `xml:"street,attr"`
	Landmark    string   `xml:"lm,attr"`
	Locality    string   `xml:"loc,attr"`
	VTC         string   `xml:"vtc,attr"` // Village/Town/City
	PO          string   `xml:"po,attr"`  // Post Office
	District    string   `xml:"dist,attr"`
	SubDistrict string   `xml:"subdist,attr"`
	State       string   `xml:"state,attr"`
	PC          string   `xml:"pc,attr"` // Pin Code
}

// GetFullAddress constructs the full address from QR data
func (q *AadhaarQRData) GetFullAddress() string {
	parts := []string{}
	add := func(prefix, v string) {
		v = strings.TrimSpace(v)
		if v != "" {
			parts = append(parts, prefix+v)
		}
	}

	co := strings.TrimSpace(q.CO)
	if hasRelationPrefix(co) {
		add("", co)
	} else {
		add("C/O ", co)
	}
	add("", q.House)
	add("", q.Street)
	add("", q.Landmark)
	add("", q.Locality)
	add("", q.VTC)
	add("PO ", q.PO)
	add("", q.SubDistrict)
	add("", q.District)
	add("", q.State)
	add("", q.PC)

	return strings.Join(parts, ", ")
}

func hasRelationPrefix(s string) bool {
	u := strings.ToUpper(s)
	for _, p := range []string{"S/O", "D/O", "W/O", "C/O"} {
		if strings.HasPrefix(u, p) {
			return true
		}
	}
	return false
}

// GetDOB returns the date of birth, or the year when only that is encoded.
func (q *AadhaarQRData) GetDOB() string {
	if q.DateOfBirth != "" {
		return q.DateOfBirth
	}
	return q.YearOfBirth
}

// GetGender expands the single-letter gender code used in the QR payload.
func (q *AadhaarQRData) GetGender() string {
	switch strings.ToUpper(strings.TrimSpace(q.Gender)) {
	case "M", "MALE":
		return "Male"
	case "F", "FEMALE":
		return "Female"
	case "T", "TRANSGENDER":
		return "Transgender"
	}
	return q.Gender
}

// Text renders the QR payload as labelled lines, the same shape OCR output
// of a clean card would have, so it can be appended to raw text.
func (q *AadhaarQRData) Text() string {
	var b strings.Builder
	line := func(label, v string) {
		if v == "" {
			return
		}
		b.WriteString(label)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\n")
	}
	line("Name", strings.TrimSpace(q.Name))
	line("DOB", q.GetDOB())
	line("Gender", q.GetGender())
	line("Aadhaar Number", strings.TrimSpace(q.UID))
	line("Address", q.GetFullAddress())
	return b.String()
}
