package dto

import (
	"bytes"
	"encoding/json"
)

// ParseFailureMessage is reported when the model reply is not a JSON object.
const ParseFailureMessage = "Failed to parse model response"

// ExtractedRecord holds the fields pulled out of one document, in schema order.
// When the model reply could not be parsed, Fields is empty and Error/Raw are set.
type ExtractedRecord struct {
	order  []string
	fields map[string]string

	Error string
	Raw   string
}

// NewExtractedRecord returns a record with every schema field set to NotAvailable.
func NewExtractedRecord(docType DocumentType) *ExtractedRecord {
	r := &ExtractedRecord{fields: make(map[string]string)}
	for _, f := range docType.Fields() {
		r.order = append(r.order, f)
		r.fields[f] = NotAvailable
	}
	return r
}

// NewParseFailure builds the low-confidence record returned when parsing fails.
func NewParseFailure(raw string) *ExtractedRecord {
	return &ExtractedRecord{
		fields: make(map[string]string),
		Error:  ParseFailureMessage,
		Raw:    raw,
	}
}

func (r *ExtractedRecord) Failed() bool {
	return r.Error != ""
}

// Get returns the field value and whether the field exists on the record.
func (r *ExtractedRecord) Get(field string) (string, bool) {
	v, ok := r.fields[field]
	return v, ok
}

// Set assigns a field, appending it to the key order if new.
func (r *ExtractedRecord) Set(field, value string) {
	if r.fields == nil {
		r.fields = make(map[string]string)
	}
	if _, ok := r.fields[field]; !ok {
		r.order = append(r.order, field)
	}
	r.fields[field] = value
}

func (r *ExtractedRecord) Keys() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Map returns a copy of the fields, with error/raw when present.
func (r *ExtractedRecord) Map() map[string]string {
	m := make(map[string]string, len(r.fields)+2)
	for k, v := range r.fields {
		m[k] = v
	}
	if r.Error != "" {
		m["error"] = r.Error
		m["raw"] = r.Raw
	}
	return m
}

// MarshalJSON writes the fields in schema order so responses are stable.
func (r *ExtractedRecord) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	write := func(k, v string) error {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		kb, err := json.Marshal(k)
		if err != nil {
			return err
		}
		vb, err := json.Marshal(v)
		if err != nil {
			return err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
		return nil
	}
	for _, k := range r.order {
		if err := write(k, r.fields[k]); err != nil {
			return nil, err
		}
	}
	if r.Error != "" {
		if err := write("error", r.Error); err != nil {
			return nil, err
		}
		if err := write("raw", r.Raw); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
