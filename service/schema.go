package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/Aashish23092/ocr-autofill/dto"
)

// replySchemas holds one compiled JSON Schema per document type describing
// the object the model is asked to return.
var replySchemas = mustCompileReplySchemas()

func replySchemaMap(docType dto.DocumentType) map[string]any {
	fields := docType.Fields()
	props := make(map[string]any, len(fields))
	for _, f := range fields {
		props[f] = map[string]any{"type": []string{"string", "number", "boolean", "null"}}
	}
	return map[string]any{
		"$schema":    "http://json-schema.org/draft-07/schema#",
		"type":       "object",
		"properties": props,
		"required":   fields,
	}
}

func compileReplySchema(docType dto.DocumentType) (*jsonschema.Schema, error) {
	b, err := json.Marshal(replySchemaMap(docType))
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	name := string(docType) + ".json"
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
}

func mustCompileReplySchemas() map[dto.DocumentType]*jsonschema.Schema {
	out := make(map[dto.DocumentType]*jsonschema.Schema)
	for _, dt := range []dto.DocumentType{dto.DocTypeAadhaar, dto.DocTypeForm21} {
		s, err := compileReplySchema(dt)
		if err != nil {
			panic(fmt.Sprintf("reply schema %s: %v", dt, err))
		}
		out[dt] = s
	}
	return out
}

// ValidateReply checks a decoded model reply against the document's schema.
// A mismatch is not fatal; the caller fills the gaps with N/A.
func ValidateReply(docType dto.DocumentType, v any) error {
	schema, ok := replySchemas[docType]
	if !ok {
		return dto.InvalidDocumentTypeError(string(docType))
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("reply does not match schema: %w", err)
	}
	return nil
}

// SchemaViolations flattens a ValidateReply error into one line per failing
// leaf, "<instance location>: <message>", e.g.
// "/dob: expected string, but got object" or ": missing properties: 'gender'".
func SchemaViolations(err error) []string {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		if err == nil {
			return nil
		}
		return []string{err.Error()}
	}
	var out []string
	var walk func(*jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			out = append(out, e.InstanceLocation+": "+e.Message)
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(ve)
	return out
}
