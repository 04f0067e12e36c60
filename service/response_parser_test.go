package service

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aashish23092/ocr-autofill/dto"
)

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, StripCodeFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripCodeFence("```JSON\n{\"a\":1}```"))
	assert.Equal(t, `{"a":1}`, StripCodeFence("```\n{\"a\":1}\n```\n"))
	assert.Equal(t, `{"a":1}`, StripCodeFence("  {\"a\":1}  "))
	assert.Equal(t, `{"a":1}`, StripCodeFence("```javascript {\"a\":1} ```"))
}

func TestParseResponseFencedInvalid(t *testing.T) {
	reply := "```json\n{\"name\": \"Ravi\", \"dob\": }\n```"
	rec := ParseResponse(context.Background(), dto.DocTypeAadhaar, reply)

	require.True(t, rec.Failed())
	assert.Equal(t, dto.ParseFailureMessage, rec.Error)
	assert.Equal(t, `{"name": "Ravi", "dob": }`, rec.Raw)

	b, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"Failed to parse model response","raw":"{\"name\": \"Ravi\", \"dob\": }"}`, string(b))
}

func TestParseResponseNotAnObject(t *testing.T) {
	rec := ParseResponse(context.Background(), dto.DocTypeAadhaar, `["Ravi", "01/01/1990"]`)
	assert.True(t, rec.Failed())

	rec = ParseResponse(context.Background(), dto.DocTypeAadhaar, `{"name":"a"} trailing`)
	assert.True(t, rec.Failed())
}

func TestParseResponseFillsSchema(t *testing.T) {
	reply := `{"name": "Ravi Kumar", "dob": null, "gender": "", "AadhaarNumber": 123456789012, "nickname": "RK"}`
	rec := ParseResponse(context.Background(), dto.DocTypeAadhaar, reply)

	require.False(t, rec.Failed())
	assert.Equal(t, dto.DocTypeAadhaar.Fields(), rec.Keys())

	name, _ := rec.Get("name")
	assert.Equal(t, "Ravi Kumar", name)
	dob, _ := rec.Get("dob")
	assert.Equal(t, dto.NotAvailable, dob)
	gender, _ := rec.Get("gender")
	assert.Equal(t, dto.NotAvailable, gender)
	num, _ := rec.Get("aadhaarNumber")
	assert.Equal(t, "123456789012", num)
	addr, _ := rec.Get("address")
	assert.Equal(t, dto.NotAvailable, addr)

	_, ok := rec.Get("nickname")
	assert.False(t, ok)

	b, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Ravi Kumar","dob":"N/A","gender":"N/A","aadhaarNumber":"123456789012","address":"N/A"}`, string(b))
}

func TestParseResponseArrayValue(t *testing.T) {
	reply := `{"address": ["12 Gandhi Street", "Hosur", null]}`
	rec := ParseResponse(context.Background(), dto.DocTypeForm21, reply)

	addr, _ := rec.Get("address")
	assert.Equal(t, "12 Gandhi Street, Hosur", addr)
}

func TestValidateReply(t *testing.T) {
	var v any
	require.NoError(t, json.Unmarshal([]byte(`{"name":"a","dob":"b","gender":"c","aadhaarNumber":"d","address":"e"}`), &v))
	assert.NoError(t, ValidateReply(dto.DocTypeAadhaar, v))

	require.NoError(t, json.Unmarshal([]byte(`{"name":{"first":"a"}}`), &v))
	assert.Error(t, ValidateReply(dto.DocTypeAadhaar, v))
}

func TestSchemaViolations(t *testing.T) {
	var v any
	require.NoError(t, json.Unmarshal([]byte(`{"name":{"first":"a"},"dob":"b","gender":"c","aadhaarNumber":"d"}`), &v))

	violations := SchemaViolations(ValidateReply(dto.DocTypeAadhaar, v))
	joined := strings.Join(violations, "\n")
	assert.Contains(t, joined, "/name")
	assert.Contains(t, joined, "address")
	assert.NotContains(t, joined, "gender")

	assert.Nil(t, SchemaViolations(nil))
}

func TestParseResponseLogsMissingKeys(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	ctx := logger.WithContext(context.Background())

	rec := ParseResponse(ctx, dto.DocTypeAadhaar, `{"name":"Ravi Kumar","dob":"01/01/1990","gender":"Male","address":"Hosur"}`)
	require.False(t, rec.Failed())

	assert.Contains(t, buf.String(), `"violations"`)
	assert.Contains(t, buf.String(), "aadhaarNumber")
}
