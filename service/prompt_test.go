package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aashish23092/ocr-autofill/dto"
)

func TestBuildPromptAadhaar(t *testing.T) {
	prompt, err := BuildPrompt(dto.DocTypeAadhaar, "\n  Name: Ravi Kumar\nDOB: 01/01/1990  \n")
	require.NoError(t, err)

	assert.Contains(t, prompt, "\"\"\"\nName: Ravi Kumar\nDOB: 01/01/1990\n\"\"\"")
	assert.Contains(t, prompt, "Return ONLY a valid JSON object with these exact keys")
	assert.Contains(t, prompt, `return "N/A" for that field`)
	assert.Contains(t, prompt, "जन्म तिथि")
	assert.Contains(t, prompt, "DD/MM/YYYY")
	assert.Contains(t, prompt, "12 digits")

	last := -1
	for _, f := range dto.DocTypeAadhaar.Fields() {
		i := strings.Index(prompt, `"`+f+`": ""`)
		require.Greater(t, i, last, f)
		last = i
	}
}

func TestBuildPromptForm21(t *testing.T) {
	prompt, err := BuildPrompt(dto.DocTypeForm21, "Engine No: X")
	require.NoError(t, err)
	for _, f := range dto.DocTypeForm21.Fields() {
		assert.Contains(t, prompt, `"`+f+`": ""`)
	}
	assert.Contains(t, prompt, "10 digits")
	assert.True(t, strings.HasSuffix(prompt, "\"\"\"\nEngine No: X\n\"\"\""))
}

func TestBuildPromptDeterministic(t *testing.T) {
	a, err := BuildPrompt(dto.DocTypeForm21, "same text")
	require.NoError(t, err)
	b, err := BuildPrompt(dto.DocTypeForm21, "same text")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBuildPromptUnknownType(t *testing.T) {
	_, err := BuildPrompt(dto.DocumentType("passport"), "text")
	require.Error(t, err)
	kind, ok := dto.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, dto.KindInvalidDocumentType, kind)
}
