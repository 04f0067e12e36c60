package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecoverAadhaarFields(t *testing.T) {
	raw := `GOVERNMENT OF INDIA
Ravi Kumar
DOB: 01/01/1990
Male
2345 6789 0123
VID: 9123 4567 8901 2345`

	h := RecoverAadhaarFields(raw)
	assert.Equal(t, "Ravi Kumar", h.Name)
	assert.Equal(t, "01/01/1990", h.DOB)
	assert.Equal(t, "Male", h.Gender)
	assert.Equal(t, "2345 6789 0123", h.AadhaarNumber)
}

func TestRecoverAadhaarFieldsHindiLabels(t *testing.T) {
	raw := "भारत सरकार\nनाम: Priya Sharma\nजन्म तिथि/DOB: 23/09/2004\nमहिला / Female\n234567890123"

	h := RecoverAadhaarFields(raw)
	assert.Equal(t, "Priya Sharma", h.Name)
	assert.Equal(t, "23/09/2004", h.DOB)
	assert.Equal(t, "Female", h.Gender)
	assert.Equal(t, "2345 6789 0123", h.AadhaarNumber)
}

func TestRecoverAadhaarFieldsNothing(t *testing.T) {
	h := RecoverAadhaarFields("VID: 9123 4567 8901 2345\nsome text")
	assert.Equal(t, AadhaarHints{}, h)
}

func TestRecoverAadhaarFieldsSkipsVIDTail(t *testing.T) {
	h := RecoverAadhaarFields("Ravi Kumar\nDOB: 01/01/1990\nMale\nVID: 1234 5678 9012 3456")
	assert.Empty(t, h.AadhaarNumber)

	h = RecoverAadhaarFields("2345 6789 0123\nVID: 1234 5678 9012 3456")
	assert.Equal(t, "2345 6789 0123", h.AadhaarNumber)
}

func TestRecoverAadhaarFieldsNamesContainingStopWords(t *testing.T) {
	h := RecoverAadhaarFields("Gopinath Rao\nDOB: 01/01/1990\nMale")
	assert.Equal(t, "Gopinath Rao", h.Name)

	h = RecoverAadhaarFields("Kamalesh Kumar\nDOB: 01/01/1990\nMale")
	assert.Equal(t, "Kamalesh Kumar", h.Name)
}
