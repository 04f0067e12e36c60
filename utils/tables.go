package utils

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Honorifics stripped from the start of a person's name. Longer forms come
// first so "Mrs" is not read as "Mr" + "s".
var Honorifics = []string{"Miss", "Mrs", "Shri", "Smt", "Mr", "Ms", "Km"}

// ShortMonths maps lower-case three-letter month abbreviations to full names.
var ShortMonths = map[string]string{
	"jan": "January",
	"feb": "February",
	"mar": "March",
	"apr": "April",
	"may": "May",
	"jun": "June",
	"jul": "July",
	"aug": "August",
	"sep": "September",
	"oct": "October",
	"nov": "November",
	"dec": "December",
}

// Substitution rewrites a known OCR garble to its canonical phrase.
// Replacement may reference groups ($1). The rewritten text must either match
// Pattern again with the same result or not match at all, so that applying
// the table twice is the same as applying it once. Addresses are upper-cased
// after substitution, so patterns should be case-insensitive.
type Substitution struct {
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`

	re *regexp.Regexp
}

func (s Substitution) Apply(text string) string {
	if s.re == nil {
		return text
	}
	return s.re.ReplaceAllString(text, s.Replacement)
}

// DefaultAddressFixups covers garbles seen in scanned Form 21 certificates
// from dealers around Hosur and Krishnagiri.
var DefaultAddressFixups = []Substitution{
	{Pattern: `(?i)\btamil\s*n[ao]du\b|\btami[l1I]\s*nadu\b`, Replacement: "TAMIL NADU"},
	{Pattern: `(?i)\bkr[il1]shnag[il1]r[il1]\b`, Replacement: "KRISHNAGIRI"},
	{Pattern: `(?i)\bh[o0]sur\b`, Replacement: "HOSUR"},
	{Pattern: `(?i)\bbengaluru\b|\bbangal[o0]re\b|\bbengal[o0]re\b`, Replacement: "BENGALURU"},
	{Pattern: `(?i)\bd[il1]st(?:rict)?\b\.?`, Replacement: "DIST"},
	{Pattern: `(?i)\bta[l1]uk\b|\btk\b\.?`, Replacement: "TALUK"},
	{Pattern: `(?i)\bp\s*\.\s*o\b\.?|\bpost\s+office\b`, Replacement: "PO"},
	{Pattern: `(?i)\bv[il1]l+age\b|\bvill\b\.?`, Replacement: "VILLAGE"},
	{Pattern: `(?i)\bn[o0]\s*[.:]\s*(\d)`, Replacement: "NO $1"},
}

// CompileSubstitutions validates every pattern and returns a ready table.
func CompileSubstitutions(subs []Substitution) ([]Substitution, error) {
	out := make([]Substitution, 0, len(subs))
	for i, s := range subs {
		if strings.TrimSpace(s.Pattern) == "" {
			return nil, fmt.Errorf("substitution %d: empty pattern", i)
		}
		re, err := regexp.Compile(s.Pattern)
		if err != nil {
			return nil, fmt.Errorf("substitution %d: %w", i, err)
		}
		s.re = re
		out = append(out, s)
	}
	return out, nil
}

// MustCompileSubstitutions is CompileSubstitutions for package-level tables.
func MustCompileSubstitutions(subs []Substitution) []Substitution {
	out, err := CompileSubstitutions(subs)
	if err != nil {
		panic(err)
	}
	return out
}

type substitutionFile struct {
	Substitutions []Substitution `yaml:"substitutions"`
}

// LoadSubstitutions reads a YAML table of the form
//
//	substitutions:
//	  - pattern: '(?i)\bkrishnagirl\b'
//	    replacement: KRISHNAGIRI
func LoadSubstitutions(path string) ([]Substitution, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read substitutions: %w", err)
	}
	var f substitutionFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode substitutions: %w", err)
	}
	return CompileSubstitutions(f.Substitutions)
}
