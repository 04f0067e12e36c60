package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Aashish23092/ocr-autofill/dto"
)

// NormalizeWhitespace collapses every run of whitespace (including newlines)
// to one space and trims both ends.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// MergeLetterRuns joins maximal runs of standalone single letters,
// e.g. "S H I V A M Road" -> "SHIVAM Road". Other tokens are kept as-is
// and end the current run. Whitespace is normalized as a side effect.
func MergeLetterRuns(s string) string {
	tokens := strings.Fields(s)
	out := make([]string, 0, len(tokens))

	var run strings.Builder
	flush := func() {
		if run.Len() > 0 {
			out = append(out, run.String())
			run.Reset()
		}
	}

	for _, tok := range tokens {
		if isSingleLetter(tok) {
			run.WriteString(tok)
			continue
		}
		flush()
		out = append(out, tok)
	}
	flush()

	return strings.Join(out, " ")
}

// UpperCaseFold is used for address canonicalization only.
func UpperCaseFold(s string) string {
	return strings.ToUpper(s)
}

func isSingleLetter(tok string) bool {
	r, size := utf8.DecodeRuneInString(tok)
	return size == len(tok) && unicode.IsLetter(r)
}

// singleLetterTokens reports how many tokens s has when every token is a
// single letter, or 0 otherwise.
func singleLetterTokens(s string) int {
	tokens := strings.Fields(s)
	for _, tok := range tokens {
		if !isSingleLetter(tok) {
			return 0
		}
	}
	return len(tokens)
}

func isSentinel(s string) bool {
	return strings.TrimSpace(s) == dto.NotAvailable
}
