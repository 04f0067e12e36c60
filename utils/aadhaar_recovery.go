package utils

import (
	"regexp"
	"slices"
	"strings"
	"unicode"
)

// AadhaarHints are values read straight from Aadhaar OCR text, used to fill
// fields the model returned as N/A. Empty means not found.
type AadhaarHints struct {
	Name          string
	DOB           string
	Gender        string
	AadhaarNumber string
}

var (
	reLabelledDOB = regexp.MustCompile(`(?i)(?:dob|date\s+of\s+birth|जन्म\s*तिथि)\s*[:\-/]?\s*(\d{2}[/-]\d{2}[/-]\d{4})`)
	reAnyDate     = regexp.MustCompile(`\b(\d{2}[/-]\d{2}[/-]\d{4})\b`)
	reAadhaarNum  = regexp.MustCompile(`\b([2-9]\d{3})[ \-]?(\d{4})[ \-]?(\d{4})\b`)
	reVIDTail     = regexp.MustCompile(`^[ \-]?\d{4}\b`)
	reVIDHead     = regexp.MustCompile(`\b\d{4}[ \-]?$`)
	reNonLetters  = regexp.MustCompile(`[^A-Za-z\s]+`)

	nonNameWords = []string{
		"government", "india", "authority", "unique", "identification",
		"aadhaar", "address", "pin", "code", "dob", "male", "female", "birth",
	}
)

// RecoverAadhaarFields scans OCR text of a card. DOB comes from a labelled
// date (else any date); name and gender are looked for around that line.
func RecoverAadhaarFields(raw string) AadhaarHints {
	lines := splitLines(raw)

	var h AadhaarHints
	dobIdx := -1
	for i, line := range lines {
		if m := reLabelledDOB.FindStringSubmatch(line); m != nil {
			h.DOB, dobIdx = m[1], i
			break
		}
	}
	if dobIdx < 0 {
		for i, line := range lines {
			if m := reAnyDate.FindStringSubmatch(line); m != nil {
				h.DOB, dobIdx = m[1], i
				break
			}
		}
	}

	h.Name = nameNearLine(lines, dobIdx)
	h.Gender = genderNearLine(lines, dobIdx)

	h.AadhaarNumber = aadhaarNumber(raw)
	return h
}

// aadhaarNumber returns the first 12-digit group that is not part of a
// 16-digit VID, either its first or its last twelve digits.
func aadhaarNumber(raw string) string {
	for _, loc := range reAadhaarNum.FindAllStringSubmatchIndex(raw, -1) {
		if reVIDTail.MatchString(raw[loc[1]:]) || reVIDHead.MatchString(raw[:loc[0]]) {
			continue
		}
		return raw[loc[2]:loc[3]] + " " + raw[loc[4]:loc[5]] + " " + raw[loc[6]:loc[7]]
	}
	return ""
}

func splitLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r", ""), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// nameNearLine checks up to three lines above idx for a person-like name.
func nameNearLine(lines []string, idx int) string {
	if idx <= 0 || idx >= len(lines) {
		return ""
	}
	for i := idx - 1; i >= 0 && idx-i <= 3; i-- {
		if name := nameFromLine(lines[i]); isLikelyPersonName(name) {
			return name
		}
	}
	return ""
}

func nameFromLine(line string) string {
	if _, rest, ok := strings.Cut(line, ":"); ok && strings.Contains(strings.ToLower(line), "name") {
		line = rest
	}
	parts := strings.Fields(reNonLetters.ReplaceAllString(line, " "))
	if len(parts) > 4 {
		parts = parts[:4]
	}
	return CleanName(strings.Join(parts, " "))
}

func isLikelyPersonName(name string) bool {
	words := strings.Fields(name)
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	for _, w := range words {
		if slices.Contains(nonNameWords, strings.ToLower(w)) {
			return false
		}
	}
	letters := 0
	for _, r := range name {
		if unicode.IsLetter(r) {
			letters++
		}
	}
	return letters >= 4
}

// genderNearLine looks a couple of lines around idx, so the disclaimer text
// on the back of the card is not picked up.
func genderNearLine(lines []string, idx int) string {
	start, end := 0, len(lines)
	if idx >= 0 {
		start = max(0, idx-2)
		end = min(len(lines), idx+5)
	}
	for _, line := range lines[start:end] {
		lower := strings.ToLower(line)
		switch {
		case strings.Contains(lower, "female"), strings.Contains(lower, "महिला"):
			return "Female"
		case strings.Contains(lower, "male"), strings.Contains(lower, "पुरुष"):
			return "Male"
		case strings.Contains(lower, "transgender"):
			return "Transgender"
		}
	}
	return ""
}
