package utils

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/Aashish23092/ocr-autofill/dto"
)

var honorificRe = buildHonorificRe(Honorifics)

func buildHonorificRe(titles []string) *regexp.Regexp {
	quoted := make([]string, len(titles))
	for i, t := range titles {
		quoted[i] = regexp.QuoteMeta(t)
	}
	return regexp.MustCompile(`(?i)^(?:` + strings.Join(quoted, "|") + `)(?:\.\s*|\s+)`)
}

// ---------------- Name ----------------

// CleanName strips leading honorifics, normalizes whitespace and joins a
// name that OCR split into single letters ("S H I V A M" -> "SHIVAM").
func CleanName(name string) string {
	if name == "" {
		return name
	}
	if isSentinel(name) {
		return dto.NotAvailable
	}

	s := NormalizeWhitespace(name)
	for {
		loc := honorificRe.FindStringIndex(s)
		// a bare "Mr." is kept rather than emptied
		if loc == nil || loc[1] >= len(s) {
			break
		}
		s = strings.TrimSpace(s[loc[1]:])
	}

	if singleLetterTokens(s) >= 3 {
		s = MergeLetterRuns(s)
	}
	return s
}

// ---------------- Month ----------------

// ConvertShortMonthToFull maps "may", "MAY" or "Sep." to the full month name.
// Anything else is returned unchanged.
func ConvertShortMonthToFull(month string) string {
	if month == "" || isSentinel(month) {
		return month
	}
	key := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(month)), ".")
	if full, ok := ShortMonths[key]; ok {
		return full
	}
	return month
}

// ---------------- Mobile ----------------

// CleanMobileNumber reduces a model-supplied number to its 10 digits,
// dropping a +91/91/0 prefix. Values that are not a phone number are only
// whitespace-normalized.
func CleanMobileNumber(mobile string) string {
	if mobile == "" || isSentinel(mobile) {
		return mobile
	}
	d := digitsOnly(mobile)
	switch {
	case len(d) == 12 && strings.HasPrefix(d, "91"):
		return d[2:]
	case len(d) == 11 && strings.HasPrefix(d, "0"):
		return d[1:]
	case len(d) == 10:
		return d
	}
	return NormalizeWhitespace(mobile)
}

// ---------------- Relationship line ----------------

// Relation is a "son/daughter/wife of NAME" line found in the source text.
type Relation struct {
	Kind string // S/O, D/O or W/O
	Name string
}

func (r Relation) Valid() bool {
	return r.Kind != "" && r.Name != ""
}

func (r Relation) String() string {
	if !r.Valid() {
		return ""
	}
	return r.Kind + " " + r.Name
}

var (
	// Form 21 prints the combined label; the actual relation is not knowable.
	reRelationCombined = regexp.MustCompile(`(?i)\bson\s*/\s*wife\s*/\s*daughter\s+of\b`)
	reRelationShort    = regexp.MustCompile(`(?i)\b([sdw])\s*/\s*o\b\.?`)
	reRelationWords    = regexp.MustCompile(`(?i)\b(son|daughter|wife)\s+of\b`)
	reRelationName     = regexp.MustCompile(`^[\s:.\-]*([A-Za-z][A-Za-z.' ]*)`)
)

var relationKinds = map[string]string{
	"s": "S/O", "son": "S/O",
	"d": "D/O", "daughter": "D/O",
	"w": "W/O", "wife": "W/O",
}

// words that end a relation name when OCR ran the next label onto the line
var relationStopWords = map[string]bool{
	"address": true, "addr": true, "pin": true, "pincode": true, "ph": true,
	"phone": true, "mob": true, "mobile": true, "age": true, "dob": true,
	"village": true, "dist": true, "district": true, "street": true,
	"road": true, "no": true, "door": true, "house": true,
}

// FindRelation returns the first relationship line in raw, reading the name
// from the rest of the line or, when the label stands alone, the next line.
func FindRelation(raw string) (Relation, bool) {
	lines := strings.Split(strings.ReplaceAll(raw, "\r", ""), "\n")
	for i, line := range lines {
		kind, rest, ok := matchRelationLabel(line)
		if !ok {
			continue
		}
		name := relationName(rest)
		if name == "" {
			for j := i + 1; j < len(lines); j++ {
				if strings.TrimSpace(lines[j]) == "" {
					continue
				}
				name = relationName(lines[j])
				break
			}
		}
		if name != "" {
			return Relation{Kind: kind, Name: name}, true
		}
	}
	return Relation{}, false
}

func matchRelationLabel(line string) (kind, rest string, ok bool) {
	if loc := reRelationCombined.FindStringIndex(line); loc != nil {
		return "S/O", line[loc[1]:], true
	}
	if m := reRelationShort.FindStringSubmatchIndex(line); m != nil {
		return relationKinds[strings.ToLower(line[m[2]:m[3]])], line[m[1]:], true
	}
	if m := reRelationWords.FindStringSubmatchIndex(line); m != nil {
		return relationKinds[strings.ToLower(line[m[2]:m[3]])], line[m[1]:], true
	}
	return "", "", false
}

func relationName(s string) string {
	m := reRelationName.FindStringSubmatch(s)
	if len(m) < 2 {
		return ""
	}
	var words []string
	for _, w := range strings.Fields(m[1]) {
		if relationStopWords[strings.ToLower(strings.Trim(w, ".'"))] {
			break
		}
		words = append(words, w)
		if len(words) == 4 {
			break
		}
	}
	name := CleanName(strings.Join(words, " "))
	name = strings.Trim(name, ". ")
	if len(strings.TrimFunc(name, func(r rune) bool { return !unicode.IsLetter(r) })) < 2 {
		return ""
	}
	return UpperCaseFold(name)
}

// ---------------- Address ----------------

// AddressCleaner canonicalizes buyer addresses. The substitution table is
// data so it can be swapped per corpus.
type AddressCleaner struct {
	fixups []Substitution
}

// NewAddressCleaner uses DefaultAddressFixups when fixups is nil.
func NewAddressCleaner(fixups []Substitution) *AddressCleaner {
	if fixups == nil {
		fixups = MustCompileSubstitutions(DefaultAddressFixups)
	}
	return &AddressCleaner{fixups: fixups}
}

var (
	reCommaRuns  = regexp.MustCompile(`\s*,[\s,]*`)
	reSpaceBreak = regexp.MustCompile(`\s+([.;:])`)
)

// Clean runs, in order: whitespace normalization, pincode removal, garble
// substitution, token de-duplication, relation prefixing, upper-casing.
func (c *AddressCleaner) Clean(address, pincode string, rel Relation) string {
	if address == "" {
		return address
	}
	if isSentinel(address) {
		return dto.NotAvailable
	}

	s := NormalizeWhitespace(address)

	prefixed := false
	if rel.Valid() {
		if rest, ok := cutPrefixFold(s, rel.String()); ok {
			s = strings.TrimLeft(rest, " ,;:-")
			prefixed = true
		}
	}

	s = removePincode(s, pincode)
	for _, f := range c.fixups {
		s = f.Apply(s)
	}
	s = tidyAddress(DedupeTokens(NormalizeWhitespace(s)))

	if rel.Valid() && (prefixed || !containsWordsFold(s, rel.Name)) {
		if s == "" {
			s = rel.String()
		} else {
			s = rel.String() + " " + s
		}
	}

	return UpperCaseFold(s)
}

// DedupeTokens drops every whole-word token whose case-insensitive form was
// already seen, keeping the first occurrence in place. Punctuation-only
// tokens are always kept.
func DedupeTokens(s string) string {
	tokens := strings.Fields(s)
	seen := make(map[string]bool, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		key := strings.ToLower(strings.Trim(tok, ",.;:-()"))
		if key != "" {
			if seen[key] {
				continue
			}
			seen[key] = true
		}
		out = append(out, tok)
	}
	return strings.Join(out, " ")
}

func removePincode(s, pincode string) string {
	pin := strings.ReplaceAll(strings.TrimSpace(pincode), " ", "")
	if len(pin) != 6 || !isDigits(pin) {
		return s
	}
	re := regexp.MustCompile(`\b` + pin[:3] + `\s?` + pin[3:] + `\b`)
	return NormalizeWhitespace(re.ReplaceAllString(s, " "))
}

func tidyAddress(s string) string {
	s = reCommaRuns.ReplaceAllString(s, ", ")
	s = reSpaceBreak.ReplaceAllString(s, "$1")
	s = strings.Trim(s, " ,;:-")
	return NormalizeWhitespace(s)
}

func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return s, false
	}
	rest := s[len(prefix):]
	if rest != "" && !strings.ContainsAny(rest[:1], " ,;:-") {
		return s, false
	}
	return rest, true
}

// containsWordsFold reports whether words appears in s as whole words,
// ignoring case. "RAVI" is not found in "RAVINDRA NAGAR".
func containsWordsFold(s, words string) bool {
	words = NormalizeWhitespace(words)
	if words == "" {
		return false
	}
	pattern := `(?i)(?:^|[^\p{L}\p{N}])` +
		strings.ReplaceAll(regexp.QuoteMeta(words), " ", `\s+`) +
		`(?:$|[^\p{L}\p{N}])`
	return regexp.MustCompile(pattern).MatchString(s)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
