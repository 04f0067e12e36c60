package utils

import (
	"regexp"
	"strings"
)

// Form 21 lists the dealer (with its own phone and pincode) before the buyer,
// so recovery only looks at text after the buyer section starts.

var (
	reBuyerLabel = regexp.MustCompile(`(?i)\bname\s+of\s+(?:the\s+)?(?:buyer|purchaser)\b|\b(?:buyer|purchaser)(?:'?s)?\s+name\b|\bpurchaser\b`)
	reAddrLabel  = regexp.MustCompile(`(?i)\baddress\b`)
	rePhone      = regexp.MustCompile(`(?i)\b(?:ph(?:one)?|mob(?:ile)?|cell)\b\.?\s*(?:no\b\.?|number)?\s*[:.\-]?\s*(?:\+?91[\s\-]?|0)?(\d{5}[\s\-]?\d{5})\b`)
	rePinLabel   = regexp.MustCompile(`(?i)\bpin(?:\s*code)?\b\.?\s*(?:no\b\.?)?\s*[:.\-]?\s*([1-9]\d{2}\s?\d{3})\b`)
	reBarePin    = regexp.MustCompile(`\b([1-9]\d{5})\b`)
)

// BuyerSectionStart returns the byte offset where the buyer section begins:
// the first buyer label, else the buyer's name, else the last "Address"
// label. It returns -1 when none of them is found.
func BuyerSectionStart(raw, buyerName string) int {
	if loc := reBuyerLabel.FindStringIndex(raw); loc != nil {
		return loc[0]
	}
	if name := NormalizeWhitespace(buyerName); name != "" && !isSentinel(name) {
		if i := strings.Index(strings.ToLower(raw), strings.ToLower(name)); i >= 0 {
			return i
		}
	}
	if locs := reAddrLabel.FindAllStringIndex(raw, -1); len(locs) > 0 {
		return locs[len(locs)-1][0]
	}
	return -1
}

// RecoverMobileNumber finds a 10-digit number preceded by a Ph/Mob/Phone/Mobile
// label. With an anchor the first match after it wins; without one the last
// labelled number in the text is used, since the buyer block comes last.
func RecoverMobileNumber(raw string, anchor int) (string, bool) {
	if anchor >= 0 && anchor <= len(raw) {
		m := rePhone.FindStringSubmatch(raw[anchor:])
		if m == nil {
			return "", false
		}
		return digitsOnly(m[1]), true
	}
	all := rePhone.FindAllStringSubmatch(raw, -1)
	if len(all) == 0 {
		return "", false
	}
	return digitsOnly(all[len(all)-1][1]), true
}

// RecoverPincode looks for a labelled pincode after the anchor, then a bare
// 6-digit token after an "Address" label, then any bare 6-digit token.
func RecoverPincode(raw string, anchor int) (string, bool) {
	region := raw
	if anchor >= 0 && anchor <= len(raw) {
		region = raw[anchor:]
	}
	if m := rePinLabel.FindStringSubmatch(region); m != nil {
		return digitsOnly(m[1]), true
	}
	if loc := reAddrLabel.FindStringIndex(region); loc != nil {
		if m := reBarePin.FindStringSubmatch(region[loc[1]:]); m != nil {
			return m[1], true
		}
	}
	if m := reBarePin.FindStringSubmatch(region); m != nil {
		return m[1], true
	}
	return "", false
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
