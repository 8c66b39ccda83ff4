package depth

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	mcPattern  = regexp.MustCompile(`\bMc([a-z])`)
	macPattern = regexp.MustCompile(`\bMac([a-z])`)
	oPattern   = regexp.MustCompile(`\bO'([a-z])`)
)

// NormalizeName turns a raw roster cell entry such as "HARRISON JR., MARVIN 24/1"
// into a display name ("Marvin Harrison Jr."). Jersey numbers, experience codes
// and injury markers end the name; "Last, First" is reordered.
func NormalizeName(raw string) string {
	s := strings.TrimSpace(strings.ReplaceAll(raw, "\u00a0", " "))
	if s == "" {
		return ""
	}

	var kept []string
	for _, tok := range strings.Fields(s) {
		if isCodeToken(tok) {
			break
		}
		kept = append(kept, tok)
	}

	name := s
	if len(kept) > 0 {
		name = strings.Join(kept, " ")
	}

	if last, rest, ok := strings.Cut(name, ","); ok {
		name = strings.TrimSpace(rest) + " " + strings.TrimSpace(last)
	}

	name = strings.Join(strings.Fields(name), " ")
	return smartTitle(name)
}

// isCodeToken reports whether tok carries jersey/experience data rather than a name
func isCodeToken(tok string) bool {
	if strings.Contains(tok, "/") || strings.HasSuffix(tok, "^") {
		return true
	}
	return strings.IndexFunc(tok, unicode.IsDigit) >= 0
}

func smartTitle(s string) string {
	if s == "" {
		return s
	}
	t := titleCase(s)
	t = mcPattern.ReplaceAllStringFunc(t, func(m string) string { return "Mc" + strings.ToUpper(m[2:]) })
	t = macPattern.ReplaceAllStringFunc(t, func(m string) string { return "Mac" + strings.ToUpper(m[3:]) })
	t = oPattern.ReplaceAllStringFunc(t, func(m string) string { return "O'" + strings.ToUpper(m[2:]) })
	return t
}

// titleCase upper-cases a letter that follows a non-letter and lower-cases
// every other letter, so "o'brien-SMITH" becomes "O'Brien-Smith".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToTitle(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}
	return b.String()
}
