// Package normalize provides canonicalization helpers shared by every
// CRM-facing component: taxonomy keys, emails, phone numbers and names.
package normalize

import (
	"strings"
	"unicode"
)

// Key canonicalizes a taxonomy/edge-type key: trim, lowercase, snake_case,
// invalid runes stripped, repeated separators collapsed.
func Key(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastUnderscore := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		case r == '_' || r == '-' || r == ' ' || r == '.' || r == '/':
			if !lastUnderscore && b.Len() > 0 {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.Trim(b.String(), "_")
}

// Email lowercases and trims an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// PhoneE164 canonicalizes a phone number to a best-effort E.164 form.
// Ten digits are assumed to be NANP and get a +1 prefix; eleven digits with a
// leading 1 get a bare +; anything else keeps its digits behind a +.
// Returns "" when fewer than seven digits survive.
func PhoneE164(s string) string {
	var digits strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) < 7 {
		return ""
	}
	switch {
	case len(d) == 10:
		return "+1" + d
	case len(d) == 11 && d[0] == '1':
		return "+" + d
	default:
		return "+" + d
	}
}

// Name canonicalizes a person or company name for matching: lowercase,
// punctuation removed, whitespace collapsed.
func Name(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// LabelFromKey derives a display label from a snake_case key
// ("company_type" -> "Company Type").
func LabelFromKey(key string) string {
	parts := strings.Split(key, "_")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		out = append(out, strings.ToUpper(p[:1])+p[1:])
	}
	return strings.Join(out, " ")
}
