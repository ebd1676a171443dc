package notification

import "strings"

// NormalizeKenyanPhone rewrites a phone number into the 254-prefixed form
// the WhatsApp API expects. Whitespace, parentheses, and dashes are
// stripped first; anything that does not look like a Kenyan number passes
// through cleaned but otherwise untouched.
func NormalizeKenyanPhone(phone string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '(', ')', '-':
			return -1
		}
		return r
	}, phone)

	switch {
	case strings.HasPrefix(cleaned, "+254"):
		return cleaned[1:]
	case strings.HasPrefix(cleaned, "254"):
		return cleaned
	case strings.HasPrefix(cleaned, "0"):
		return "254" + cleaned[1:]
	case strings.HasPrefix(cleaned, "7"), strings.HasPrefix(cleaned, "1"):
		return "254" + cleaned
	}

	return cleaned
}
