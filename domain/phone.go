package domain

import "strings"

// NormalizePhone canonicalizes a raw phone number to +<countrycode><digits>.
// Numbers without a country code get defaultCC prefixed; a single leading
// trunk zero is dropped first. "00" international prefixes become "+".
func NormalizePhone(raw, defaultCC string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')', '.':
			return -1
		}
		return r
	}, strings.TrimSpace(raw))

	if cleaned == "" {
		return "", ErrInvalidPhone
	}

	var normalized string
	switch {
	case strings.HasPrefix(cleaned, "+"):
		normalized = cleaned
	case strings.HasPrefix(cleaned, "00"):
		normalized = "+" + cleaned[2:]
	default:
		normalized = defaultCC + strings.TrimPrefix(cleaned, "0")
	}

	digits := strings.TrimPrefix(normalized, "+")
	if len(digits) < 8 || len(digits) > 15 {
		return "", ErrInvalidPhone
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return "", ErrInvalidPhone
		}
	}
	return normalized, nil
}
