package utils

import "strings"

// CountryID derives a stable, URL-safe identifier from a country name:
// lowercase, with runs of non-alphanumeric characters collapsed to a single
// hyphen. "United States of America" becomes "united-states-of-america".
func CountryID(name string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen

	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
