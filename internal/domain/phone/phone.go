package phone

import (
	"errors"
	"regexp"
	"strings"
)

// DefaultCountryCode is prepended to bare 10-digit numbers. The admin UI
// historically sent numbers in several shapes ("+91 98765-43210", "9876543210",
// "919876543210"); everything funnels through Normalize so the gateway holds a
// single policy.
const DefaultCountryCode = "91"

var onlyDigit = regexp.MustCompile(`^\d+$`)

var (
	ErrEmpty     = errors.New("phone number is required")
	ErrNotDigits = errors.New("phone must contain only digits")
	ErrLength    = errors.New("phone length must be between 9 and 15 digits")
)

// Normalize canonicalizes a raw contact number into the digits-only form the
// send path expects: separators and the leading plus are stripped, and a bare
// national number (10 digits) gets the country code prepended.
func Normalize(raw string) (string, error) {
	return NormalizeWithCountry(raw, DefaultCountryCode)
}

// NormalizeWithCountry is Normalize with an explicit country code, for
// deployments serving a different region.
func NormalizeWithCountry(raw, country string) (string, error) {
	p := strings.TrimSpace(raw)
	for _, cut := range []string{" ", "-", "+", "(", ")"} {
		p = strings.ReplaceAll(p, cut, "")
	}

	if p == "" {
		return "", ErrEmpty
	}

	if !onlyDigit.MatchString(p) {
		return "", ErrNotDigits
	}

	// a 10-digit number is by definition national, even when it happens
	// to start with the country code digits
	if country != "" && len(p) == 10 {
		p = country + p
	}

	if len(p) < 9 || len(p) > 15 {
		return "", ErrLength
	}

	return p, nil
}
