package sanitizer

import "strings"

// RemoveSpaces drops every ASCII space. Other whitespace is kept so that
// inputs like "4111\t1111" still fail pattern matching.
func RemoveSpaces(s string) string {
	if !strings.Contains(s, " ") {
		return s
	}
	return strings.ReplaceAll(s, " ", "")
}

// NormalizeCreditCard strips formatting for PCI-compliant storage and validation.
func NormalizeCreditCard(cardNumber string) string {
	return nonDigitRegex.ReplaceAllString(cardNumber, "")
}

// MaskCreditCard follows PCI DSS requirement to show only last 4 digits.
func MaskCreditCard(cardNumber string) string {
	digits := NormalizeCreditCard(cardNumber)
	if len(digits) < 4 {
		return strings.Repeat("*", len(digits))
	}

	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}

// FormatCreditCard groups digits by four for display. Numbers outside the
// 12-19 digit range used by any known brand are returned unchanged.
func FormatCreditCard(cardNumber string) string {
	digits := NormalizeCreditCard(cardNumber)
	if len(digits) < 12 || len(digits) > 19 {
		return cardNumber
	}

	var formatted strings.Builder
	for i, digit := range digits {
		if i > 0 && i%4 == 0 {
			formatted.WriteString(" ")
		}
		formatted.WriteRune(digit)
	}

	return formatted.String()
}
