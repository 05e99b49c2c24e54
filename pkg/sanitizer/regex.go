package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// Card number digit extraction
	nonDigitRegex = regexp.MustCompile(`\D`)
)
