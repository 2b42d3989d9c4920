package sanitization

import (
	"regexp"
	"strings"
)

var (
	whitespaceRegex = regexp.MustCompile(`\s+`)
	controlRegex    = regexp.MustCompile(`[\x00-\x1f\x7f]`)
)

// SanitizeHeader makes a user-supplied value safe to use inside a mail header
// such as the subject: control characters (CR and LF included) become spaces,
// runs of whitespace collapse, and the result is trimmed.
func SanitizeHeader(input string) string {
	safe := controlRegex.ReplaceAllString(input, " ")
	safe = whitespaceRegex.ReplaceAllString(safe, " ")
	return strings.TrimSpace(safe)
}

// SanitizeEmail normalises an email address for use as a mail recipient
func SanitizeEmail(input string) string {
	return strings.ToLower(strings.TrimSpace(controlRegex.ReplaceAllString(input, "")))
}

// MaskEmail hides the local part of an address for log lines
func MaskEmail(input string) string {
	at := strings.LastIndex(input, "@")
	if at <= 0 {
		return "***"
	}
	return input[:1] + "***" + input[at:]
}
