// Package sanitize screens free-text input for injection and markup
// payloads and validates the shapes of emails, passwords, display names and
// usernames. The pattern lists are fixed; detection is advisory, meant for
// rejecting obviously hostile input, not for parsing HTML.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	angleBrackets = regexp.MustCompile(`[<>]`)
	quotesEscapes = regexp.MustCompile("['\"`;\\\\]")
	pathTraversal = regexp.MustCompile(`(\$|\.\./|\.\.\\)`)
	riskyKeywords = regexp.MustCompile(`(?i)(script|javascript|onerror|onload)`)
)

// injectionPatterns is the fixed list of payload shapes DetectInjection
// tests against.
var injectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`),
	regexp.MustCompile(`(?i)javascript:`),
	regexp.MustCompile(`(?i)on\w+\s*=`),
	regexp.MustCompile(`(?i)<iframe`),
	regexp.MustCompile(`(?i)<object`),
	regexp.MustCompile(`(?i)<embed`),
	regexp.MustCompile(`(?i)eval\(`),
	regexp.MustCompile(`(?i)expression\(`),
	regexp.MustCompile(`(?i)vbscript:`),
	regexp.MustCompile(`(?i)data:text/html`),
}

// Text strips angle brackets, quote and escape characters, path-traversal
// sequences and dangerous keywords from the input, then trims whitespace.
// Already-clean text passes through unchanged, so running it twice yields
// the same result.
func Text(input string) string {
	out := angleBrackets.ReplaceAllString(input, "")
	out = quotesEscapes.ReplaceAllString(out, "")
	out = pathTraversal.ReplaceAllString(out, "")
	out = riskyKeywords.ReplaceAllString(out, "")
	return strings.TrimSpace(out)
}

// DetectInjection reports whether the input matches any known dangerous
// pattern. Use it to reject input outright where silent cleaning is not
// strict enough.
func DetectInjection(input string) bool {
	for _, p := range injectionPatterns {
		if p.MatchString(input) {
			return true
		}
	}
	return false
}

// CleanInjection removes every dangerous-pattern match from the input.
func CleanInjection(input string) string {
	out := input
	for _, p := range injectionPatterns {
		out = p.ReplaceAllString(out, "")
	}
	return out
}

// Map applies Text to every string value in m, recursing into nested maps.
// Non-string values pass through unchanged. The input map is not modified.
func Map(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		switch t := v.(type) {
		case string:
			out[k] = Text(t)
		case map[string]any:
			out[k] = Map(t)
		default:
			out[k] = v
		}
	}
	return out
}
