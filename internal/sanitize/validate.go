package sanitize

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// PasswordPolicy selects the strength rules Password enforces.
type PasswordPolicy int

const (
	// PolicyStrict requires 8-128 characters with at least one uppercase
	// letter, one lowercase letter, one digit and one special character.
	// This is the default.
	PolicyStrict PasswordPolicy = iota

	// PolicyRelaxed only requires 6 or more characters. Legacy; kept for
	// data written by the pre-rewrite flow.
	PolicyRelaxed
)

const maxEmailLength = 100

var (
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,6}$`)
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,20}$`)
	specialPattern  = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>/?]`)
)

// Email reports whether the input has a plausible email shape and fits the
// length cap. Pure predicate, no side effects.
func Email(input string) bool {
	return len(input) <= maxEmailLength && emailPattern.MatchString(input)
}

// Password reports whether the input satisfies the given policy.
func Password(input string, policy PasswordPolicy) bool {
	n := utf8.RuneCountInString(input)

	if policy == PolicyRelaxed {
		return n >= 6
	}

	if n < 8 || n > 128 {
		return false
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range input {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasUpper && hasLower && hasDigit && specialPattern.MatchString(input)
}

// DisplayName reports whether the input is 2-50 characters long.
func DisplayName(input string) bool {
	n := utf8.RuneCountInString(input)
	return n >= 2 && n <= 50
}

// Username reports whether the input is 3-20 characters of [a-zA-Z0-9_-].
func Username(input string) bool {
	return usernamePattern.MatchString(input)
}
