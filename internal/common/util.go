package common

import "regexp"

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail reports whether s looks like an email address. This is the
// same permissive shape check the registration form applies; the server
// remains the authority on deliverability.
func ValidateEmail(s string) bool {
	return emailRe.MatchString(s)
}

// ValidatePassword reports whether s satisfies the minimum length rule.
// Length is counted in characters the user typed, not encoded bytes.
func ValidatePassword(s string) bool {
	return len([]rune(s)) >= MinPasswordLength
}
