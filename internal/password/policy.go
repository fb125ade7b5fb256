// Package password implements the credential policy: strength
// validation, deterministic default-password derivation from
// organizational identity, and random generation. Every function is
// pure or uses only local random draws, so concurrent use is safe.
package password

import (
	"errors"
	"strings"
	"unicode"
)

// SpecialChars is the closed set of punctuation a valid password may
// (and must) draw from.
const SpecialChars = "@$!%*?&"

// defaultSuffix terminates every derived default password; it supplies
// the digit and special character the strength policy requires.
const defaultSuffix = "123!"

// ErrWeakPassword is returned by credential-change flows when a
// candidate fails ValidateStrength. The predicate itself stays a bool;
// callers decide whether false is an error.
var ErrWeakPassword = errors.New("password does not meet strength requirements")

// ValidateStrength reports whether pw satisfies the policy: at least 8
// characters with at least one lowercase letter, one uppercase letter,
// one digit and one special character, using no characters outside
// those classes.
func ValidateStrength(pw string) bool {
	if len(pw) < 8 {
		return false
	}
	var lower, upper, digit, special bool
	for _, r := range pw {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(SpecialChars, r):
			special = true
		default:
			return false
		}
	}
	return lower && upper && digit && special
}

// DeriveDefaultPassword derives a tenant-level default credential from
// the company name: letters only, truncated to 8, plus the fixed suffix.
// emailDomainHint is accepted for call-site compatibility but does not
// participate in the derivation.
func DeriveDefaultPassword(companyName, emailDomainHint string) string {
	_ = emailDomainHint
	return truncate(lettersOnly(companyName), 8) + defaultSuffix
}

// DeriveUserDefaultPassword derives a user's initial credential from the
// tenant's company name (6 letters) and the user's first name (3
// letters) plus the fixed suffix. Deterministic, so onboarding flows can
// predict it: ("John", "Company One SARL") -> "CompanJoh123!".
func DeriveUserDefaultPassword(firstName, companyName string) string {
	return truncate(lettersOnly(companyName), 6) +
		truncate(lettersOnly(firstName), 3) +
		defaultSuffix
}

func lettersOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		return string(runes[:n])
	}
	return s
}
