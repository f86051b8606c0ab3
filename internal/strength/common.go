package strength

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// commonPasswords is the fixed denylist, stored lowercased.
var commonPasswords = map[string]struct{}{
	"password":    {},
	"123456":      {},
	"password123": {},
	"admin":       {},
	"qwerty":      {},
	"letmein":     {},
	"welcome":     {},
	"monkey":      {},
	"1234567890":  {},
	"abc123":      {},
}

// IsCommon reports whether pwd matches a denylisted password, ignoring case.
func IsCommon(pwd string) bool {
	// A Caser must not be shared between goroutines.
	_, ok := commonPasswords[cases.Lower(language.Und).String(pwd)]
	return ok
}
