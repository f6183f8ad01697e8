package stringsx

import (
	"strings"
	"unicode/utf8"
)

// UpperFirstChar takes a string and returns a new string with the first character converted to uppercase.
func UpperFirstChar(s string) string {
	if s == "" {
		return ""
	}

	firstRune, size := utf8.DecodeRuneInString(s)

	return strings.ToUpper(string(firstRune)) + s[size:]
}
