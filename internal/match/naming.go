package match

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ToCamelCase converts a column identifier into the camelCase property name
// used for accessor lookup.
//
// The whole string is lower-cased first, then every '_' followed by a word
// character ([A-Za-z0-9_]) is dropped and that character upper-cased. Matches
// are consumed left to right without overlap, so "a__b" becomes "a_b".
// Strings without '_' come back lower-cased.
func ToCamelCase(s string) string {
	lower := strings.ToLower(s)
	if !strings.Contains(lower, "_") {
		return lower
	}

	var sb strings.Builder

	sb.Grow(len(lower))

	runes := []rune(lower)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '_' && i+1 < len(runes) && isWordRune(runes[i+1]) {
			sb.WriteRune(unicode.ToUpper(runes[i+1]))
			i++

			continue
		}

		sb.WriteRune(r)
	}

	return sb.String()
}

// Capitalize upper-cases the first rune of s.
func Capitalize(s string) string {
	if s == "" {
		return s
	}

	r, size := utf8.DecodeRuneInString(s)

	return string(unicode.ToUpper(r)) + s[size:]
}

// LowerCamel converts a Go identifier into a lower camelCase property name.
// Acronyms are folded like ordinary words:
//   - "DeptID" -> "deptId"
//   - "URLPath" -> "urlPath"
//   - "ID" -> "id"
func LowerCamel(s string) string {
	words := Words(s)
	if len(words) == 0 {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(words[0])

	for _, w := range words[1:] {
		sb.WriteString(Capitalize(w))
	}

	return sb.String()
}

// isWordRune mirrors the ASCII \w class.
func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
