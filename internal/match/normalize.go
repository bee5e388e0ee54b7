package match

import (
	"strings"
	"unicode"
)

// keyWords are trailing words that mark a key column rather than its meaning.
var keyWords = map[string]bool{"id": true, "ids": true, "no": true}

// Words splits an identifier into lower-case words at underscores, hyphens,
// spaces and camel-case humps. An upper-case run stays one word, so
// "deptID" is [dept id] and "HTTPStatus" is [http status].
func Words(s string) []string {
	var (
		words []string
		word  []rune
	)

	flush := func() {
		if len(word) > 0 {
			words = append(words, strings.ToLower(string(word)))
			word = word[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if r == '_' || r == '-' || r == ' ' {
			flush()

			continue
		}

		if i > 0 && startsWord(runes, i) {
			flush()
		}

		word = append(word, r)
	}

	flush()

	return words
}

func startsWord(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) {
		return false
	}

	if !unicode.IsUpper(prev) {
		return true
	}

	// last capital of an upper-case run followed by lower case: "HTTPStatus"
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}

// Fold joins the words of s, so "dept_id", "deptId" and "DeptID" all fold to
// "deptid".
func Fold(s string) string {
	return strings.Join(Words(s), "")
}

// FoldKey is Fold with a trailing key word (id, ids, no) dropped, so a key
// column folds to the name of the thing it refers to: "dept_id" is "dept".
func FoldKey(s string) string {
	words := Words(s)
	if n := len(words); n > 1 && keyWords[words[n-1]] {
		words = words[:n-1]
	}

	return strings.Join(words, "")
}
