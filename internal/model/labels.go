package model

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var splitWordsPattern = regexp.MustCompile(`[_\-\s]+`)

// DefaultLabeler converts a field name into a human-friendly label. It splits
// on underscores/dashes, camelCase and digit boundaries, and before the last
// capital of an acronym ("HTMLParser" becomes "Html Parser").
func DefaultLabeler(name string) string {
	words := Words(name)
	for i, word := range words {
		words[i] = titleCase(word)
	}
	return strings.Join(words, " ")
}

// Words splits an identifier into its words.
func Words(name string) []string {
	var words []string
	for _, part := range splitWordsPattern.Split(name, -1) {
		if part == "" {
			continue
		}
		words = append(words, strings.Fields(splitCamel(part))...)
	}
	return words
}

// CamelCase joins the words of name in lower camel case.
func CamelCase(name string) string {
	var b strings.Builder
	for i, word := range Words(name) {
		if i == 0 {
			b.WriteString(strings.ToLower(word))
			continue
		}
		b.WriteString(titleCase(word))
	}
	return b.String()
}

// PascalCase joins the words of name in upper camel case.
func PascalCase(name string) string {
	var b strings.Builder
	for _, word := range Words(name) {
		b.WriteString(titleCase(word))
	}
	return b.String()
}

// KebabCase joins the lower-cased words of name with dashes.
func KebabCase(name string) string {
	words := Words(name)
	for i, word := range words {
		words[i] = strings.ToLower(word)
	}
	return strings.Join(words, "-")
}

func splitCamel(input string) string {
	runes := []rune(input)
	var out strings.Builder
	for i, r := range runes {
		if i > 0 && isBoundary(runes, i) {
			out.WriteByte(' ')
		}
		out.WriteRune(r)
	}
	return out.String()
}

func isBoundary(runes []rune, index int) bool {
	prev, r := runes[index-1], runes[index]
	if unicode.IsUpper(prev) && unicode.IsUpper(r) && index+1 < len(runes) && unicode.IsLower(runes[index+1]) {
		return true
	}
	return (unicode.IsLower(prev) && unicode.IsUpper(r)) ||
		(unicode.IsLetter(prev) && unicode.IsDigit(r)) ||
		(unicode.IsDigit(prev) && unicode.IsLetter(r))
}

func titleCase(word string) string {
	if word == "" {
		return ""
	}
	lower := strings.ToLower(word)
	first, size := utf8.DecodeRuneInString(lower)
	return string(unicode.ToUpper(first)) + lower[size:]
}
