package quizgen

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)
	lineBreaks  = strings.NewReplacer("\r", " ", "\n", " ")
)

// normalize joins the text into a single line so sentences do not fragment
// across the document's original line breaks.
func normalize(text string) string {
	return lineBreaks.Replace(text)
}

// splitSentences is a period-delimited heuristic. Abbreviations and decimal
// numbers split sentences too.
func splitSentences(text string, minLength int) []string {
	var sentences []string
	for _, fragment := range strings.Split(text, ".") {
		s := strings.TrimSpace(fragment)
		if utf8.RuneCountInString(s) > minLength {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// longWords returns every word token longer than minLength characters, in
// order and with duplicates kept. A word is a run of letters, digits and
// underscores in any script.
func longWords(text string, minLength int) []string {
	var words []string
	for _, w := range wordPattern.FindAllString(text, -1) {
		if utf8.RuneCountInString(w) > minLength {
			words = append(words, w)
		}
	}
	return words
}

// vocabulary is the document-wide long-word pool. It is built once per
// document and only read afterwards.
type vocabulary []string

// excluding returns a fresh slice of pool words that do not case-insensitively
// match word.
func (v vocabulary) excluding(word string) []string {
	lower := strings.ToLower(word)
	pool := make([]string, 0, len(v))
	for _, w := range v {
		if strings.ToLower(w) != lower {
			pool = append(pool, w)
		}
	}
	return pool
}
