// Package tokenizer turns raw parser output into the stemmed token stream
// consumed by the Main Index. It scans character by character rather than
// splitting on word boundaries: digit runs pass through unchanged, letter
// runs are lower-cased and stemmed, and any other single character becomes
// its own token.
package tokenizer

import "unicode"

// Lexer tokenizes text, reusing one Stemmer instance across all the
// alphabetic tokens it produces. Callers should construct one Lexer per
// parser invocation rather than per token.
type Lexer struct {
	stemmer *Stemmer
}

// New creates a Lexer with a fresh Stemmer.
func New() *Lexer {
	return &Lexer{stemmer: NewStemmer()}
}

// Tokenize scans input and returns its token stream. Whitespace is
// discarded; it never appears as a token.
func (l *Lexer) Tokenize(input string) []string {
	runes := []rune(input)
	tokens := make([]string, 0, len(runes))

	i := 0
	for i < len(runes) {
		r := runes[i]

		if unicode.IsSpace(r) {
			i++
			continue
		}

		if unicode.IsDigit(r) {
			j := i
			for j < len(runes) && unicode.IsDigit(runes[j]) {
				j++
			}
			tokens = append(tokens, string(runes[i:j]))
			i = j
			continue
		}

		if unicode.IsLetter(r) {
			j := i
			for j < len(runes) && unicode.IsLetter(runes[j]) {
				j++
			}
			word := toLower(runes[i:j])
			tokens = append(tokens, l.stemmer.Stem(word))
			i = j
			continue
		}

		tokens = append(tokens, string(r))
		i++
	}

	return tokens
}

func toLower(runes []rune) string {
	out := make([]rune, len(runes))
	for i, r := range runes {
		out[i] = unicode.ToLower(r)
	}
	return string(out)
}
