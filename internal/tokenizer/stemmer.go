package tokenizer

import "strings"

// Stemmer implements the Porter stemming algorithm for English. No
// stemming library is available anywhere in the reference corpus, so this
// is a hand-written, dependency-free implementation; see the measure/step
// functions below, which follow Porter's 1980 paper section by section.
//
// Stemmer holds no state between calls; a single instance may be reused
// freely across tokens within one parser invocation.
type Stemmer struct{}

// NewStemmer creates a Stemmer.
func NewStemmer() *Stemmer {
	return &Stemmer{}
}

var vowels = "aeiou"

func isVowel(b byte, word string, i int) bool {
	switch {
	case strings.IndexByte(vowels, b) >= 0:
		return true
	case b == 'y':
		return i > 0 && !isVowel(word[i-1], word, i-1)
	default:
		return false
	}
}

// measure returns Porter's "m": the number of times a vowel sequence is
// immediately followed by a consonant sequence in word, i.e. the number of
// VC groups in [C](VC)^m[V].
func measure(word string) int {
	m := 0
	prevVowel := false
	for i := 0; i < len(word); i++ {
		v := isVowel(word[i], word, i)
		if !v && prevVowel {
			m++
		}
		prevVowel = v
	}
	return m
}

func containsVowel(word string) bool {
	for i := 0; i < len(word); i++ {
		if isVowel(word[i], word, i) {
			return true
		}
	}
	return false
}

func endsDoubleConsonant(word string) bool {
	n := len(word)
	if n < 2 {
		return false
	}
	a, b := word[n-1], word[n-2]
	return a == b && !isVowel(a, word, n-1)
}

// endsCVC reports whether word ends in consonant-vowel-consonant where the
// final consonant is not w, x, or y.
func endsCVC(word string) bool {
	n := len(word)
	if n < 3 {
		return false
	}
	c1, v, c2 := word[n-3], word[n-2], word[n-1]
	if isVowel(c1, word, n-3) || !isVowel(v, word, n-2) || isVowel(c2, word, n-1) {
		return false
	}
	return c2 != 'w' && c2 != 'x' && c2 != 'y'
}

func hasSuffix(word, suffix string) bool {
	return len(word) >= len(suffix) && word[len(word)-len(suffix):] == suffix
}

func replaceSuffix(word, suffix, replacement string) string {
	return word[:len(word)-len(suffix)] + replacement
}

// Stem reduces word to its Porter stem. word is assumed already
// lower-cased; words of length 2 or less are returned unchanged, matching
// the reference algorithm's guard against over-stemming short words.
func (s *Stemmer) Stem(word string) string {
	if len(word) <= 2 {
		return word
	}

	word = step1a(word)
	word = step1b(word)
	word = step1c(word)
	word = step2(word)
	word = step3(word)
	word = step4(word)
	word = step5a(word)
	word = step5b(word)
	return word
}

func step1a(word string) string {
	switch {
	case hasSuffix(word, "sses"):
		return replaceSuffix(word, "sses", "ss")
	case hasSuffix(word, "ies"):
		return replaceSuffix(word, "ies", "i")
	case hasSuffix(word, "ss"):
		return word
	case hasSuffix(word, "s") && len(word) > 1:
		return word[:len(word)-1]
	}
	return word
}

func step1b(word string) string {
	switch {
	case hasSuffix(word, "eed"):
		stem := replaceSuffix(word, "eed", "")
		if measure(stem) > 0 {
			return stem + "ee"
		}
		return word
	case hasSuffix(word, "ed"):
		stem := replaceSuffix(word, "ed", "")
		if containsVowel(stem) {
			return step1bCleanup(stem)
		}
		return word
	case hasSuffix(word, "ing"):
		stem := replaceSuffix(word, "ing", "")
		if containsVowel(stem) {
			return step1bCleanup(stem)
		}
		return word
	}
	return word
}

func step1bCleanup(stem string) string {
	switch {
	case hasSuffix(stem, "at"), hasSuffix(stem, "bl"), hasSuffix(stem, "iz"):
		return stem + "e"
	case endsDoubleConsonant(stem) && !hasSuffix(stem, "l") && !hasSuffix(stem, "s") && !hasSuffix(stem, "z"):
		return stem[:len(stem)-1]
	case measure(stem) == 1 && endsCVC(stem):
		return stem + "e"
	}
	return stem
}

func step1c(word string) string {
	if hasSuffix(word, "y") && len(word) > 1 {
		stem := word[:len(word)-1]
		if containsVowel(stem) {
			return stem + "i"
		}
	}
	return word
}

var step2Suffixes = []struct{ from, to string }{
	{"ational", "ate"}, {"tional", "tion"}, {"enci", "ence"}, {"anci", "ance"},
	{"izer", "ize"}, {"abli", "able"}, {"alli", "al"}, {"entli", "ent"},
	{"eli", "e"}, {"ousli", "ous"}, {"ization", "ize"}, {"ation", "ate"},
	{"ator", "ate"}, {"alism", "al"}, {"iveness", "ive"}, {"fulness", "ful"},
	{"ousness", "ous"}, {"aliti", "al"}, {"iviti", "ive"}, {"biliti", "ble"},
}

func step2(word string) string {
	for _, suf := range step2Suffixes {
		if hasSuffix(word, suf.from) {
			stem := replaceSuffix(word, suf.from, "")
			if measure(stem) > 0 {
				return stem + suf.to
			}
			return word
		}
	}
	return word
}

var step3Suffixes = []struct{ from, to string }{
	{"icate", "ic"}, {"ative", ""}, {"alize", "al"}, {"iciti", "ic"},
	{"ical", "ic"}, {"ful", ""}, {"ness", ""},
}

func step3(word string) string {
	for _, suf := range step3Suffixes {
		if hasSuffix(word, suf.from) {
			stem := replaceSuffix(word, suf.from, "")
			if measure(stem) > 0 {
				return stem + suf.to
			}
			return word
		}
	}
	return word
}

var step4Suffixes = []string{
	"al", "ance", "ence", "er", "ic", "able", "ible", "ant", "ement", "ment",
	"ent", "ion", "ou", "ism", "ate", "iti", "ous", "ive", "ize",
}

func step4(word string) string {
	for _, suf := range step4Suffixes {
		if !hasSuffix(word, suf) {
			continue
		}
		stem := replaceSuffix(word, suf, "")
		if suf == "ion" {
			if len(stem) > 0 && (stem[len(stem)-1] == 's' || stem[len(stem)-1] == 't') && measure(stem) > 1 {
				return stem
			}
			return word
		}
		if measure(stem) > 1 {
			return stem
		}
		return word
	}
	return word
}

func step5a(word string) string {
	if hasSuffix(word, "e") {
		stem := word[:len(word)-1]
		m := measure(stem)
		if m > 1 {
			return stem
		}
		if m == 1 && !endsCVC(stem) {
			return stem
		}
	}
	return word
}

func step5b(word string) string {
	if measure(word) > 1 && endsDoubleConsonant(word) && hasSuffix(word, "l") {
		return word[:len(word)-1]
	}
	return word
}
