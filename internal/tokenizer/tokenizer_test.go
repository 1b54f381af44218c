package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLexer_SplitsDigitsLettersAndPunctuationIntoSeparateTokens(t *testing.T) {
	l := New()
	tokens := l.Tokenize("item123 test!")
	assert.Equal(t, []string{"item", "123", "test", "!"}, tokens)
}

func TestLexer_LowercasesBeforeStemming(t *testing.T) {
	l := New()
	tokens := l.Tokenize("RUNNING")
	assert.Equal(t, []string{"run"}, tokens)
}

func TestLexer_WhitespaceIsDiscarded(t *testing.T) {
	l := New()
	tokens := l.Tokenize("  hello   world  ")
	assert.Equal(t, []string{"hello", "world"}, tokens)
}

func TestLexer_EmptyInputYieldsNoTokens(t *testing.T) {
	l := New()
	assert.Empty(t, l.Tokenize(""))
}

func TestLexer_DigitRunsPassThroughUnstemmed(t *testing.T) {
	l := New()
	tokens := l.Tokenize("12345 67890")
	assert.Equal(t, []string{"12345", "67890"}, tokens)
}

func TestLexer_SameInstanceReusedAcrossCallsIsStateless(t *testing.T) {
	l := New()
	first := l.Tokenize("caresses")
	second := l.Tokenize("caresses")
	assert.Equal(t, first, second)
}

func TestStemmer_ClassicPorterExamples(t *testing.T) {
	s := NewStemmer()
	cases := map[string]string{
		"caresses":    "caress",
		"ponies":      "poni",
		"caress":      "caress",
		"cats":        "cat",
		"feed":        "feed",
		"agreed":      "agree",
		"plastered":   "plaster",
		"bled":        "bled",
		"motoring":    "motor",
		"sing":        "sing",
		"happy":       "happi",
		"sky":         "sky",
		"conflated":   "conflat",
		"troubled":    "troubl",
		"sized":       "size",
		"hopping":     "hop",
		"tanned":      "tan",
		"falling":     "fall",
		"hissing":     "hiss",
		"fizzed":      "fizz",
		"failing":     "fail",
		"filing":      "file",
		"relational":  "relate",
		"conditional": "condition",
		"rational":    "rational",
		"triplicate":  "triplic",
		"formative":   "form",
		"formalize":   "formal",
		"electrical":  "electr",
		"hopefulness": "hope",
		"goodness":    "good",
		"adjustable":  "adjust",
		"revival":     "reviv",
		"allowance":   "allow",
		"inference":   "infer",
		"adoption":    "adopt",
		"activate":    "activ",
		"probate":     "probat",
		"rate":        "rate",
		"cease":       "ceas",
	}
	for in, want := range cases {
		assert.Equal(t, want, s.Stem(in), "stem(%q)", in)
	}
}

func TestStemmer_ShortWordsAreUnchanged(t *testing.T) {
	s := NewStemmer()
	assert.Equal(t, "ox", s.Stem("ox"))
	assert.Equal(t, "a", s.Stem("a"))
}
