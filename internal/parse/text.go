package parse

import (
	"os"

	"github.com/gcbaptista/segindex/internal/stopwords"
	"github.com/gcbaptista/segindex/internal/tokenizer"
)

// ParseText tokenizes a plain-text or Markdown file verbatim; no structural
// parsing is applied beyond the lexer itself.
func ParseText(path string) ([]string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the index's own directory walk
	if err != nil {
		return nil, err
	}
	lex := tokenizer.New()
	return stopwords.Remove(lex.Tokenize(string(data))), nil
}
