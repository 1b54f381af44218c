package parse

import (
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/gcbaptista/segindex/internal/stopwords"
	"github.com/gcbaptista/segindex/internal/tokenizer"
)

// ParsePDF extracts the plain text of every page and tokenizes it. Pages
// that fail to extract are skipped rather than failing the whole document.
func ParsePDF(path string) ([]string, error) {
	f, err := os.Open(path) // #nosec G304 -- path comes from the index's own directory walk
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	reader, err := pdf.NewReader(f, info.Size())
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteByte(' ')
	}

	lex := tokenizer.New()
	return stopwords.Remove(lex.Tokenize(sb.String())), nil
}
