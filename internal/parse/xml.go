package parse

import (
	"encoding/xml"
	"io"
	"os"
	"strings"

	"github.com/gcbaptista/segindex/internal/stopwords"
	"github.com/gcbaptista/segindex/internal/tokenizer"
)

// ParseXML tokenizes the character data of an XML or XHTML document,
// ignoring element and attribute names.
func ParseXML(path string) ([]string, error) {
	f, err := os.Open(path) // #nosec G304 -- path comes from the index's own directory walk
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := xml.NewDecoder(f)
	dec.Strict = false

	var sb strings.Builder
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if cd, ok := tok.(xml.CharData); ok {
			sb.Write(cd)
			sb.WriteByte(' ')
		}
	}

	lex := tokenizer.New()
	return stopwords.Remove(lex.Tokenize(sb.String())), nil
}
