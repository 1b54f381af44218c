package parse

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/gcbaptista/segindex/internal/stopwords"
	"github.com/gcbaptista/segindex/internal/tokenizer"
)

// ParseCSV tokenizes every field of every record, in file order.
func ParseCSV(path string) ([]string, error) {
	f, err := os.Open(path) // #nosec G304 -- path comes from the index's own directory walk
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var sb strings.Builder
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		for _, field := range record {
			sb.WriteString(field)
			sb.WriteByte(' ')
		}
	}

	lex := tokenizer.New()
	return stopwords.Remove(lex.Tokenize(sb.String())), nil
}
