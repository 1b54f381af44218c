package parse

import (
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/gcbaptista/segindex/internal/stopwords"
	"github.com/gcbaptista/segindex/internal/tokenizer"
)

// ParseHTML extracts the visible text of an HTML document's body and
// tokenizes it. Script and style element contents are skipped.
func ParseHTML(path string) ([]string, error) {
	f, err := os.Open(path) // #nosec G304 -- path comes from the index's own directory walk
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := html.Parse(f)
	if err != nil {
		return nil, err
	}

	var findBody func(n *html.Node) *html.Node
	findBody = func(n *html.Node) *html.Node {
		if n.Type == html.ElementNode && n.Data == "body" {
			return n
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if b := findBody(c); b != nil {
				return b
			}
		}
		return nil
	}
	root := doc
	if body := findBody(doc); body != nil {
		root = body
	}

	var sb strings.Builder
	extractText(root, &sb)

	lex := tokenizer.New()
	return stopwords.Remove(lex.Tokenize(sb.String())), nil
}

func extractText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
		return
	}
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		sb.WriteByte(' ')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		extractText(c, sb)
	}
}
