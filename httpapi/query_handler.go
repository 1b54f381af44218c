package httpapi

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/segindex/internal/stopwords"
	"github.com/gcbaptista/segindex/internal/tokenizer"
	"github.com/gcbaptista/segindex/services"
)

// API holds the dependencies shared by the HTTP handlers.
type API struct {
	index services.Searcher
}

// NewAPI creates a new API handler structure.
func NewAPI(index services.Searcher) *API {
	return &API{index: index}
}

// IndexPageHandler serves the single embedded search page.
func (api *API) IndexPageHandler(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexPage)
}

// QueryHandler reads the raw request body as a free-text query, searches
// the index, and writes one "path\tscore" line per result as plain text.
func (api *API) QueryHandler(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.String(http.StatusBadRequest, "Failed to read query: %v", err)
		return
	}

	lex := tokenizer.New()
	tokens := stopwords.Remove(lex.Tokenize(strings.TrimSpace(string(body))))

	results, err := api.index.Search(tokens)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to search for query: %v", err)
		return
	}

	if len(results) == 0 {
		c.String(http.StatusOK, "Zero matches!")
		return
	}

	var sb strings.Builder
	for i, r := range results {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%s\t%f", r.Path, r.Score)
	}
	c.String(http.StatusOK, sb.String())
}
