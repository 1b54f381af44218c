package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/segindex/internal/mainindex"
	"github.com/gcbaptista/segindex/internal/tokenizer"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *mainindex.Index) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	idx, err := mainindex.Open(t.TempDir(), 100)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	router := gin.New()
	SetupRoutes(router, idx)
	return router, idx
}

func TestIndexPageHandler_ServesEmbeddedPage(t *testing.T) {
	router, _ := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Type a query to search") {
		t.Errorf("expected page body to contain the search prompt, got %q", rec.Body.String())
	}
}

func TestQueryHandler_ZeroMatchesOnEmptyIndex(t *testing.T) {
	router, _ := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/query", strings.NewReader("apples"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "Zero matches!" {
		t.Errorf("expected 'Zero matches!', got %q", rec.Body.String())
	}
}

func TestQueryHandler_ReturnsMatchingDocuments(t *testing.T) {
	router, idx := setupTestRouter(t)

	lex := tokenizer.New()
	if err := idx.AddDocument("/docs/a.txt", lex.Tokenize("apple banana")); err != nil {
		t.Fatalf("AddDocument: %v", err)
	}
	if err := idx.AddDocument("/docs/b.txt", lex.Tokenize("cherry date")); err != nil {
		t.Fatalf("AddDocument: %v", err)
	}
	if err := idx.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/query", strings.NewReader("apple"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "/docs/a.txt") {
		t.Errorf("expected result to mention /docs/a.txt, got %q", rec.Body.String())
	}
}

func TestCORSMiddleware_HandlesPreflight(t *testing.T) {
	router, _ := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/query", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Errorf("expected CORS header, got %q", rec.Header().Get("Access-Control-Allow-Origin"))
	}
}
