// Package httpapi exposes the Main Index over HTTP: a single served page
// and a plain-text query endpoint, following original_source's server.rs
// route table adapted to gin.
package httpapi

import (
	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/segindex/services"
)

// maxQueryBodyBytes bounds a single query request body.
const maxQueryBodyBytes = 1 << 16 // 64 KiB

// SetupRoutes registers the search page and query routes on router.
func SetupRoutes(router *gin.Engine, index services.Searcher) {
	api := NewAPI(index)

	router.Use(CORSMiddleware())
	router.Use(RequestSizeLimitMiddleware(maxQueryBodyBytes))

	router.GET("/", api.IndexPageHandler)
	router.POST("/query", api.QueryHandler)
}
