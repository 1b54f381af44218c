package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/segindex/config"
	"github.com/gcbaptista/segindex/httpapi"
	"github.com/gcbaptista/segindex/internal/analytics"
	"github.com/gcbaptista/segindex/internal/ingest"
	"github.com/gcbaptista/segindex/internal/jobs"
	"github.com/gcbaptista/segindex/internal/logbus"
	"github.com/gcbaptista/segindex/internal/mainindex"
	"github.com/gcbaptista/segindex/internal/parse"
	"github.com/gcbaptista/segindex/internal/stopwords"
	"github.com/gcbaptista/segindex/internal/tokenizer"
	"github.com/gcbaptista/segindex/model"
)

func main() {
	help := flag.Bool("help", false, "Show help message")
	version := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *help {
		usage()
		return
	}
	if *version {
		fmt.Println("segindex v1.0.0")
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	var err error
	switch args[0] {
	case "index":
		err = runIndex(args[1:])
	case "query":
		err = runQuery(args[1:])
	case "serve":
		err = runServe(args[1:])
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		log.Fatalf("%v", err)
	}
}

func usage() {
	fmt.Println("USAGE: indexer <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  index <dir> [index-dir]     Index every supported file under dir")
	fmt.Println("  query <index-dir> <term...> Search the index for term")
	fmt.Println("  serve <index-dir> [port]    Serve a search page over HTTP")
	fmt.Println()
	fmt.Println("  -help                       Show this message")
	fmt.Println("  -version                    Show version information")
}

func runIndex(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("index requires a directory argument")
	}
	dir := args[0]
	indexDir := "./index"
	if len(args) > 1 {
		indexDir = args[1]
	}

	idx, err := mainindex.Open(indexDir, config.DefaultFlushThreshold)
	if err != nil {
		return fmt.Errorf("open index: %w", err)
	}

	bus := logbus.NewStderr()
	defer bus.Close()

	manager := jobs.NewManager(1)
	manager.Start()
	defer manager.Stop()

	jobID := manager.CreateJob(model.JobTypeIngestRun, indexDir, nil)

	fmt.Println("Indexing documents...")
	if err := manager.ExecuteJob(jobID, func(_ context.Context, _ *model.Job) (model.IngestRunStats, error) {
		result, runErr := ingest.Run(config.IngestConfig{
			Path:     dir,
			IndexDir: indexDir,
		}, idx, parse.Default(), bus, func(processed, total int) {
			manager.UpdateJobProgress(jobID, processed, total, "")
		})
		return model.IngestRunStats{
			FilesIndexed: result.FilesIndexed,
			FilesSkipped: result.FilesSkipped,
			FilesFailed:  result.FilesFailed,
			BytesRead:    result.BytesRead,
		}, runErr
	}); err != nil {
		return fmt.Errorf("index: %w", err)
	}

	job := waitForJob(manager, jobID)
	if job.Status == model.JobStatusFailed {
		return fmt.Errorf("index: %s", job.Error)
	}

	stats := analytics.NewService(indexDir + "/analytics/ingest_runs.json")
	stats.RecordIngestRun(*job.Stats)

	fmt.Println("Completed indexing documents...")
	plural := "s"
	if job.Stats.FilesIndexed == 1 {
		plural = ""
	}
	fmt.Printf("Indexed %d file%s\n", job.Stats.FilesIndexed, plural)
	mb := job.Stats.BytesRead / (1024 * 1024)
	kb := (job.Stats.BytesRead / 1024) % 1024
	fmt.Printf("Total files size: %d Mbs %d Kbs\n", mb, kb)
	return nil
}

// waitForJob polls manager until jobID leaves the running state. The ingest
// CLI command runs a single job at a time, so a short poll loop is simpler
// than threading a completion channel through ExecuteJob.
func waitForJob(manager *jobs.Manager, jobID string) *model.Job {
	for {
		job, err := manager.GetJob(jobID)
		if err != nil {
			return &model.Job{Status: model.JobStatusFailed, Error: err.Error()}
		}
		if job.Status == model.JobStatusCompleted || job.Status == model.JobStatusFailed {
			return job
		}
		time.Sleep(20 * time.Millisecond)
	}
}

func runQuery(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("query requires an index directory and a search term")
	}
	indexDir := args[0]
	term := args[1]
	for _, extra := range args[2:] {
		term += " " + extra
	}

	idx, err := mainindex.Open(indexDir, config.DefaultFlushThreshold)
	if err != nil {
		return fmt.Errorf("open index: %w", err)
	}

	lex := tokenizer.New()
	tokens := stopwords.Remove(lex.Tokenize(term))

	results, err := idx.Search(tokens)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}

	if len(results) == 0 {
		fmt.Println("No matches!")
		return nil
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	for _, r := range results {
		fmt.Printf("%s\t%f\n", r.Path, r.Score)
	}
	return nil
}

func runServe(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("serve requires an index directory")
	}
	indexDir := args[0]
	port := 8080
	if len(args) > 1 {
		p, err := strconv.Atoi(args[1])
		if err == nil {
			port = p
		}
	}

	idx, err := mainindex.Open(indexDir, config.DefaultFlushThreshold)
	if err != nil {
		return fmt.Errorf("open index: %w", err)
	}

	router := gin.Default()
	httpapi.SetupRoutes(router, idx)

	srv := &http.Server{
		Addr:           ":" + strconv.Itoa(port),
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   60 * time.Second,
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Printf("Server listening on port %d", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
	return nil
}
