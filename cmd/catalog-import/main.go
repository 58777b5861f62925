// Command catalog-import loads activity templates from a CSV file into the
// catalog. The file is validated completely before anything is written; a
// single malformed row aborts the import.
//
// Flags:
//
//	--file      path to the CSV file (required)
//	--dry-run   parse and validate without writing to DB
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/voyagewise-backend/internal/adapter/postgres"
	catalogrepo "github.com/heartmarshall/voyagewise-backend/internal/adapter/postgres/catalog"
	"github.com/heartmarshall/voyagewise-backend/internal/app"
	"github.com/heartmarshall/voyagewise-backend/internal/service/catalog/csvimport"
	"github.com/heartmarshall/voyagewise-backend/internal/config"
	"github.com/heartmarshall/voyagewise-backend/internal/service/catalog"
)

func main() {
	fileFlag := flag.String("file", "", "path to the catalog CSV file")
	dryRunFlag := flag.Bool("dry-run", false, "parse and validate without writing to DB")
	flag.Parse()

	if *fileFlag == "" {
		log.Fatal("--file is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	entries, err := csvimport.ParseFile(*fileFlag)
	if err != nil {
		logger.Error("parse catalog file", slog.String("file", *fileFlag), slog.String("error", err.Error()))
		os.Exit(1)
	}

	if *dryRunFlag {
		logger.Info("dry run: file is valid", slog.String("file", *fileFlag), slog.Int("rows", len(entries)))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := catalog.NewService(logger, catalogrepo.New(pool), postgres.NewTxManager(pool), cfg.Catalog.MaxUploadRows)

	imported, err := svc.IngestEntries(ctx, entries)
	if err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("import completed", slog.String("file", *fileFlag), slog.Int("imported", imported))
}
