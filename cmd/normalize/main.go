package main

import (
	"flag"
	"log"

	"libraryetl/internal/borrower"
	"libraryetl/internal/catalog"
	"libraryetl/internal/config"
	"libraryetl/internal/logging"
	"libraryetl/internal/output"
	"libraryetl/internal/source"
)

func main() {
	var (
		configPath    = flag.String("config", "", "Path to YAML configuration file")
		booksPath     = flag.String("books", "", "Path to the tab-separated book catalog")
		borrowersPath = flag.String("borrowers", "", "Path to the borrower roster CSV")
		outDir        = flag.String("outdir", "", "Directory for the normalized CSV files")
		logLevel      = flag.String("log-level", "", "Log level: debug, info, warn, error")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
	}
	if *booksPath != "" {
		cfg.Sources.Books = *booksPath
	}
	if *borrowersPath != "" {
		cfg.Sources.Borrowers = *borrowersPath
	}
	if *outDir != "" {
		cfg.Output.Dir = *outDir
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
	if cfg.Sources.Books == "" || cfg.Sources.Borrowers == "" {
		log.Fatal("book and borrower sources are required (flags --books/--borrowers or config)")
	}

	logger := logging.New(cfg.Logging.Level)

	bookRows, err := source.ReadBooks(cfg.Sources.Books)
	if err != nil {
		log.Fatalf("read book source: %v", err)
	}
	borrowerRows, err := source.ReadBorrowers(cfg.Sources.Borrowers)
	if err != nil {
		log.Fatalf("read borrower source: %v", err)
	}

	tables := catalog.NewBuilder(logger).Build(bookRows)
	borrowers := borrower.NewBuilder(logger).Build(borrowerRows)

	writer, err := output.New(cfg.Output.Dir)
	if err != nil {
		log.Fatalf("open output directory: %v", err)
	}
	if err := writer.WriteAll(tables, borrowers); err != nil {
		log.Fatalf("write tables: %v", err)
	}

	log.Printf("Wrote %d books, %d authors, %d links, %d borrowers to %s",
		len(tables.Books), len(tables.Authors), len(tables.Links), len(borrowers), writer.Dir)
}
