package load

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"libraryetl/internal/output"
)

// Service orchestrates one bulk load: record the run, truncate the
// target tables, then load the four CSVs in referential order
// book → authors → book_authors → borrower. A missing input file is a
// logged skip; any database error fails the run.
type Service struct {
	repo   Repository
	csvDir string
	log    *slog.Logger
}

// NewService returns a Service loading from csvDir. A nil logger
// discards log output.
func NewService(repo Repository, csvDir string, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{repo: repo, csvDir: csvDir, log: log}
}

// Run executes the load and returns the finished run record.
func (s *Service) Run(ctx context.Context) (run *Run, err error) {
	run = &Run{
		ID:        uuid.NewString(),
		StartedAt: time.Now(),
		Status:    StatusRunning,
		CSVDir:    s.csvDir,
	}
	if err = s.repo.CreateRun(ctx, run); err != nil {
		return run, err
	}

	defer func() {
		now := time.Now()
		run.FinishedAt = &now
		if err != nil && run.Error == "" {
			run.Error = err.Error()
		}
		if run.Error != "" {
			run.Status = StatusFailed
		} else {
			run.Status = StatusCompleted
		}
		if updateErr := s.repo.UpdateRun(ctx, run); updateErr != nil {
			s.log.Error("failed to update load run", "run_id", run.ID, "error", updateErr)
		}
	}()

	if err = s.repo.TruncateAll(ctx); err != nil {
		return run, err
	}
	s.log.Info("target tables truncated")

	if run.Books, err = loadTable(ctx, s, output.BookFile, readBookCSV, s.repo.InsertBooks); err != nil {
		return run, err
	}
	if run.Authors, err = loadTable(ctx, s, output.AuthorsFile, readAuthorsCSV, s.repo.InsertAuthors); err != nil {
		return run, err
	}
	if run.Links, err = loadTable(ctx, s, output.BookAuthorsFile, readBookAuthorsCSV, s.repo.InsertBookAuthors); err != nil {
		return run, err
	}
	if run.Borrowers, err = loadTable(ctx, s, output.BorrowerFile, readBorrowerCSV, s.repo.InsertBorrowers); err != nil {
		return run, err
	}

	return run, nil
}

// loadTable reads one CSV and inserts its rows. A missing file loads
// zero rows rather than failing, so partial output directories remain
// loadable.
func loadTable[T any](ctx context.Context, s *Service, name string, read func(string) ([]T, error), insert func(context.Context, []T) error) (int, error) {
	path := filepath.Join(s.csvDir, name)
	rows, err := read(path)
	if errors.Is(err, os.ErrNotExist) {
		s.log.Warn("input file not found, skipping table", "file", path)
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if err := insert(ctx, rows); err != nil {
		return 0, fmt.Errorf("load %s: %w", name, err)
	}
	s.log.Info("table loaded", "file", name, "rows", len(rows))
	return len(rows), nil
}
