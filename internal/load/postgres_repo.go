package load

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"libraryetl/internal/borrower"
	"libraryetl/internal/catalog"
)

type Repository interface {
	CreateRun(ctx context.Context, run *Run) error
	UpdateRun(ctx context.Context, run *Run) error
	TruncateAll(ctx context.Context) error
	InsertBooks(ctx context.Context, books []catalog.Book) error
	InsertAuthors(ctx context.Context, authors []catalog.Author) error
	InsertBookAuthors(ctx context.Context, links []catalog.BookAuthorLink) error
	InsertBorrowers(ctx context.Context, borrowers []borrower.Borrower) error
	Counts(ctx context.Context) (Counts, error)
}

type PostgresRepo struct {
	db        *pgxpool.Pool
	batchSize int
}

func NewPostgresRepo(db *pgxpool.Pool, batchSize int) *PostgresRepo {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &PostgresRepo{db: db, batchSize: batchSize}
}

func (r *PostgresRepo) CreateRun(ctx context.Context, run *Run) error {
	const sql = `
		INSERT INTO load_runs (id, csv_dir, status, started_at)
		VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, sql, run.ID, run.CSVDir, run.Status, run.StartedAt)
	if err != nil {
		return fmt.Errorf("create load run: %w", err)
	}
	return nil
}

func (r *PostgresRepo) UpdateRun(ctx context.Context, run *Run) error {
	const sql = `
		UPDATE load_runs SET
			finished_at = $1,
			status = $2,
			books = $3,
			authors = $4,
			book_authors = $5,
			borrowers = $6,
			error = $7
		WHERE id = $8`

	_, err := r.db.Exec(ctx, sql, run.FinishedAt, run.Status, run.Books, run.Authors, run.Links, run.Borrowers, run.Error, run.ID)
	if err != nil {
		return fmt.Errorf("update load run: %w", err)
	}
	return nil
}

// TruncateAll clears the four target tables in one statement so the
// foreign keys between them never see a partial state.
func (r *PostgresRepo) TruncateAll(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `TRUNCATE TABLE book_authors, authors, book, borrower`)
	if err != nil {
		return fmt.Errorf("truncate tables: %w", err)
	}
	return nil
}

func (r *PostgresRepo) InsertBooks(ctx context.Context, books []catalog.Book) error {
	const sql = `INSERT INTO book (isbn, title) VALUES ($1, $2)`
	return r.insertBatched(ctx, "book", len(books), func(batch *pgx.Batch, i int) {
		batch.Queue(sql, books[i].Isbn, books[i].Title)
	})
}

func (r *PostgresRepo) InsertAuthors(ctx context.Context, authors []catalog.Author) error {
	const sql = `INSERT INTO authors (author_id, name) VALUES ($1, $2)`
	return r.insertBatched(ctx, "authors", len(authors), func(batch *pgx.Batch, i int) {
		batch.Queue(sql, authors[i].ID, authors[i].Name)
	})
}

func (r *PostgresRepo) InsertBookAuthors(ctx context.Context, links []catalog.BookAuthorLink) error {
	const sql = `INSERT INTO book_authors (isbn, author_id) VALUES ($1, $2)`
	return r.insertBatched(ctx, "book_authors", len(links), func(batch *pgx.Batch, i int) {
		batch.Queue(sql, links[i].Isbn, links[i].AuthorID)
	})
}

func (r *PostgresRepo) InsertBorrowers(ctx context.Context, borrowers []borrower.Borrower) error {
	const sql = `INSERT INTO borrower (card_id, bname, address, phone, ssn) VALUES ($1, $2, $3, $4, $5)`
	return r.insertBatched(ctx, "borrower", len(borrowers), func(batch *pgx.Batch, i int) {
		b := borrowers[i]
		batch.Queue(sql, b.CardID, b.Bname, b.Address, b.Phone, b.SSN)
	})
}

// insertBatched queues n rows in batches of batchSize and executes each
// batch in one round trip.
func (r *PostgresRepo) insertBatched(ctx context.Context, table string, n int, queue func(batch *pgx.Batch, i int)) error {
	for start := 0; start < n; start += r.batchSize {
		end := min(start+r.batchSize, n)

		batch := &pgx.Batch{}
		for i := start; i < end; i++ {
			queue(batch, i)
		}

		results := r.db.SendBatch(ctx, batch)
		for i := start; i < end; i++ {
			if _, err := results.Exec(); err != nil {
				results.Close()
				return fmt.Errorf("insert into %s (row %d): %w", table, i+1, err)
			}
		}
		if err := results.Close(); err != nil {
			return fmt.Errorf("close %s insert batch: %w", table, err)
		}
	}
	return nil
}

func (r *PostgresRepo) Counts(ctx context.Context) (Counts, error) {
	var c Counts
	for _, q := range []struct {
		table string
		dst   *int
	}{
		{"book", &c.Books},
		{"authors", &c.Authors},
		{"book_authors", &c.Links},
		{"borrower", &c.Borrowers},
	} {
		if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM "+q.table).Scan(q.dst); err != nil {
			return Counts{}, fmt.Errorf("count %s: %w", q.table, err)
		}
	}
	return c, nil
}
