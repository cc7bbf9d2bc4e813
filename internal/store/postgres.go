package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jimezsa/scholarcli/internal/catalog"
	"github.com/jimezsa/scholarcli/internal/models"
)

// querier is the subset of *pgxpool.Pool the store needs.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresStore struct {
	db    querier
	close func()
}

// OpenPostgres creates and verifies a pgxpool connection pool, then applies
// the schema.
func OpenPostgres(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("postgres store: database url is required")
	}
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping failed: %w", err)
	}
	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres migrate: %w", err)
	}
	return &PostgresStore{db: pool, close: pool.Close}, nil
}

const upsertSQL = `
INSERT INTO scholarships (name, description, provider, eligibility, amount, currency, deadline,
    application_link, country, degree_level, subject, is_featured, source_name, source_url, identity_key)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
ON CONFLICT ON CONSTRAINT scholarships_identity DO UPDATE SET
    description = EXCLUDED.description,
    eligibility = EXCLUDED.eligibility,
    amount = EXCLUDED.amount,
    application_link = EXCLUDED.application_link,
    updated_at = CURRENT_TIMESTAMP
RETURNING (xmax = 0) AS inserted`

const pgColumns = `id, name, description, provider, eligibility, amount, currency,
    to_char(deadline, 'YYYY-MM-DD'), application_link, country, degree_level, subject,
    is_featured, source_name, source_url, to_char(created_at, 'YYYY-MM-DD"T"HH24:MI:SS')`

// Upsert writes records one statement at a time; xmax = 0 marks a fresh
// insert.
func (s *PostgresStore) Upsert(ctx context.Context, records []models.Scholarship) (UpsertResult, error) {
	var result UpsertResult
	for _, r := range records {
		key, ok := catalog.Key(r)
		if !ok {
			continue
		}
		var inserted bool
		err := s.db.QueryRow(ctx, upsertSQL,
			r.Name, r.Description, r.Provider, r.Eligibility, r.Amount, r.Currency, pgDate(r.Deadline),
			r.ApplicationLink, r.Country, r.DegreeLevel, r.Subject, r.IsFeatured, r.SourceName, r.SourceURL,
			key,
		).Scan(&inserted)
		if err != nil {
			return result, fmt.Errorf("upsert %q: %w", r.Name, err)
		}
		if inserted {
			result.Inserted++
		} else {
			result.Updated++
		}
	}
	return result, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]models.Scholarship, error) {
	rows, err := s.db.Query(ctx, `SELECT `+pgColumns+` FROM scholarships ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query scholarships: %w", err)
	}
	defer rows.Close()

	records := []models.Scholarship{}
	for rows.Next() {
		record, err := scanPostgres(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (s *PostgresStore) Get(ctx context.Context, id int) (models.Scholarship, error) {
	record, err := scanPostgres(s.db.QueryRow(ctx, `SELECT `+pgColumns+` FROM scholarships WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Scholarship{}, ErrNotFound
	}
	return record, err
}

func (s *PostgresStore) LogRun(ctx context.Context, run models.RunLog) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO scraper_logs (source_name, items_scraped, items_inserted, items_duplicates,
		     errors, started_at, completed_at, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		run.SourceName, run.ItemsScraped, run.Inserted, run.Duplicates,
		run.Errors, run.StartedAt.UTC(), run.CompletedAt.UTC(), run.Status,
	)
	if err != nil {
		return fmt.Errorf("insert scraper log: %w", err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	if s.close != nil {
		s.close()
	}
	return nil
}

func scanPostgres(row pgx.Row) (models.Scholarship, error) {
	var r models.Scholarship
	err := row.Scan(&r.ID, &r.Name, &r.Description, &r.Provider, &r.Eligibility, &r.Amount, &r.Currency,
		&r.Deadline, &r.ApplicationLink, &r.Country, &r.DegreeLevel, &r.Subject,
		&r.IsFeatured, &r.SourceName, &r.SourceURL, &r.CreatedAt)
	return r, err
}

// pgDate turns a YYYY-MM-DD deadline into a value pgx encodes as DATE.
func pgDate(value *string) any {
	if value == nil {
		return nil
	}
	ts, err := time.Parse("2006-01-02", *value)
	if err != nil {
		return nil
	}
	return ts
}
