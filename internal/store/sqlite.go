package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/jimezsa/scholarcli/internal/catalog"
	"github.com/jimezsa/scholarcli/internal/models"
)

type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at path and applies the schema.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite store: path is required")
	}
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite ping failed: %w", err)
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite migrate: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteColumns = `id, name, description, provider, eligibility, amount, currency, deadline,
    application_link, country, degree_level, subject, is_featured, source_name, source_url, created_at`

func (s *SQLiteStore) Upsert(ctx context.Context, records []models.Scholarship) (UpsertResult, error) {
	var result UpsertResult
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return result, err
	}
	defer tx.Rollback()

	for _, r := range records {
		key, ok := catalog.Key(r)
		if !ok {
			continue
		}
		provider := models.Deref(r.Provider)
		deadline := models.Deref(r.Deadline)

		var id int
		err := tx.QueryRowContext(ctx, `SELECT id FROM scholarships WHERE identity_key = ?`, key).Scan(&id)
		switch {
		case err == nil:
			if _, err := tx.ExecContext(ctx,
				`UPDATE scholarships
				 SET description = ?, eligibility = ?, amount = ?, application_link = ?,
				     updated_at = CURRENT_TIMESTAMP
				 WHERE id = ?`,
				nullable(r.Description), nullable(r.Eligibility), nullable(r.Amount), nullable(r.ApplicationLink), id,
			); err != nil {
				return UpsertResult{}, fmt.Errorf("update %q: %w", r.Name, err)
			}
			result.Updated++
		case errors.Is(err, sql.ErrNoRows):
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO scholarships (name, description, provider, eligibility, amount, currency,
				     deadline, application_link, country, degree_level, subject, is_featured,
				     source_name, source_url, identity_key)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				r.Name, nullable(r.Description), provider, nullable(r.Eligibility), nullable(r.Amount),
				nullable(r.Currency), deadline, nullable(r.ApplicationLink), r.Country, r.DegreeLevel,
				r.Subject, r.IsFeatured, nullable(r.SourceName), nullable(r.SourceURL), key,
			); err != nil {
				return UpsertResult{}, fmt.Errorf("insert %q: %w", r.Name, err)
			}
			result.Inserted++
		default:
			return UpsertResult{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return UpsertResult{}, err
	}
	return result, nil
}

func (s *SQLiteStore) List(ctx context.Context) ([]models.Scholarship, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+sqliteColumns+` FROM scholarships ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.Scholarship{}
	for rows.Next() {
		record, err := scanSQLite(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (s *SQLiteStore) Get(ctx context.Context, id int) (models.Scholarship, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+sqliteColumns+` FROM scholarships WHERE id = ?`, id)
	record, err := scanSQLite(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Scholarship{}, ErrNotFound
	}
	return record, err
}

func (s *SQLiteStore) LogRun(ctx context.Context, run models.RunLog) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO scraper_logs (source_name, items_scraped, items_inserted, items_duplicates,
		     errors, started_at, completed_at, status)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.SourceName, run.ItemsScraped, run.Inserted, run.Duplicates,
		run.Errors, run.StartedAt.UTC(), run.CompletedAt.UTC(), run.Status,
	)
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSQLite(row rowScanner) (models.Scholarship, error) {
	var (
		r                        models.Scholarship
		provider, deadline       string
		description, eligibility sql.NullString
		amount, currency, link   sql.NullString
		sourceName, sourceURL    sql.NullString
		createdAt                sql.NullString
	)
	if err := row.Scan(&r.ID, &r.Name, &description, &provider, &eligibility, &amount, &currency,
		&deadline, &link, &r.Country, &r.DegreeLevel, &r.Subject, &r.IsFeatured,
		&sourceName, &sourceURL, &createdAt); err != nil {
		return r, err
	}
	r.Description = fromNull(description)
	r.Provider = models.StringPtr(provider)
	r.Eligibility = fromNull(eligibility)
	r.Amount = fromNull(amount)
	r.Currency = fromNull(currency)
	r.Deadline = models.StringPtr(deadline)
	r.ApplicationLink = fromNull(link)
	r.SourceName = fromNull(sourceName)
	r.SourceURL = fromNull(sourceURL)
	r.CreatedAt = fromNull(createdAt)
	return r, nil
}

func fromNull(value sql.NullString) *string {
	if !value.Valid {
		return nil
	}
	return models.StringPtr(value.String)
}
