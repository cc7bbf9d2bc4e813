// Package store persists the scholarship catalog and the harvest log.
//
// Three backends share one contract: a JSON file for single-user CLI use,
// SQLite for a local database and PostgreSQL for the served deployment.
// A scholarship is identified by (name, provider, deadline); upserting a
// known identity refreshes its mutable fields instead of adding a row.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jimezsa/scholarcli/internal/models"
)

var ErrNotFound = errors.New("scholarship not found")

const (
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// UpsertResult counts how a batch landed.
type UpsertResult struct {
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
}

type Store interface {
	Upsert(ctx context.Context, records []models.Scholarship) (UpsertResult, error)
	List(ctx context.Context) ([]models.Scholarship, error)
	Get(ctx context.Context, id int) (models.Scholarship, error)
	LogRun(ctx context.Context, run models.RunLog) error
	Close() error
}

type Options struct {
	Driver      string
	Path        string
	DatabaseURL string
}

// Open connects to the backend named by opts.Driver.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Driver)) {
	case "", DriverFile, "json":
		return NewFileStore(opts.Path)
	case DriverSQLite, "sqlite3":
		return OpenSQLite(ctx, opts.Path)
	case DriverPostgres, "postgresql", "pg":
		return OpenPostgres(ctx, opts.DatabaseURL)
	default:
		return nil, fmt.Errorf("unknown store driver %q (expected file, sqlite or postgres)", opts.Driver)
	}
}

// refresh copies the fields a re-scrape is allowed to change.
func refresh(dst *models.Scholarship, src models.Scholarship) {
	dst.Description = src.Description
	dst.Eligibility = src.Eligibility
	dst.Amount = src.Amount
	dst.ApplicationLink = src.ApplicationLink
}

func nullable(value *string) any {
	if value == nil {
		return nil
	}
	return *value
}
