package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jimezsa/scholarcli/internal/catalog"
	"github.com/jimezsa/scholarcli/internal/models"
)

// FileStore keeps the catalog as a JSON array and appends run logs to a
// JSON-lines file next to it.
type FileStore struct {
	mu       sync.Mutex
	path     string
	runsPath string
	now      func() time.Time
}

func NewFileStore(path string) (*FileStore, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("file store: path is required")
	}
	return &FileStore{
		path:     path,
		runsPath: strings.TrimSuffix(path, filepath.Ext(path)) + ".runs.jsonl",
		now:      time.Now,
	}, nil
}

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Upsert(ctx context.Context, records []models.Scholarship) (UpsertResult, error) {
	var result UpsertResult
	if err := ctx.Err(); err != nil {
		return result, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := catalog.ReadAllowMissing(s.path)
	if err != nil {
		return result, err
	}

	index := make(map[string]int, len(existing))
	nextID := 1
	for i, record := range existing {
		if record.ID >= nextID {
			nextID = record.ID + 1
		}
		if key, ok := catalog.Key(record); ok {
			index[key] = i
		}
	}

	stamp := s.now().UTC().Format(time.RFC3339)
	for _, record := range records {
		key, ok := catalog.Key(record)
		if !ok {
			continue
		}
		if pos, found := index[key]; found {
			refresh(&existing[pos], record)
			result.Updated++
			continue
		}
		record.ID = nextID
		nextID++
		if record.CreatedAt == nil {
			record.CreatedAt = &stamp
		}
		index[key] = len(existing)
		existing = append(existing, record)
		result.Inserted++
	}

	if err := catalog.Write(s.path, existing); err != nil {
		return UpsertResult{}, err
	}
	return result, nil
}

func (s *FileStore) List(ctx context.Context) ([]models.Scholarship, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := catalog.ReadAllowMissing(s.path)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records, nil
}

func (s *FileStore) Get(ctx context.Context, id int) (models.Scholarship, error) {
	records, err := s.List(ctx)
	if err != nil {
		return models.Scholarship{}, err
	}
	for _, record := range records {
		if record.ID == id {
			return record, nil
		}
	}
	return models.Scholarship{}, ErrNotFound
}

func (s *FileStore) LogRun(ctx context.Context, run models.RunLog) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return appendJSONLine(s.runsPath, run)
}

// runs returns every logged harvest, oldest first.
func (s *FileStore) runs() ([]models.RunLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.runsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var runs []models.RunLog
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		var run models.RunLog
		if err := json.Unmarshal([]byte(line), &run); err != nil {
			return nil, fmt.Errorf("parse %s: %w", s.runsPath, err)
		}
		runs = append(runs, run)
	}
	return runs, nil
}

func (s *FileStore) Close() error { return nil }

func appendJSONLine(path string, value any) error {
	line, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(append(line, '\n')); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
