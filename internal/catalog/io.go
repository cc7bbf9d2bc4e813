package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jimezsa/scholarcli/internal/models"
)

// Read reads a JSON array of scholarships from path.
func Read(path string) ([]models.Scholarship, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return []models.Scholarship{}, nil
	}

	var records []models.Scholarship
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if records == nil {
		return []models.Scholarship{}, nil
	}
	return records, nil
}

// ReadAllowMissing treats a missing file as an empty catalog.
func ReadAllowMissing(path string) ([]models.Scholarship, error) {
	records, err := Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []models.Scholarship{}, nil
		}
		return nil, err
	}
	return records, nil
}

// Write writes records as pretty JSON, replacing the file atomically.
func Write(path string, records []models.Scholarship) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("path is required")
	}
	if records == nil {
		records = []models.Scholarship{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
