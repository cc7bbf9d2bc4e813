package store

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/jimezsa/scholarcli/internal/models"
)

// Inbox appends contact form submissions to a JSON-lines file.
type Inbox struct {
	mu   sync.Mutex
	path string
}

func NewInbox(path string) (*Inbox, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("inbox: path is required")
	}
	return &Inbox{path: path}, nil
}

func (b *Inbox) Save(ctx context.Context, msg models.ContactMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return appendJSONLine(b.path, msg)
}
