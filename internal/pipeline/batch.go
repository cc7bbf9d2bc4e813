package pipeline

import (
	"context"
	"fmt"

	"github.com/jimezsa/scholarcli/internal/models"
)

const DefaultBatchSize = 50

// Sink persists one batch and reports how many rows were new.
type Sink func(ctx context.Context, batch []models.Scholarship) (inserted, duplicates int, err error)

type Stats struct {
	Inserted   int `json:"inserted"`
	Duplicates int `json:"duplicates"`
	Errors     int `json:"errors"`
}

// Batcher buffers records and hands them to a sink in fixed-size batches.
// It is not safe for concurrent use.
type Batcher struct {
	size  int
	sink  Sink
	buf   []models.Scholarship
	stats Stats
}

func NewBatcher(size int, sink Sink) *Batcher {
	if size <= 0 {
		size = DefaultBatchSize
	}
	return &Batcher{size: size, sink: sink, buf: make([]models.Scholarship, 0, size)}
}

// Add buffers s and flushes once the buffer is full.
func (b *Batcher) Add(ctx context.Context, s models.Scholarship) error {
	b.buf = append(b.buf, s)
	if len(b.buf) < b.size {
		return nil
	}
	return b.Flush(ctx)
}

// Flush sends whatever is buffered. A failed batch is counted as errors and
// discarded.
func (b *Batcher) Flush(ctx context.Context) error {
	if len(b.buf) == 0 {
		return nil
	}
	batch := b.buf
	b.buf = make([]models.Scholarship, 0, b.size)

	inserted, duplicates, err := b.sink(ctx, batch)
	if err != nil {
		b.stats.Errors += len(batch)
		return fmt.Errorf("flush %d records: %w", len(batch), err)
	}
	b.stats.Inserted += inserted
	b.stats.Duplicates += duplicates
	return nil
}

func (b *Batcher) Stats() Stats {
	return b.stats
}
