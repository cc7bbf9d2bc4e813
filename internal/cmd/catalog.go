package cmd

import (
	"context"
	"fmt"

	"github.com/jimezsa/scholarcli/internal/catalog"
	"github.com/jimezsa/scholarcli/internal/pipeline"
)

type CatalogCmd struct {
	Diff   CatalogDiffCmd   `cmd:"" help:"Write scholarships from --new missing in --seen (A-B) to JSON."`
	Merge  CatalogMergeCmd  `cmd:"" help:"Merge a scholarships JSON file into a history file."`
	Import CatalogImportCmd `cmd:"" help:"Clean a scholarships JSON file and upsert it into the store."`
	Export CatalogExportCmd `cmd:"" help:"Dump the store to a scholarships JSON file."`
}

type CatalogDiffCmd struct {
	New   string `name:"new" required:"" help:"Path to new scholarships JSON file (A)."`
	Seen  string `name:"seen" required:"" help:"Path to known scholarships JSON file (B). Missing file is treated as empty."`
	Out   string `name:"out" required:"" help:"Output path for unseen scholarships JSON file (C)."`
	Stats bool   `name:"stats" help:"Print comparison stats."`
}

type CatalogMergeCmd struct {
	Seen  string `name:"seen" required:"" help:"Path to history JSON file. Missing file is treated as empty."`
	Input string `name:"input" required:"" help:"Path to scholarships JSON file to merge into history."`
	Out   string `name:"out" required:"" help:"Output path for the merged JSON."`
	Stats bool   `name:"stats" help:"Print merge stats."`
}

type CatalogImportCmd struct {
	Input string `arg:"" help:"Path to scholarships JSON file."`
}

type CatalogExportCmd struct {
	Out string `arg:"" help:"Output path for the JSON file."`
}

func (c *CatalogDiffCmd) Run(ctx *Context) error {
	if pathsEqual(c.Out, c.Seen) {
		return fmt.Errorf("--out path must differ from --seen")
	}
	incoming, err := catalog.Read(c.New)
	if err != nil {
		return fmt.Errorf("read --new: %w", err)
	}
	existing, err := catalog.ReadAllowMissing(c.Seen)
	if err != nil {
		return fmt.Errorf("read --seen: %w", err)
	}

	unseen, stats := catalog.Diff(incoming, existing)
	if err := catalog.Write(c.Out, unseen); err != nil {
		return fmt.Errorf("write --out: %w", err)
	}

	if c.Stats {
		_, err := fmt.Fprintf(
			ctx.Out,
			"total_new=%d total_seen=%d invalid_skipped=%d unseen_emitted=%d\n",
			stats.TotalNew,
			stats.TotalSeen,
			stats.InvalidSkipped(),
			stats.Unseen,
		)
		return err
	}
	return nil
}

func (c *CatalogMergeCmd) Run(ctx *Context) error {
	existing, err := catalog.ReadAllowMissing(c.Seen)
	if err != nil {
		return fmt.Errorf("read --seen: %w", err)
	}
	input, err := catalog.Read(c.Input)
	if err != nil {
		return fmt.Errorf("read --input: %w", err)
	}

	merged, stats := catalog.Merge(existing, input)
	if err := catalog.Write(c.Out, merged); err != nil {
		return fmt.Errorf("write --out: %w", err)
	}

	if c.Stats {
		_, err := fmt.Fprintf(
			ctx.Out,
			"total_seen=%d total_input=%d invalid_skipped=%d added=%d total_out=%d\n",
			stats.TotalSeen,
			stats.TotalInput,
			stats.InvalidSkipped(),
			stats.Added,
			stats.TotalOut,
		)
		return err
	}
	return nil
}

func (c *CatalogImportCmd) Run(ctx *Context) error {
	records, err := catalog.Read(c.Input)
	if err != nil {
		return fmt.Errorf("read %s: %w", c.Input, err)
	}

	result := pipeline.New().Run(records)
	for _, drop := range result.Dropped {
		ctx.Logger.Debug().Str("name", drop.Name).Err(drop.Reason).Msg("record dropped")
	}

	st, err := ctx.OpenStore(context.Background())
	if err != nil {
		return err
	}
	defer st.Close()

	upserted, err := st.Upsert(context.Background(), catalog.Dedupe(result.Kept))
	if err != nil {
		return err
	}
	ctx.UI.Successf("Imported %d new, %d updated, %d dropped", upserted.Inserted, upserted.Updated, len(result.Dropped))
	return nil
}

func (c *CatalogExportCmd) Run(ctx *Context) error {
	records, err := loadCatalog(ctx)
	if err != nil {
		return err
	}
	if err := catalog.Write(c.Out, records); err != nil {
		return err
	}
	ctx.UI.Infof("Wrote %d scholarships to %s", len(records), c.Out)
	return nil
}
