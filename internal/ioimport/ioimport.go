// Package ioimport streams CSV files into a store. It implements
// importer.Importer and importer.Previewer.
package ioimport

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/velocitia/prospectsdata/pkg/importer"
	"github.com/velocitia/prospectsdata/pkg/schema"
	"golang.org/x/sync/errgroup"
)

type pipeline struct {
	store importer.Store
}

// New creates an importer writing to the store. The store may be nil for
// dry runs.
func New(st importer.Store) importer.Importer {
	return &pipeline{store: st}
}

// Import reads the file in chunks of opts.BatchSize rows. Every chunk is
// mapped, written and followed by derived aggregate writes before the
// next chunk is read. Failed batches are recorded in the summary and the
// import goes on. Read errors and cancellation stop the import.
func (p *pipeline) Import(
	ctx context.Context,
	imp *importer.Importing,
	opts importer.Options,
) importer.Summary {
	start := time.Now()
	def := imp.Def
	sum := importer.Summary{
		Table:       def.Table,
		File:        imp.File,
		SkipReasons: make(map[importer.SkipReason]int),
		DryRun:      opts.DryRun || p.store == nil,
	}

	logID := p.startLog(ctx, opts, sum)

	slog.Info("Import started",
		"table", def.Table,
		"file", imp.File,
		"batch_size", opts.BatchSize,
		"dry_run", sum.DryRun,
	)

	m := importer.NewMapper(imp.Plan, opts.Translations, opts.Fallback, opts.Cutoff)

	err := p.run(ctx, imp, m, opts, &sum)
	if err != nil {
		sum.Fatal = true
		sum.Errors = append(sum.Errors, "Import error: "+message(err))
		slog.Error("Import stopped", "table", def.Table, "error", err)
	}
	imp.Counters = sum.Counters
	sum.Duration = time.Since(start)

	p.finishLog(ctx, opts, logID, sum)

	slog.Info("Import finished",
		"table", def.Table,
		"seen", sum.Seen,
		"total", sum.Total,
		"imported", sum.Imported,
		"failed", sum.Failed,
		"skipped", sum.Skipped,
		"duration", sum.Duration,
	)
	return sum
}

func (p *pipeline) run(
	ctx context.Context,
	imp *importer.Importing,
	m *importer.Mapper,
	opts importer.Options,
	sum *importer.Summary,
) error {
	f, err := openCSV(imp.File)
	if err != nil {
		return err
	}
	defer f.close()

	chunks := make(chan []importer.Row)
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(chunks)
		return f.stream(gCtx, opts.BatchSize, chunks)
	})

	g.Go(func() error {
		for rows := range chunks {
			if err := gCtx.Err(); err != nil {
				return err
			}
			p.chunk(gCtx, imp.Def, m, rows, sum)
			imp.Counters = sum.Counters
			if opts.Progress != nil {
				opts.Progress(sum.Counters, opts.TotalRows)
			}
		}
		return nil
	})

	return g.Wait()
}

// chunk maps rows and writes the valid ones as one batch. Cancellation is
// checked by the caller between chunks only.
func (p *pipeline) chunk(
	ctx context.Context,
	def schema.Definition,
	m *importer.Mapper,
	rows []importer.Row,
	sum *importer.Summary,
) {
	recs := make([]importer.Record, 0, len(rows))
	for _, row := range rows {
		sum.Seen++
		rec, reason := m.Map(row)
		if reason != importer.NotSkipped {
			sum.Skipped++
			sum.SkipReasons[reason]++
			continue
		}
		recs = append(recs, rec)
	}
	if len(recs) == 0 {
		return
	}

	sum.Total += len(recs)
	if sum.DryRun {
		sum.Imported += len(recs)
		return
	}

	// A started chunk is written to the end, with its aggregates.
	ctx = context.WithoutCancel(ctx)
	b := importer.NewBatch(def, recs)
	var err error
	if def.Upsertable() {
		err = p.store.Upsert(ctx, def.Table, b, def.ConflictKey)
	} else {
		err = p.store.Insert(ctx, def.Table, b)
	}
	if err != nil {
		sum.Failed += len(recs)
		sum.Errors = append(sum.Errors, "Batch error: "+message(err))
		slog.Error("Batch failed",
			"table", def.Table, "rows", len(recs), "error", err)
	} else {
		sum.Imported += len(recs)
	}

	p.aggregates(ctx, def.Table, recs, sum)
}

// aggregates updates derived tables. Failures do not change counters.
func (p *pipeline) aggregates(
	ctx context.Context,
	table string,
	recs []importer.Record,
	sum *importer.Summary,
) {
	for _, agg := range importer.Aggregates(table, recs) {
		var err error
		if agg.Counter != "" {
			err = p.store.Increment(ctx, agg.Table, agg.Batch, agg.Conflict, agg.Counter)
		} else {
			err = p.store.Upsert(ctx, agg.Table, agg.Batch, agg.Conflict)
		}
		if err != nil {
			slog.Warn("Derived update failed",
				"source", table, "table", agg.Table, "error", err)
			sum.AggregateErrors = append(sum.AggregateErrors,
				fmt.Sprintf("%s: %s", agg.Table, message(err)))
		}
	}
}

func (p *pipeline) startLog(
	ctx context.Context,
	opts importer.Options,
	sum importer.Summary,
) string {
	if opts.Recorder == nil || sum.DryRun {
		return ""
	}
	id, err := opts.Recorder.Start(ctx, sum.Table, sum.File)
	if err != nil {
		slog.Warn("Cannot record import start", "error", err)
		return ""
	}
	return id
}

func (p *pipeline) finishLog(
	ctx context.Context,
	opts importer.Options,
	id string,
	sum importer.Summary,
) {
	if id == "" {
		return
	}
	// the import context may be cancelled already
	ctx = context.WithoutCancel(ctx)
	if err := opts.Recorder.Finish(ctx, id, sum); err != nil {
		slog.Warn("Cannot record import result", "id", id, "error", err)
	}
}
