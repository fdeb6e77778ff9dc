// Package importer contains the contracts and the pure parts of the CSV
// import pipeline: the session state machine, mapping of raw rows to
// typed records, batches and derived aggregates.
//
// Reading files and talking to a store happens in internal/ioimport.
package importer

import (
	"context"

	"github.com/velocitia/prospectsdata/pkg/schema"
	"github.com/velocitia/prospectsdata/pkg/translate"
)

// Store is a target relational store. Every call is a single atomic
// operation, it either succeeds as a whole or fails.
type Store interface {
	// Upsert inserts rows or updates the ones that conflict on the key.
	Upsert(ctx context.Context, table string, b Batch, conflict []string) error
	// Insert appends rows.
	Insert(ctx context.Context, table string, b Batch) error
	// Increment upserts rows adding the counter column to the stored
	// value on conflict.
	Increment(
		ctx context.Context,
		table string,
		b Batch,
		conflict []string,
		counter string,
	) error
	// Close releases resources of the store.
	Close() error
}

// Recorder keeps a log of import runs.
type Recorder interface {
	// Start records the beginning of an import and returns its ID.
	Start(ctx context.Context, table, file string) (string, error)
	// Finish records the outcome of an import.
	Finish(ctx context.Context, id string, sum Summary) error
}

// Progress receives counters after every processed chunk. Total is the
// number of data rows in the file or 0 when it is unknown.
type Progress func(c Counters, total int)

// Options configure an import run.
type Options struct {
	// BatchSize is the number of rows read per chunk.
	BatchSize int
	// Translations are curated translations, nil means none.
	Translations *translate.Store
	Fallback     Fallback
	// Cutoff is the earliest kept creation date of permits.
	Cutoff string
	// DryRun skips all store calls.
	DryRun bool
	// TotalRows is the number of data rows if known in advance.
	TotalRows int
	Progress  Progress
	Recorder  Recorder
}

// Importer runs imports and pre-flight scans.
type Importer interface {
	// Import streams the plan's file into the store.
	Import(ctx context.Context, imp *Importing, opts Options) Summary
	// Scan finds Arabic values without curated translation in the
	// translation-enabled columns of the plan. It also returns the number
	// of data rows of the file.
	Scan(ctx context.Context, p Plan, store *translate.Store) ([]string, int, error)
}

// Definition returns the table definition or an error for unknown tables.
func Definition(table string) (schema.Definition, error) {
	def, ok := schema.Get(table)
	if !ok {
		return def, UnknownTableError(table)
	}
	return def, nil
}
