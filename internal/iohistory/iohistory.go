// Package iohistory records import runs in the import_logs table.
package iohistory

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/velocitia/prospectsdata/pkg/importer"
	"github.com/velocitia/prospectsdata/pkg/schema"
	"gorm.io/gorm"
)

type recorder struct {
	db *gorm.DB
}

// New creates an import recorder on a GORM handle.
func New(db *gorm.DB) importer.Recorder {
	return &recorder{db: db}
}

// Start inserts a log entry in processing state.
func (r *recorder) Start(ctx context.Context, table, file string) (string, error) {
	entry := schema.ImportLog{
		ID:        uuid.NewString(),
		Target:    table,
		FileName:  filepath.Base(file),
		Status:    schema.StatusProcessing,
		CreatedAt: time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return "", HistoryError(err)
	}
	return entry.ID, nil
}

// Finish stores counters and the final status. Imports that stopped
// before the end of the file are failed, the rest are completed.
func (r *recorder) Finish(ctx context.Context, id string, sum importer.Summary) error {
	status := schema.StatusCompleted
	if sum.Fatal {
		status = schema.StatusFailed
	}
	now := time.Now()

	res := r.db.WithContext(ctx).
		Model(&schema.ImportLog{ID: id}).
		Updates(map[string]any{
			"records_total":    sum.Total,
			"records_imported": sum.Imported,
			"records_failed":   sum.Failed,
			"records_skipped":  sum.Skipped,
			"status":           status,
			"error_message":    strings.Join(sum.ShownErrors(), "\n"),
			"completed_at":     &now,
		})
	if res.Error != nil {
		return HistoryError(res.Error)
	}
	return nil
}
