package schema

import (
	"time"

	"gorm.io/gorm"
)

// Import statuses.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// ImportLog records one import run.
type ImportLog struct {
	ID string `gorm:"type:uuid;primaryKey"`

	// Target is the table that received the rows.
	Target string `gorm:"column:table_name;type:varchar(100);not null;index"`

	// FileName is the base name of the imported CSV file.
	FileName string `gorm:"type:varchar(255)"`

	RecordsTotal    int `gorm:"not null;default:0"`
	RecordsImported int `gorm:"not null;default:0"`
	RecordsFailed   int `gorm:"not null;default:0"`
	RecordsSkipped  int `gorm:"not null;default:0"`

	// Status is one of pending, processing, completed, failed.
	Status string `gorm:"type:varchar(20);not null;index"`

	ErrorMessage string `gorm:"type:text"`

	CreatedAt   time.Time
	CompletedAt *time.Time
}

// TableName returns the name of the import log table.
func (ImportLog) TableName() string {
	return "import_logs"
}

// AllModels returns GORM models managed by AutoMigrate.
func AllModels() []any {
	return []any{
		&ImportLog{},
	}
}

// Migrate runs GORM AutoMigrate for the import log.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
