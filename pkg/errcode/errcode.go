package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Database errors
	DBConnectionError
	DBTableCheckError
	DBNotConnectedError
	DBTableExistsCheckError
	DBDropTableError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError
	SchemaUnknownTableError

	// Store errors
	StoreOpenError
	StoreExecError
	StoreQueryError

	// Translation errors
	TranslationsLoadError
	TranslationsDecodeError

	// Import errors
	ImportOpenFileError
	ImportParseError
	ImportStageError
	ImportMappingError
	ImportMissingRequiredError
	ImportCancelledError
	ImportMappingFileError
	ImportHistoryError
	ImportFatalError

	// Export errors
	ExportDevelopersError
)
