package importer

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/gnames/gn"
	"github.com/velocitia/prospectsdata/pkg/errcode"
)

// StageError is returned for an operation that is not allowed in the
// current stage.
func StageError(current, expected StageName) error {
	msg := "Cannot do this in <em>%s</em> stage, expected <em>%s</em>"
	vars := []any{current, expected}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ImportStageError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: stage %s, expected %s",
			fn.Name(), current, expected),
	}
}

// UnknownTableError is returned for tables absent from the registry.
func UnknownTableError(table string) error {
	msg := "Unknown table <em>%s</em>"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SchemaUnknownTableError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: unknown table %s", fn.Name(), table),
	}
}

// MappingError is returned for invalid mapping edits.
func MappingError(table, column, reason string) error {
	msg := "Cannot change <em>%s.%s</em>: %s"
	vars := []any{table, column, reason}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ImportMappingError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: mapping %s.%s: %s",
			fn.Name(), table, column, reason),
	}
}

// MissingRequiredError is returned when an import starts without all
// required columns mapped.
func MissingRequiredError(table string, cols []string) error {
	msg := "Required columns of <em>%s</em> are not mapped: <em>%s</em>"
	list := strings.Join(cols, ", ")
	vars := []any{table, list}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ImportMissingRequiredError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: %s misses required columns %s",
			fn.Name(), table, list),
	}
}
