package ioimport

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/velocitia/prospectsdata/pkg/errcode"
)

func OpenFileError(path string, err error) error {
	msg := "Cannot open <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ImportOpenFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot open %s: %w", fn.Name(), path, err),
	}
}

func ParseError(path string, err error) error {
	msg := "Cannot parse CSV file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ImportParseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot parse %s: %w", fn.Name(), path, err),
	}
}

func CancelledError(table string) error {
	msg := "Import into <em>%s</em> was cancelled, nothing was written"
	vars := []any{table}
	return &gn.Error{
		Code: errcode.ImportCancelledError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("import into %s cancelled by user", table),
	}
}

func MappingFileError(path string, err error) error {
	msg := "Mapping file <em>%s</em> is invalid"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ImportMappingFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: mapping file %s: %w", fn.Name(), path, err),
	}
}

// message returns the underlying cause of an error without the
// location prefix added by error constructors.
func message(err error) string {
	var gnErr *gn.Error
	if errors.As(err, &gnErr) && gnErr.Err != nil {
		if inner := errors.Unwrap(gnErr.Err); inner != nil {
			return inner.Error()
		}
		return gnErr.Err.Error()
	}
	return err.Error()
}

// FatalError reports an import that stopped before the end of the file.
func FatalError(table string, errs []string) error {
	msg := "Import into <em>%s</em> stopped before the end of the file"
	vars := []any{table}
	cause := "unknown error"
	if len(errs) > 0 {
		cause = errs[len(errs)-1]
	}
	return &gn.Error{
		Code: errcode.ImportFatalError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("import into %s: %s", table, cause),
	}
}
