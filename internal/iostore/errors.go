package iostore

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/velocitia/prospectsdata/pkg/errcode"
)

func OpenError(location string, err error) error {
	msg := "Cannot open store <em>%s</em>"
	vars := []any{location}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StoreOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot open store: %w", fn.Name(), err),
	}
}

func ExecError(table string, err error) error {
	msg := "Cannot write to table <em>%s</em>"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StoreExecError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: write to %s: %w", fn.Name(), table, err),
	}
}

func QueryError(table string, err error) error {
	msg := "Cannot read table <em>%s</em>"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StoreQueryError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: read %s: %w", fn.Name(), table, err),
	}
}
