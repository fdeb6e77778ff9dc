package iohistory

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/velocitia/prospectsdata/pkg/errcode"
)

// HistoryError wraps a failed write to the import_logs table. Recorders
// return it from Start and Finish; the import itself goes on.
func HistoryError(err error) error {
	msg := "Cannot update the import log"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ImportHistoryError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: import log: %w", fn.Name(), err),
	}
}
