package ioexport

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/velocitia/prospectsdata/pkg/errcode"
)

func ExportError(err error) error {
	msg := "Cannot export developers"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ExportDevelopersError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: %w", fn.Name(), err),
	}
}
