package iotranslate

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/velocitia/prospectsdata/pkg/errcode"
)

func DecodeError(location string, err error) error {
	msg := "Translations at <em>%s</em> are not a JSON object of names"
	vars := []any{location}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.TranslationsDecodeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot decode %s: %w", fn.Name(), location, err),
	}
}
