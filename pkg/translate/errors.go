package translate

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/velocitia/prospectsdata/pkg/errcode"
)

// LoadError is returned when curated translations cannot be fetched.
func LoadError(location string, err error) error {
	msg := "Cannot load translations from <em>%s</em>"
	vars := []any{location}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.TranslationsLoadError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot load translations: %w",
			fn.Name(), err),
	}
}
