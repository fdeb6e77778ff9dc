package iostore

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velocitia/prospectsdata/pkg/errcode"
)

func TestErrors(t *testing.T) {
	cause := errors.New("disk I/O error")

	tests := []struct {
		msg  string
		err  error
		code gn.ErrorCode
	}{
		{"open", OpenError("p.sqlite", cause), errcode.StoreOpenError},
		{"exec", ExecError("areas", cause), errcode.StoreExecError},
		{"query", QueryError("companies", cause), errcode.StoreQueryError},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			gnErr, ok := v.err.(*gn.Error)
			require.True(t, ok)
			assert.Equal(t, v.code, gnErr.Code)
			assert.Len(t, gnErr.Vars, 1)
			assert.ErrorIs(t, gnErr.Err, cause)
		})
	}
}
