package iodb

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velocitia/prospectsdata/pkg/errcode"
)

func TestErrors(t *testing.T) {
	cause := errors.New("connection refused")

	tests := []struct {
		name string
		err  error
		code gn.ErrorCode
	}{
		{"connection", ConnectionError("localhost", 5432, "prospects",
			"postgres", cause), errcode.DBConnectionError},
		{"not connected", NotConnectedError(), errcode.DBNotConnectedError},
		{"table exists", TableExistsCheckError("areas", cause),
			errcode.DBTableExistsCheckError},
		{"tables", TableCheckError(cause), errcode.DBTableCheckError},
		{"drop", DropTableError("areas", cause), errcode.DBDropTableError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gnErr, ok := tt.err.(*gn.Error)
			require.True(t, ok, "Error should be of type *gn.Error")
			assert.Equal(t, tt.code, gnErr.Code)
			assert.NotEmpty(t, gnErr.Msg)
		})
	}

	err := ConnectionError("localhost", 5432, "prospects", "postgres", cause)
	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.DBConnectionError, gnErr.Code)
	assert.ErrorIs(t, gnErr.Err, cause)
}
