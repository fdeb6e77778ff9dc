package db_test

import (
	"testing"

	"github.com/velocitia/prospectsdata/internal/iodb"
	"github.com/velocitia/prospectsdata/pkg/db"
)

func TestPgxOperatorImplementsInterface(t *testing.T) {
	var _ db.Operator = iodb.NewPgxOperator()
}
