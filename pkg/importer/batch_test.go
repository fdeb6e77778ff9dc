package importer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/velocitia/prospectsdata/pkg/importer"
	"github.com/velocitia/prospectsdata/pkg/schema"
)

func TestNewBatch(t *testing.T) {
	def, _ := schema.Get(schema.Areas)
	recs := []importer.Record{
		{"area_name_en": "Marsa Dubai"},
		{"munc_zip_code": 392.0, "area_name_en": "Al Barsha"},
	}
	b := importer.NewBatch(def, recs)

	assert.Equal(t, []string{"munc_zip_code", "area_name_en"}, b.Columns)
	assert.Equal(t, [][]any{
		{nil, "Marsa Dubai"},
		{392.0, "Al Barsha"},
	}, b.Rows)
	assert.Equal(t, 2, b.Len())
}

func TestDedupe(t *testing.T) {
	b := importer.Batch{
		Columns: []string{"license_no", "type", "name_en"},
		Rows: [][]any{
			{1.0, "developer", "A"},
			{2.0, "developer", "B"},
			{1.0, "contractor", "C"},
			{1.0, "developer", "D"},
			{nil, "developer", "E"},
			{nil, "developer", "F"},
		},
	}
	res := b.Dedupe([]string{"license_no", "type"})
	assert.Equal(t, [][]any{
		{1.0, "developer", "D"},
		{2.0, "developer", "B"},
		{1.0, "contractor", "C"},
		{nil, "developer", "E"},
		{nil, "developer", "F"},
	}, res.Rows)

	same := b.Dedupe([]string{"absent"})
	assert.Equal(t, b.Len(), same.Len())
}
