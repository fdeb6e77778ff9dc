package importer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velocitia/prospectsdata/pkg/importer"
	"github.com/velocitia/prospectsdata/pkg/schema"
)

func TestCompanyCounts(t *testing.T) {
	recs := []importer.Record{
		{"contractor_license_no": 100.0, "contractor_english": "Arabtec"},
		{"contractor_license_no": 200.0, "contractor_english": "ALEC"},
		{"contractor_license_no": 100.0, "contractor_english": "Arabtec LLC"},
		{"contractor_license_no": 0.0, "contractor_english": "Unknown"},
		{"contractor_license_no": -1.0, "contractor_english": "Unknown"},
		{"contractor_license_no": nil, "contractor_english": "Unknown"},
		{"contractor_license_no": 300.0, "contractor_english": ""},
		{"contractor_license_no": 100.0, "contractor_english": "Arabtec"},
	}
	res := importer.CompanyCounts(recs,
		"contractor_license_no", "contractor_english")

	assert.Equal(t, []importer.CompanyDelta{
		{LicenseNo: 100, Name: "Arabtec", Count: 3},
		{LicenseNo: 200, Name: "ALEC", Count: 1},
	}, res)
}

func TestAggregates(t *testing.T) {
	t.Run("contractor projects increment counts", func(t *testing.T) {
		recs := []importer.Record{
			{"contractor_license_no": 100.0, "contractor_english": "Arabtec"},
			{"contractor_license_no": 100.0, "contractor_english": "Arabtec"},
		}
		res := importer.Aggregates(schema.ContractorProjects, recs)
		require.Len(t, res, 1)
		assert.Equal(t, schema.Companies, res[0].Table)
		assert.Equal(t, "project_count", res[0].Counter)
		assert.Equal(t, []string{"license_no", "type"}, res[0].Conflict)
		assert.Equal(t, [][]any{{100.0, "Arabtec", "contractor", 2.0}},
			res[0].Batch.Rows)
	})

	t.Run("consultant projects", func(t *testing.T) {
		recs := []importer.Record{
			{"consultant_license_no": 7.0, "consultant_english": "Atkins"},
		}
		res := importer.Aggregates(schema.ConsultantProjects, recs)
		require.Len(t, res, 1)
		assert.Equal(t, "consultant", res[0].Batch.Rows[0][2])
	})

	t.Run("developers keep counts", func(t *testing.T) {
		recs := []importer.Record{
			{"developer_id": 5.0, "developer_name_en": "Emaar"},
			{"developer_id": 6.0, "developer_name_en": "Nakheel"},
			{"developer_id": 5.0, "developer_name_en": "Emaar Properties"},
			{"developer_id": 7.0},
			{"developer_id": -1.0, "developer_name_en": "No Licence Co"},
			{"developer_id": 0.0, "developer_name_en": "Zero Co"},
		}
		res := importer.Aggregates(schema.Developers, recs)
		require.Len(t, res, 1)
		assert.Empty(t, res[0].Counter)
		assert.Equal(t, []string{"license_no", "name_en", "type"},
			res[0].Batch.Columns)
		assert.Equal(t, [][]any{
			{5.0, "Emaar Properties", "developer"},
			{6.0, "Nakheel", "developer"},
		}, res[0].Batch.Rows)
	})

	t.Run("land registry feeds areas", func(t *testing.T) {
		recs := []importer.Record{
			{"munc_zip_code": 392.0, "area_name_en": "Marsa Dubai"},
			{"munc_zip_code": 392.0, "area_name_en": "Dubai Marina"},
			{"munc_zip_code": 0.0, "area_name_en": "Nowhere"},
			{"area_name_en": "No Zip"},
		}
		res := importer.Aggregates(schema.LandRegistry, recs)
		require.Len(t, res, 1)
		assert.Equal(t, schema.Areas, res[0].Table)
		assert.Equal(t, [][]any{{392.0, "Dubai Marina"}}, res[0].Batch.Rows)
	})

	t.Run("no aggregates", func(t *testing.T) {
		assert.Nil(t, importer.Aggregates(schema.Permits,
			[]importer.Record{{"project_no": 1.0}}))
		assert.Nil(t, importer.Aggregates(schema.ContractorProjects,
			[]importer.Record{{"parcel_id": 1.0}}))
	})
}

func TestShownErrors(t *testing.T) {
	sum := importer.Summary{Errors: []string{"a", "b", "c"}}
	assert.Equal(t, []string{"a", "b", "c"}, sum.ShownErrors())

	sum.Errors = []string{"1", "2", "3", "4", "5", "6", "7"}
	assert.Equal(t,
		[]string{"1", "2", "3", "4", "5", "...and 2 more"}, sum.ShownErrors())

	assert.True(t, importer.Summary{}.Succeeded())
	assert.False(t, importer.Summary{Counters: importer.Counters{Failed: 1}}.Succeeded())
}
