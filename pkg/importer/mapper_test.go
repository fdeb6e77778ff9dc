package importer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/velocitia/prospectsdata/pkg/importer"
	"github.com/velocitia/prospectsdata/pkg/schema"
	"github.com/velocitia/prospectsdata/pkg/translate"
)

func permitsPlan() importer.Plan {
	def, _ := schema.Get(schema.Permits)
	return importer.Plan{
		Def: def,
		Columns: importer.Columns{
			"project_no":            "ProjectNo",
			"parcel_id":             "Parcel",
			"project_creation_date": "Created",
			"contractor_english":    "Contractor",
			"contractor_license_no": "ContractorLicense",
		},
		Translate: []string{"contractor_english"},
	}
}

func TestMapperCutoff(t *testing.T) {
	m := importer.NewMapper(permitsPlan(), nil, importer.KeepArabic, "")

	tests := []struct {
		msg     string
		created string
		skip    importer.SkipReason
	}{
		{"before cutoff", "2020-12-31", importer.SkipCutoff},
		{"day first before cutoff", "31/12/2020", importer.SkipCutoff},
		{"at cutoff", "2021-01-01", importer.NotSkipped},
		{"after cutoff", "15-06-2021", importer.NotSkipped},
		{"no date", "", importer.NotSkipped},
	}

	for _, tt := range tests {
		row := importer.Row{"ProjectNo": "1", "Parcel": "100", "Created": tt.created}
		_, skip := m.Map(row)
		assert.Equal(t, tt.skip, skip, tt.msg)
	}
}

func TestMapperCutoffOnlyForPermits(t *testing.T) {
	def, _ := schema.Get(schema.Buildings)
	p := importer.Plan{
		Def:     def,
		Columns: importer.Columns{"parcel_id": "p", "creation_date": "d"},
	}
	m := importer.NewMapper(p, nil, importer.KeepArabic, "")
	_, skip := m.Map(importer.Row{"p": "1", "d": "2001-01-01"})
	assert.Equal(t, importer.NotSkipped, skip)
}

func TestMapperRequired(t *testing.T) {
	m := importer.NewMapper(permitsPlan(), nil, importer.KeepArabic, "")

	tests := []struct {
		msg  string
		row  importer.Row
		skip importer.SkipReason
	}{
		{"complete", importer.Row{"ProjectNo": "1", "Parcel": "2"},
			importer.NotSkipped},
		{"empty required", importer.Row{"ProjectNo": "1", "Parcel": ""},
			importer.SkipMissingRequired},
		{"not a number", importer.Row{"ProjectNo": "x", "Parcel": "2"},
			importer.SkipMissingRequired},
		{"absent field", importer.Row{"ProjectNo": "1"},
			importer.SkipMissingRequired},
	}

	for _, tt := range tests {
		_, skip := m.Map(tt.row)
		assert.Equal(t, tt.skip, skip, tt.msg)
	}
}

func TestMapperRecord(t *testing.T) {
	m := importer.NewMapper(permitsPlan(), nil, importer.KeepArabic, "")
	rec, skip := m.Map(importer.Row{
		"ProjectNo":         "12",
		"Parcel":            "3,450",
		"Created":           "5/6/2022",
		"ContractorLicense": "abc",
		"Ignored":           "value",
	})
	assert.Equal(t, importer.NotSkipped, skip)
	assert.Equal(t, importer.Record{
		"project_no":            12.0,
		"parcel_id":             3450.0,
		"project_creation_date": "2022-06-05",
		"contractor_license_no": nil,
	}, rec, "absent source fields are left out of the record")
}

func TestMapperTranslation(t *testing.T) {
	store := translate.NewStore(map[string]string{
		"شركة البناء": "Construction Company",
	})

	tests := []struct {
		msg      string
		fallback importer.Fallback
		value    string
		res      string
	}{
		{"curated", importer.KeepArabic, "شركة البناء", "Construction Company"},
		{"curated trimmed", importer.KeepArabic, " شركة البناء ",
			"Construction Company"},
		{"keep arabic", importer.KeepArabic, "شركة", "شركة"},
		{"transliterate", importer.Transliterate, "شركة", "Shrka"},
		{"latin untouched", importer.Transliterate, "Arabtec", "Arabtec"},
	}

	for _, tt := range tests {
		m := importer.NewMapper(permitsPlan(), store, tt.fallback, "")
		rec, _ := m.Map(importer.Row{
			"ProjectNo": "1", "Parcel": "2", "Contractor": tt.value,
		})
		assert.Equal(t, tt.res, rec["contractor_english"], tt.msg)
	}
}

func TestMapperTranslationDisabled(t *testing.T) {
	p := permitsPlan()
	p.Translate = nil
	store := translate.NewStore(map[string]string{"شركة": "Company"})
	m := importer.NewMapper(p, store, importer.Transliterate, "")
	rec, _ := m.Map(importer.Row{"ProjectNo": "1", "Parcel": "2", "Contractor": "شركة"})
	assert.Equal(t, "شركة", rec["contractor_english"])
	assert.False(t, m.Translating())
}

func TestMapperUntranslated(t *testing.T) {
	store := translate.NewStore(map[string]string{"شركة": "Company"})
	m := importer.NewMapper(permitsPlan(), store, importer.KeepArabic, "")
	assert.True(t, m.Translating())

	assert.Equal(t, []string{"مقاول"},
		m.Untranslated(importer.Row{"Contractor": "مقاول"}))
	assert.Empty(t, m.Untranslated(importer.Row{"Contractor": "شركة"}))
	assert.Empty(t, m.Untranslated(importer.Row{"Contractor": "Arabtec"}))
	assert.Empty(t, m.Untranslated(importer.Row{"Other": "مقاول"}))
}
