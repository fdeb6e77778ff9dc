package importer

import (
	"github.com/velocitia/prospectsdata/pkg/schema"
)

// Aggregate is a derived write that follows a batch of the target table.
type Aggregate struct {
	Table    string
	Batch    Batch
	Conflict []string
	// Counter is a column that is added to the stored value on conflict
	// instead of replacing it. Empty for plain upserts.
	Counter string
}

// CompanyDelta is the number of projects of one licensed company in a
// batch.
type CompanyDelta struct {
	LicenseNo float64
	Name      string
	Count     int
}

// CompanyCounts groups records by license number and counts them. Rows
// without a positive license number or without a name are ignored. The
// first name of a license wins. Deltas keep the order of first
// appearance.
func CompanyCounts(recs []Record, licenseCol, nameCol string) []CompanyDelta {
	var res []CompanyDelta
	pos := make(map[float64]int)
	for _, r := range recs {
		lic, ok := r[licenseCol].(float64)
		if !ok || lic <= 0 {
			continue
		}
		name, _ := r[nameCol].(string)
		if name == "" {
			continue
		}
		if i, ok := pos[lic]; ok {
			res[i].Count++
			continue
		}
		pos[lic] = len(res)
		res = append(res, CompanyDelta{LicenseNo: lic, Name: name, Count: 1})
	}
	return res
}

// Aggregates returns derived writes for a batch of the given table.
//
// Contractor and consultant projects increment project counts of their
// companies. Developers are added to companies without touching their
// project counts. Land registry rows feed the areas directory.
func Aggregates(table string, recs []Record) []Aggregate {
	switch table {
	case schema.ContractorProjects:
		return companyCounts(recs, "contractor_license_no",
			"contractor_english", schema.CompanyContractor)
	case schema.ConsultantProjects:
		return companyCounts(recs, "consultant_license_no",
			"consultant_english", schema.CompanyConsultant)
	case schema.Developers:
		return developerCompanies(recs)
	case schema.LandRegistry:
		return areas(recs)
	}
	return nil
}

func companyCounts(recs []Record, licenseCol, nameCol, typ string) []Aggregate {
	deltas := CompanyCounts(recs, licenseCol, nameCol)
	if len(deltas) == 0 {
		return nil
	}
	b := Batch{
		Columns: []string{"license_no", "name_en", "type", "project_count"},
		Rows:    make([][]any, len(deltas)),
	}
	for i, d := range deltas {
		b.Rows[i] = []any{d.LicenseNo, d.Name, typ, float64(d.Count)}
	}
	def, _ := schema.Get(schema.Companies)
	return []Aggregate{{
		Table:    schema.Companies,
		Batch:    b,
		Conflict: def.ConflictKey,
		Counter:  "project_count",
	}}
}

// developerCompanies keeps the last name of every developer in the batch.
// Project counts are left out, so new rows get the default of zero and
// existing counts stay as they are.
func developerCompanies(recs []Record) []Aggregate {
	b := Batch{Columns: []string{"license_no", "name_en", "type"}}
	pos := make(map[float64]int)
	for _, r := range recs {
		id, ok := r["developer_id"].(float64)
		if !ok || id <= 0 {
			continue
		}
		name, _ := r["developer_name_en"].(string)
		if name == "" {
			continue
		}
		row := []any{id, name, schema.CompanyDeveloper}
		if i, ok := pos[id]; ok {
			b.Rows[i] = row
			continue
		}
		pos[id] = len(b.Rows)
		b.Rows = append(b.Rows, row)
	}
	if b.Len() == 0 {
		return nil
	}
	def, _ := schema.Get(schema.Companies)
	return []Aggregate{{
		Table:    schema.Companies,
		Batch:    b,
		Conflict: def.ConflictKey,
	}}
}

// areas keeps the last area name of every zip code in the batch.
func areas(recs []Record) []Aggregate {
	b := Batch{Columns: []string{"munc_zip_code", "area_name_en"}}
	pos := make(map[float64]int)
	for _, r := range recs {
		zip, ok := r["munc_zip_code"].(float64)
		if !ok || zip == 0 {
			continue
		}
		name, _ := r["area_name_en"].(string)
		if name == "" {
			continue
		}
		row := []any{zip, name}
		if i, ok := pos[zip]; ok {
			b.Rows[i] = row
			continue
		}
		pos[zip] = len(b.Rows)
		b.Rows = append(b.Rows, row)
	}
	if b.Len() == 0 {
		return nil
	}
	def, _ := schema.Get(schema.Areas)
	return []Aggregate{{
		Table:    schema.Areas,
		Batch:    b,
		Conflict: def.ConflictKey,
	}}
}
