package importer

import (
	"slices"

	"github.com/velocitia/prospectsdata/pkg/arabic"
	"github.com/velocitia/prospectsdata/pkg/schema"
)

// StageName names a step of the import workflow.
type StageName string

const (
	StageUpload    StageName = "upload"
	StagePreview   StageName = "preview"
	StageMapping   StageName = "mapping"
	StageImporting StageName = "importing"
	StageComplete  StageName = "complete"
)

// Stage is one state of an import session. Each stage carries only the
// data that is valid in it.
type Stage interface {
	Name() StageName
}

// Upload waits for a file. Errors of failed previews are kept here.
type Upload struct {
	Errors []string
}

func (Upload) Name() StageName { return StageUpload }

// Preview holds headers and first rows of the selected file.
type Preview struct {
	File    string
	Headers []string
	Rows    []Row
}

func (Preview) Name() StageName { return StagePreview }

// Mapping is where source headers get assigned to target columns and
// translation is switched on for Arabic columns.
type Mapping struct {
	Preview
	Def       schema.Definition
	Columns   Columns
	translate map[string]bool
}

func (Mapping) Name() StageName { return StageMapping }

// SetMapping assigns a source header to a target column. An empty source
// removes the assignment.
func (m *Mapping) SetMapping(target, source string) error {
	if _, ok := m.Def.Column(target); !ok {
		return MappingError(m.Def.Table, target, "unknown target column")
	}
	if source == "" {
		delete(m.Columns, target)
		delete(m.translate, target)
		return nil
	}
	if !slices.Contains(m.Headers, source) {
		return MappingError(m.Def.Table, target,
			"source column '"+source+"' is not in the file")
	}
	m.Columns[target] = source
	return nil
}

// SetTranslate switches Arabic to English conversion of a column. It is
// allowed only for translatable columns that have a source header.
func (m *Mapping) SetTranslate(target string, on bool) error {
	col, ok := m.Def.Column(target)
	if !ok {
		return MappingError(m.Def.Table, target, "unknown target column")
	}
	if !on {
		delete(m.translate, target)
		return nil
	}
	if !col.Translatable {
		return MappingError(m.Def.Table, target, "column is not translatable")
	}
	if m.Columns[target] == "" {
		return MappingError(m.Def.Table, target, "column is not mapped")
	}
	m.translate[target] = true
	return nil
}

// Translate returns columns with translation switched on, in table order.
func (m *Mapping) Translate() []string {
	var res []string
	for _, col := range m.Def.Columns {
		if m.translate[col.Name] && m.Columns[col.Name] != "" {
			res = append(res, col.Name)
		}
	}
	return res
}

// MissingRequired returns required target columns without a source.
func (m *Mapping) MissingRequired() []string {
	return m.Columns.MissingRequired(m.Def)
}

// ReadyToImport is true when all required columns are mapped.
func (m *Mapping) ReadyToImport() bool {
	return len(m.MissingRequired()) == 0
}

// ArabicColumns returns mapped translatable columns whose preview values
// contain Arabic. Translation makes sense only for them.
func (m *Mapping) ArabicColumns() []string {
	var res []string
	for _, col := range m.Def.Translatable() {
		if _, ok := m.SampleArabic(col.Name); ok {
			res = append(res, col.Name)
		}
	}
	return res
}

// SampleArabic returns the first Arabic preview value of a mapped column.
func (m *Mapping) SampleArabic(target string) (string, bool) {
	src := m.Columns[target]
	if src == "" {
		return "", false
	}
	for _, row := range m.Rows {
		if v := row[src]; arabic.ContainsArabic(v) {
			return v, true
		}
	}
	return "", false
}

// Plan is a frozen description of an import: file, target table, column
// assignments and translated columns.
type Plan struct {
	File      string
	Def       schema.Definition
	Columns   Columns
	Translate []string
}

// Importing runs the import of a Plan and keeps running counters.
type Importing struct {
	Plan
	Counters
}

func (Importing) Name() StageName { return StageImporting }

// Complete holds the final summary of an import.
type Complete struct {
	Summary Summary
}

func (Complete) Name() StageName { return StageComplete }
