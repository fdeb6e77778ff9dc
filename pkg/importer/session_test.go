package importer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velocitia/prospectsdata/pkg/errcode"
	"github.com/velocitia/prospectsdata/pkg/importer"
	"github.com/velocitia/prospectsdata/pkg/schema"
)

type previewer struct {
	headers []string
	rows    []importer.Row
	err     error
}

func (p previewer) Preview(
	_ context.Context,
	_ string,
	_ int,
) ([]string, []importer.Row, error) {
	return p.headers, p.rows, p.err
}

var projectsPreview = previewer{
	headers: []string{"project_id", "Project Name", "developer_name"},
	rows: []importer.Row{
		{"project_id": "1", "Project Name": "Marina Heights",
			"developer_name": "Emaar"},
		{"project_id": "2", "Project Name": "برج النخبة",
			"developer_name": "شركة"},
	},
}

func errCode(t *testing.T, err error) gn.ErrorCode {
	t.Helper()
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	return gnErr.Code
}

func TestSessionFlow(t *testing.T) {
	ctx := context.Background()
	s := importer.NewSession()
	assert.Equal(t, importer.StageUpload, s.Stage().Name())

	err := s.SelectFile(ctx, "projects.csv", projectsPreview, 100)
	require.NoError(t, err)
	pr, ok := s.Stage().(importer.Preview)
	require.True(t, ok)
	assert.Equal(t, "projects.csv", pr.File)
	assert.Len(t, pr.Rows, 2)

	m, err := s.SelectTable(schema.Projects)
	require.NoError(t, err)
	assert.Equal(t, importer.StageMapping, s.Stage().Name())
	assert.Equal(t, "Project Name", m.Columns["project_name"])
	assert.True(t, m.ReadyToImport())
	assert.Equal(t, []string{"project_name"}, m.ArabicColumns())
	sample, ok := m.SampleArabic("project_name")
	assert.True(t, ok)
	assert.Equal(t, "برج النخبة", sample)

	require.NoError(t, m.SetTranslate("project_name", true))
	assert.Equal(t, []string{"project_name"}, m.Translate())

	imp, err := s.BeginImport()
	require.NoError(t, err)
	assert.Equal(t, importer.StageImporting, s.Stage().Name())
	assert.Equal(t, []string{"project_name"}, imp.Translate)
	assert.Equal(t, "projects.csv", imp.File)

	m.Columns["project_id"] = "changed"
	assert.Equal(t, "project_id", imp.Columns["project_id"],
		"plan does not change with the mapping")

	sum := importer.Summary{Counters: importer.Counters{Total: 2, Imported: 2}}
	require.NoError(t, s.Complete(sum))
	c, ok := s.Stage().(importer.Complete)
	require.True(t, ok)
	assert.Equal(t, 2, c.Summary.Imported)

	s.Reset()
	assert.Equal(t, importer.StageUpload, s.Stage().Name())
}

func TestSessionPreviewFailure(t *testing.T) {
	s := importer.NewSession()
	err := s.SelectFile(context.Background(), "bad.csv",
		previewer{err: errors.New("bare \" in non-quoted field")}, 100)
	require.Error(t, err)

	up, ok := s.Stage().(importer.Upload)
	require.True(t, ok)
	assert.Len(t, up.Errors, 1)
}

func TestSessionIllegalTransitions(t *testing.T) {
	s := importer.NewSession()

	_, err := s.SelectTable(schema.Projects)
	assert.Equal(t, errcode.ImportStageError, errCode(t, err))

	_, err = s.BeginImport()
	assert.Equal(t, errcode.ImportStageError, errCode(t, err))

	err = s.Complete(importer.Summary{})
	assert.Equal(t, errcode.ImportStageError, errCode(t, err))

	require.NoError(t,
		s.SelectFile(context.Background(), "f.csv", projectsPreview, 10))
	err = s.SelectFile(context.Background(), "f.csv", projectsPreview, 10)
	assert.Equal(t, errcode.ImportStageError, errCode(t, err))

	_, err = s.SelectTable("permits")
	assert.Equal(t, errcode.SchemaUnknownTableError, errCode(t, err))
}

func TestMappingEdits(t *testing.T) {
	s := importer.NewSession()
	require.NoError(t,
		s.SelectFile(context.Background(), "f.csv", projectsPreview, 10))
	m, err := s.SelectTable(schema.Projects)
	require.NoError(t, err)

	err = m.SetMapping("nothing", "project_id")
	assert.Equal(t, errcode.ImportMappingError, errCode(t, err))

	err = m.SetMapping("project_number", "absent header")
	assert.Equal(t, errcode.ImportMappingError, errCode(t, err))

	err = m.SetTranslate("developer_name", true)
	assert.Equal(t, errcode.ImportMappingError, errCode(t, err),
		"column is not translatable")

	require.NoError(t, m.SetMapping("project_name", ""))
	err = m.SetTranslate("project_name", true)
	assert.Equal(t, errcode.ImportMappingError, errCode(t, err),
		"column is not mapped")

	require.NoError(t, m.SetMapping("project_id", ""))
	assert.False(t, m.ReadyToImport())
	assert.Equal(t, []string{"project_id"}, m.MissingRequired())

	_, err = s.BeginImport()
	assert.Equal(t, errcode.ImportMissingRequiredError, errCode(t, err))
	assert.Equal(t, importer.StageMapping, s.Stage().Name())

	require.NoError(t, m.SetMapping("project_id", "project_id"))
	_, err = s.BeginImport()
	assert.NoError(t, err)
}
