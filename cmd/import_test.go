package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velocitia/prospectsdata/internal/iostore"
	"github.com/velocitia/prospectsdata/pkg/config"
	"github.com/velocitia/prospectsdata/pkg/errcode"
	"github.com/velocitia/prospectsdata/pkg/importer"
	"github.com/velocitia/prospectsdata/pkg/schema"
)

// testConfig points the commands to a SQLite file in a temporary
// directory and returns the path of that file.
func testConfig(t *testing.T, opts ...config.Option) string {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "prospects.sqlite")
	cfg = config.New()
	cfg.Update([]config.Option{
		config.OptHomeDir(dir),
		config.OptDatabaseDriver("sqlite"),
		config.OptDatabaseSQLitePath(dbPath),
		config.OptTranslationsPath(filepath.Join(dir, "translations.json")),
	})
	cfg.Update(opts)
	return dbPath
}

func writeCSV(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	content := strings.Join(lines, "\n") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func withStdin(t *testing.T, s string) {
	t.Helper()
	orig := stdin
	stdin = strings.NewReader(s)
	t.Cleanup(func() { stdin = orig })
}

func count(t *testing.T, dbPath, table string) int {
	t.Helper()
	st, err := iostore.OpenSQLite(dbPath)
	require.NoError(t, err)
	defer st.Close()
	res, err := st.Count(context.Background(), table)
	require.NoError(t, err)
	return res
}

func errCode(t *testing.T, err error) gn.ErrorCode {
	t.Helper()
	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	return gnErr.Code
}

func areasCSV(t *testing.T) string {
	return writeCSV(t,
		"Munc Zip Code,Area Name EN",
		"101,Dubai Marina",
		"102,Downtown",
		",Nowhere",
	)
}

func TestRunImport(t *testing.T) {
	ctx := context.Background()
	dbPath := testConfig(t)
	file := areasCSV(t)

	var buf bytes.Buffer
	err := runImport(ctx, &buf, file, importFlags{
		mappingFlags: mappingFlags{table: schema.Areas},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count(t, dbPath, schema.Areas))

	out := buf.String()
	assert.Contains(t, out, "Import summary: areas")
	assert.Contains(t, out, "imported:   2")
	assert.Contains(t, out, "missing_required: 1")

	// areas are upserted by munc_zip_code
	err = runImport(ctx, &bytes.Buffer{}, file, importFlags{
		mappingFlags: mappingFlags{table: schema.Areas},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count(t, dbPath, schema.Areas))
}

func TestRunImportDryRun(t *testing.T) {
	dbPath := testConfig(t, config.OptImportDryRun(true))

	var buf bytes.Buffer
	err := runImport(context.Background(), &buf, areasCSV(t), importFlags{
		mappingFlags: mappingFlags{table: schema.Areas},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Dry run summary")
	assert.NoFileExists(t, dbPath)
}

func TestRunImportMapping(t *testing.T) {
	ctx := context.Background()
	dbPath := testConfig(t)
	file := writeCSV(t,
		"Zip,Name",
		"201,Jumeirah",
	)

	t.Run("required columns", func(t *testing.T) {
		err := runImport(ctx, &bytes.Buffer{}, file, importFlags{
			mappingFlags: mappingFlags{table: schema.Areas},
		})
		require.Error(t, err)
		assert.Equal(t, errcode.ImportMissingRequiredError, errCode(t, err))
		assert.NoFileExists(t, dbPath)
	})

	t.Run("bad map flag", func(t *testing.T) {
		err := runImport(ctx, &bytes.Buffer{}, file, importFlags{
			mappingFlags: mappingFlags{
				table: schema.Areas,
				maps:  []string{"munc_zip_code"},
			},
		})
		require.Error(t, err)
		assert.Equal(t, errcode.ImportMappingError, errCode(t, err))
	})

	t.Run("map flags", func(t *testing.T) {
		err := runImport(ctx, &bytes.Buffer{}, file, importFlags{
			mappingFlags: mappingFlags{
				table: schema.Areas,
				maps:  []string{"munc_zip_code=Zip", "area_name_en=Name"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, count(t, dbPath, schema.Areas))
	})

	t.Run("mapping file", func(t *testing.T) {
		mf := filepath.Join(t.TempDir(), "areas.yaml")
		yml := "table: areas\ncolumns:\n  munc_zip_code: Zip\n  area_name_en: Name\n"
		require.NoError(t, os.WriteFile(mf, []byte(yml), 0644))

		other := writeCSV(t, "Zip,Name", "202,Al Barsha")
		err := runImport(ctx, &bytes.Buffer{}, other, importFlags{
			mappingFlags: mappingFlags{mappingFile: mf},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, count(t, dbPath, schema.Areas))
	})

	t.Run("unknown table", func(t *testing.T) {
		err := runImport(ctx, &bytes.Buffer{}, file, importFlags{
			mappingFlags: mappingFlags{table: "villas"},
		})
		require.Error(t, err)
		assert.Equal(t, errcode.SchemaUnknownTableError, errCode(t, err))
	})
}

func TestRunImportConfirmation(t *testing.T) {
	ctx := context.Background()
	file := writeCSV(t,
		"Project ID,Project Name",
		"1,برج خليفة",
		"2,Marina Tower",
	)
	flags := importFlags{
		mappingFlags: mappingFlags{
			table:     schema.Projects,
			translate: []string{"project_name"},
		},
	}

	t.Run("declined", func(t *testing.T) {
		dbPath := testConfig(t)
		withStdin(t, "no\n")

		var buf bytes.Buffer
		err := runImport(ctx, &buf, file, flags)
		require.Error(t, err)
		assert.Equal(t, errcode.ImportCancelledError, errCode(t, err))
		assert.Contains(t, buf.String(), "برج خليفة")
		assert.NoFileExists(t, dbPath)
	})

	t.Run("names limited by show", func(t *testing.T) {
		testConfig(t)
		withStdin(t, "no\n")
		many := writeCSV(t,
			"Project ID,Project Name",
			"1,برج خليفة",
			"2,دبي مارينا",
			"3,برج العرب",
		)
		limited := flags
		limited.show = 1

		var buf bytes.Buffer
		err := runImport(ctx, &buf, many, limited)
		require.Error(t, err)
		out := buf.String()
		assert.Contains(t, out, "3 names without curated translation")
		assert.Contains(t, out, "برج خليفة")
		assert.NotContains(t, out, "دبي مارينا")
		assert.Contains(t, out, "...and 2 more")
	})

	t.Run("accepted", func(t *testing.T) {
		dbPath := testConfig(t)
		withStdin(t, "y\n")

		err := runImport(ctx, &bytes.Buffer{}, file, flags)
		require.NoError(t, err)
		assert.Equal(t, 2, count(t, dbPath, schema.Projects))
	})

	t.Run("assume yes", func(t *testing.T) {
		dbPath := testConfig(t, config.OptImportAssumeYes(true))
		withStdin(t, "")

		err := runImport(ctx, &bytes.Buffer{}, file, flags)
		require.NoError(t, err)
		assert.Equal(t, 2, count(t, dbPath, schema.Projects))
	})

	t.Run("curated translations", func(t *testing.T) {
		dbPath := testConfig(t)
		doc := `{"برج خليفة": "Burj Khalifa"}`
		require.NoError(t, os.WriteFile(cfg.TranslationsPath(), []byte(doc), 0644))
		withStdin(t, "")

		err := runImport(ctx, &bytes.Buffer{}, file, flags)
		require.NoError(t, err)
		assert.Equal(t, 2, count(t, dbPath, schema.Projects))
	})
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		res   bool
	}{
		{"yes\n", true},
		{"Y\n", true},
		{"  YES  \n", true},
		{"no\n", false},
		{"\n", false},
		{"yeah\n", false},
		{"y", true},
	}

	for _, v := range tests {
		withStdin(t, v.input)
		res, err := confirm("Proceed?")
		require.NoError(t, err, v.input)
		assert.Equal(t, v.res, res, v.input)
	}

	withStdin(t, "")
	_, err := confirm("Proceed?")
	assert.Error(t, err)
}

func TestPrintSummary(t *testing.T) {
	sum := importer.Summary{
		Counters: importer.Counters{
			Seen: 1_200, Total: 1_100, Imported: 1_000, Failed: 100, Skipped: 100,
		},
		Table: schema.Permits,
		File:  "permits.csv",
		SkipReasons: map[importer.SkipReason]int{
			importer.SkipMissingRequired: 40,
			importer.SkipCutoff:          60,
		},
		Errors:          []string{"Batch error: deadlock detected"},
		AggregateErrors: []string{"companies: connection reset"},
		Duration:        2 * time.Second,
	}

	var buf bytes.Buffer
	printSummary(&buf, sum)
	out := buf.String()
	assert.Contains(t, out, "Import summary: permits <- permits.csv")
	assert.Contains(t, out, "rows read:  1,200")
	assert.Contains(t, out, "imported:   1,000")
	assert.Contains(t, out, "Batch error: deadlock detected")
	assert.Contains(t, out, "companies: connection reset")
	assert.Less(t,
		strings.Index(out, "cutoff: 60"),
		strings.Index(out, "missing_required: 40"),
	)
}

func TestPrintUntranslated(t *testing.T) {
	names := []string{"أ", "ب", "ت"}

	var buf bytes.Buffer
	printUntranslated(&buf, names, 2)
	assert.Contains(t, buf.String(), "3 names without curated translation")
	assert.Contains(t, buf.String(), "...and 1 more")
	assert.NotContains(t, buf.String(), "ت")

	buf.Reset()
	printUntranslated(&buf, names, 0)
	assert.Contains(t, buf.String(), "ت")

	buf.Reset()
	printUntranslated(&buf, nil, 10)
	assert.Contains(t, buf.String(), "All Arabic names have curated translations")
}
