package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/velocitia/prospectsdata/internal/ioimport"
	"github.com/velocitia/prospectsdata/internal/iostore"
	"github.com/velocitia/prospectsdata/internal/iotranslate"
	"github.com/velocitia/prospectsdata/pkg/db"
	"github.com/velocitia/prospectsdata/pkg/importer"
	"github.com/velocitia/prospectsdata/pkg/translate"
)

// stdin is where confirmations are read from.
var stdin io.Reader = os.Stdin

// mappingFlags are the column mapping flags shared by scan and import.
type mappingFlags struct {
	table       string
	maps        []string
	mappingFile string
	translate   []string
}

// prepareSession previews the file, selects the table and applies the
// mapping file and flags on top of the automatic mapping.
func prepareSession(
	ctx context.Context,
	file string,
	mf mappingFlags,
) (*importer.Session, *importer.Mapping, error) {
	sess := importer.NewSession()
	err := sess.SelectFile(ctx, file, ioimport.NewPreviewer(), cfg.Import.PreviewRows)
	if err != nil {
		return nil, nil, err
	}

	var saved *ioimport.MappingFile
	table := mf.table
	if mf.mappingFile != "" {
		if saved, err = ioimport.LoadMappingFile(mf.mappingFile); err != nil {
			return nil, nil, err
		}
		if table == "" {
			table = saved.Table
		}
	}

	m, err := sess.SelectTable(table)
	if err != nil {
		return nil, nil, err
	}

	if saved != nil {
		if err = saved.Apply(m); err != nil {
			return nil, nil, err
		}
	}

	for _, s := range mf.maps {
		target, source, ok := splitMapping(s)
		if !ok {
			return nil, nil, importer.MappingError(table, s,
				"expected target=source")
		}
		if err = m.SetMapping(target, source); err != nil {
			return nil, nil, err
		}
	}

	for _, target := range mf.translate {
		if err = m.SetTranslate(target, true); err != nil {
			return nil, nil, err
		}
	}

	return sess, m, nil
}

// loadTranslations loads curated translations. When they cannot be
// loaded, a warning is shown and an empty store is returned.
func loadTranslations(ctx context.Context) *translate.Store {
	loc := cfg.TranslationsPath()
	loader := translate.NewLoader(iotranslate.New(loc))
	st, err := loader.Load(ctx)
	if err != nil {
		slog.Warn("Curated translations unavailable",
			"location", loc, "error", err)
		gn.Warn("Curated translations are unavailable, continuing without them")
		return translate.NewStore(nil)
	}
	gn.Info("Loaded <em>%s</em> curated translations",
		humanize.Comma(int64(st.Len())))
	return st
}

// openStore connects to the configured store.
func openStore(ctx context.Context) (iostore.Store, db.Operator, error) {
	st, op, err := iostore.Open(ctx, &cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	if op == nil {
		gn.Info("Opened SQLite database: <em>%s</em>", cfg.Database.SQLitePath)
	} else {
		gn.Info("Connected to database: %s@%s:%d/%s",
			cfg.Database.User, cfg.Database.Host,
			cfg.Database.Port, cfg.Database.Database)
	}
	return st, op, nil
}

// confirm asks a yes/no question. Only "yes" and "y" confirm.
func confirm(question string) (bool, error) {
	fmt.Printf("\n%s (yes/no): ", question)

	reader := bufio.NewReader(stdin)
	response, err := reader.ReadString('\n')
	if err != nil && response == "" {
		gn.Warn("Failed to read user input")
		return false, err
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "yes" || response == "y", nil
}
