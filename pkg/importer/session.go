package importer

import (
	"context"
	"maps"

	"github.com/velocitia/prospectsdata/pkg/schema"
)

// Previewer reads the header and first n data rows of a CSV file.
type Previewer interface {
	Preview(ctx context.Context, file string, n int) ([]string, []Row, error)
}

// Session drives one import through upload, preview, mapping, importing
// and complete stages. Only legal transitions are exposed. A Session is
// not safe for concurrent use.
type Session struct {
	stage Stage
}

// NewSession creates a session in the upload stage.
func NewSession() *Session {
	return &Session{stage: Upload{}}
}

// Stage returns the current stage.
func (s *Session) Stage() Stage {
	return s.stage
}

// SelectFile previews a file and moves the session to the preview stage.
// On failure the error is kept in the upload stage and returned.
func (s *Session) SelectFile(
	ctx context.Context,
	file string,
	p Previewer,
	n int,
) error {
	up, ok := s.stage.(Upload)
	if !ok {
		return StageError(s.stage.Name(), StageUpload)
	}
	headers, rows, err := p.Preview(ctx, file, n)
	if err != nil {
		up.Errors = append(up.Errors, err.Error())
		s.stage = up
		return err
	}
	s.stage = Preview{File: file, Headers: headers, Rows: rows}
	return nil
}

// SelectTable chooses the target table and computes the initial
// automatic mapping.
func (s *Session) SelectTable(table string) (*Mapping, error) {
	pr, ok := s.stage.(Preview)
	if !ok {
		return nil, StageError(s.stage.Name(), StagePreview)
	}
	def, ok := schema.Get(table)
	if !ok {
		return nil, UnknownTableError(table)
	}
	m := &Mapping{
		Preview:   pr,
		Def:       def,
		Columns:   AutoMap(pr.Headers, def),
		translate: make(map[string]bool),
	}
	s.stage = m
	return m, nil
}

// Mapping returns the mapping stage for edits.
func (s *Session) Mapping() (*Mapping, error) {
	m, ok := s.stage.(*Mapping)
	if !ok {
		return nil, StageError(s.stage.Name(), StageMapping)
	}
	return m, nil
}

// BeginImport freezes the mapping into a Plan and moves to the importing
// stage. It fails if required columns are not mapped.
func (s *Session) BeginImport() (*Importing, error) {
	m, err := s.Mapping()
	if err != nil {
		return nil, err
	}
	if miss := m.MissingRequired(); len(miss) > 0 {
		return nil, MissingRequiredError(m.Def.Table, miss)
	}
	imp := &Importing{
		Plan: Plan{
			File:      m.File,
			Def:       m.Def,
			Columns:   maps.Clone(m.Columns),
			Translate: m.Translate(),
		},
	}
	s.stage = imp
	return imp, nil
}

// Complete finishes the import with its summary.
func (s *Session) Complete(sum Summary) error {
	if _, ok := s.stage.(*Importing); !ok {
		return StageError(s.stage.Name(), StageImporting)
	}
	s.stage = Complete{Summary: sum}
	return nil
}

// Reset discards everything and returns to the upload stage. Curated
// translations live outside of the session and are not affected.
func (s *Session) Reset() {
	s.stage = Upload{}
}
