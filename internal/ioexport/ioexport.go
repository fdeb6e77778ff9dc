// Package ioexport writes the developers list that is used to enrich the
// directory with contact details. This is an impure I/O package.
package ioexport

import (
	"context"
	"io"
	"log/slog"

	"github.com/gnames/gnfmt"
	"github.com/velocitia/prospectsdata/internal/iostore"
	"github.com/velocitia/prospectsdata/pkg/names"
)

// DeveloperType is the companies.type value of developers.
const DeveloperType = "developer"

// Instruction describes the expected enrichment of every developer.
const Instruction = "For each Dubai UAE real estate developer company below, " +
	"find publicly available information. Return as JSON array where each " +
	"object has: name (exact match), email, phone, website, address, " +
	"emirate, established_year, employees_range " +
	"(1-10/11-50/51-200/201-500/500+), description, specializations " +
	"(array like ['Residential','Commercial']), key_people (array of " +
	"{name,role}), social_links ({linkedin,twitter}). Only include fields " +
	"where you find actual data. Skip companies you can't find info for."

// Document is the exported JSON document.
type Document struct {
	Instruction string   `json:"instruction"`
	Developers  []string `json:"developers"`
}

// Companies reads companies of a given type.
type Companies interface {
	Companies(ctx context.Context, typ string) ([]iostore.Company, error)
}

// Developers reads developer companies and returns their cleaned, unique
// and sorted names.
func Developers(ctx context.Context, src Companies) (Document, error) {
	var res Document
	cs, err := src.Companies(ctx, DeveloperType)
	if err != nil {
		return res, ExportError(err)
	}

	raw := make([]string, 0, len(cs))
	for _, c := range cs {
		raw = append(raw, c.NameEn)
	}

	res.Instruction = Instruction
	res.Developers = names.CleanCompanies(raw)
	slog.Info("Developers exported",
		"companies", len(cs), "names", len(res.Developers))
	return res, nil
}

// Write encodes the document as indented JSON.
func Write(w io.Writer, doc Document) error {
	enc := gnfmt.GNjson{Pretty: true}
	data, err := enc.Encode(doc)
	if err != nil {
		return ExportError(err)
	}
	data = append(data, '\n')
	if _, err = w.Write(data); err != nil {
		return ExportError(err)
	}
	return nil
}
