package ioimport

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/velocitia/prospectsdata/pkg/importer"
)

const bom = "\xEF\xBB\xBF"

// csvFile reads data rows of a CSV file keyed by header names.
type csvFile struct {
	path    string
	f       *os.File
	r       *csv.Reader
	headers []string
}

func openCSV(path string) (*csvFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, OpenFileError(path, err)
	}

	br := bufio.NewReader(f)
	if b, err := br.Peek(len(bom)); err == nil && string(b) == bom {
		_, _ = br.Discard(len(bom))
	}

	r := csv.NewReader(br)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.ReuseRecord = true

	headers, err := r.Read()
	if errors.Is(err, io.EOF) {
		f.Close()
		return nil, ParseError(path, errors.New("file has no header row"))
	}
	if err != nil {
		f.Close()
		return nil, ParseError(path, err)
	}

	return &csvFile{
		path:    path,
		f:       f,
		r:       r,
		headers: append([]string(nil), headers...),
	}, nil
}

// next returns the next data row or io.EOF. Lines with only blank fields
// are skipped.
func (c *csvFile) next() (importer.Row, error) {
	for {
		rec, err := c.r.Read()
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		if err != nil {
			return nil, ParseError(c.path, err)
		}
		if isBlank(rec) {
			continue
		}
		return c.row(rec), nil
	}
}

// row keys fields by headers. Missing trailing fields are absent, extra
// fields are ignored, the first of duplicate headers wins.
func (c *csvFile) row(rec []string) importer.Row {
	res := make(importer.Row, len(c.headers))
	for i, h := range c.headers {
		if i >= len(rec) {
			break
		}
		if _, ok := res[h]; ok {
			continue
		}
		res[h] = rec[i]
	}
	return res
}

// stream sends chunks of up to size rows. The channel is unbuffered, so
// a chunk is read only after the previous one was taken.
func (c *csvFile) stream(
	ctx context.Context,
	size int,
	ch chan<- []importer.Row,
) error {
	size = max(size, 1)
	chunk := make([]importer.Row, 0, size)

	send := func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ch <- chunk:
		}
		chunk = make([]importer.Row, 0, size)
		return nil
	}

	for {
		row, err := c.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		chunk = append(chunk, row)
		if len(chunk) == size {
			if err = send(); err != nil {
				return err
			}
		}
	}

	if len(chunk) > 0 {
		return send()
	}
	return nil
}

func (c *csvFile) close() error {
	return c.f.Close()
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

type previewer struct{}

// NewPreviewer returns a previewer of CSV files.
func NewPreviewer() importer.Previewer {
	return previewer{}
}

// Preview returns headers and up to n data rows of the file.
func (previewer) Preview(
	ctx context.Context,
	file string,
	n int,
) ([]string, []importer.Row, error) {
	c, err := openCSV(file)
	if err != nil {
		return nil, nil, err
	}
	defer c.close()

	var rows []importer.Row
	for len(rows) < n {
		if err = ctx.Err(); err != nil {
			return nil, nil, err
		}
		row, err := c.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		rows = append(rows, row)
	}
	return c.headers, rows, nil
}
