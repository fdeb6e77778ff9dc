// Package iotranslate reads curated translations from a local JSON file
// or an http(s) URL. The document is a flat JSON object mapping Arabic
// names to their English forms.
package iotranslate

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gnames/gnfmt"
	"github.com/velocitia/prospectsdata/pkg/translate"
)

// New returns a source for a path or URL.
func New(location string) translate.Source {
	if strings.HasPrefix(location, "http://") ||
		strings.HasPrefix(location, "https://") {
		return &httpSource{
			url:    location,
			client: &http.Client{Timeout: 30 * time.Second},
		}
	}
	return &fileSource{path: location}
}

type fileSource struct {
	path string
}

func (s *fileSource) Location() string {
	return s.path
}

func (s *fileSource) Fetch(ctx context.Context) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	return decode(s.path, data)
}

type httpSource struct {
	url    string
	client *http.Client
}

func (s *httpSource) Location() string {
	return s.url
}

func (s *httpSource) Fetch(ctx context.Context) (map[string]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return decode(s.url, data)
}

func decode(location string, data []byte) (map[string]string, error) {
	enc := gnfmt.GNjson{}
	var res map[string]string
	if err := enc.Decode(data, &res); err != nil {
		return nil, DecodeError(location, err)
	}
	if res == nil {
		res = make(map[string]string)
	}
	return res, nil
}
