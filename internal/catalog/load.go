// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"compress/gzip"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/metrics"
)

// Dataset pairs a catalog with its validated similarity matrix.
type Dataset struct {
	Catalog *Catalog
	Matrix  *Matrix
}

// Load reads both artifacts and verifies the matrix is N x N for N catalog entries.
func Load(catalogPath, matrixPath string) (*Dataset, error) {
	start := time.Now()

	cat, err := LoadCatalog(catalogPath)
	if err != nil {
		return nil, err
	}
	mat, err := LoadMatrix(matrixPath)
	if err != nil {
		return nil, err
	}
	if err := Validate(cat, mat); err != nil {
		return nil, err
	}

	metrics.CatalogEntries.Set(float64(cat.Len()))
	metrics.CatalogDuplicateTitles.Set(float64(cat.Duplicates()))

	logger := logging.WithComponent("catalog")
	logger.Info().
		Int("entries", cat.Len()).
		Str("catalog_path", catalogPath).
		Str("matrix_path", matrixPath).
		Dur("duration", time.Since(start)).
		Msg("Catalog and similarity matrix loaded")
	if cat.Duplicates() > 0 {
		logger.Warn().
			Int("duplicates", cat.Duplicates()).
			Msg("Catalog contains duplicate titles; lookups resolve to the first entry")
	}

	return &Dataset{Catalog: cat, Matrix: mat}, nil
}

// Validate checks that m is square and matches the catalog length.
func Validate(c *Catalog, m *Matrix) error {
	n := c.Len()
	if m.Rows() != n || m.Cols() != n {
		return fmt.Errorf("%w: catalog has %d entries, matrix is %dx%d",
			ErrDimensionMismatch, n, m.Rows(), m.Cols())
	}
	return nil
}

// LoadCatalog reads a catalog file (.json or .csv, optionally .gz).
func LoadCatalog(path string) (*Catalog, error) {
	var titles []string
	err := withArtifact(path, func(r io.Reader, ext string) error {
		var decErr error
		switch ext {
		case ".json":
			titles, decErr = decodeCatalogJSON(r)
		case ".csv":
			titles, decErr = decodeCatalogCSV(r)
		default:
			decErr = fmt.Errorf("%w: catalog %q", ErrUnsupportedFormat, ext)
		}
		return decErr
	})
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}

	c, err := New(titles)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return c, nil
}

// LoadMatrix reads a similarity matrix file (.json or .bin, optionally .gz).
func LoadMatrix(path string) (*Matrix, error) {
	var m *Matrix
	err := withArtifact(path, func(r io.Reader, ext string) error {
		var decErr error
		switch ext {
		case ".json":
			var rows [][]float32
			if decErr = json.NewDecoder(r).Decode(&rows); decErr != nil {
				return fmt.Errorf("%w: %v", ErrInvalidMatrix, decErr)
			}
			m, decErr = NewMatrix(rows)
		case ".bin":
			m, decErr = ReadBinary(r)
		default:
			decErr = fmt.Errorf("%w: matrix %q", ErrUnsupportedFormat, ext)
		}
		return decErr
	})
	if err != nil {
		return nil, fmt.Errorf("load similarity matrix %s: %w", path, err)
	}
	return m, nil
}

// withArtifact opens path, transparently gunzips a trailing .gz, and hands
// the reader plus the inner extension to decode.
func withArtifact(path string, decode func(r io.Reader, ext string) error) error {
	f, err := os.Open(path) //nolint:gosec // artifact paths come from trusted configuration
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }() //nolint:errcheck // read-only file

	name := strings.ToLower(filepath.Base(path))
	var r io.Reader = f
	if strings.HasSuffix(name, ".gz") {
		gzr, err := gzip.NewReader(f)
		if err != nil {
			return fmt.Errorf("gzip: %w", err)
		}
		defer func() { _ = gzr.Close() }() //nolint:errcheck // close after read is not actionable
		r = gzr
		name = strings.TrimSuffix(name, ".gz")
	}

	return decode(r, filepath.Ext(name))
}

// catalogRecord accepts either a bare JSON string or an object with a title field.
type catalogRecord struct {
	Title string
}

func (c *catalogRecord) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &c.Title); err == nil {
		return nil
	}
	var obj struct {
		Title *string `json:"title"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	if obj.Title == nil {
		return errors.New("catalog record has no title")
	}
	c.Title = *obj.Title
	return nil
}

func decodeCatalogJSON(r io.Reader) ([]string, error) {
	var records []catalogRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	titles := make([]string, len(records))
	for i, rec := range records {
		titles[i] = rec.Title
	}
	return titles, nil
}

func decodeCatalogCSV(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	col := -1
	for i, name := range header {
		if strings.EqualFold(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")), "title") {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, errors.New("csv header has no title column")
	}

	var titles []string
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv line %d: %w", line, err)
		}
		if col >= len(rec) {
			return nil, fmt.Errorf("csv line %d has no title field", line)
		}
		titles = append(titles, rec[col])
	}
	return titles, nil
}
