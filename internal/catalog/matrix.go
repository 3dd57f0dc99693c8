// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// binaryMagic prefixes every binary matrix file.
var binaryMagic = [4]byte{'S', 'I', 'M', 'M'}

// maxMatrixCells caps allocation when a header is corrupt (~1 GiB of float32).
const maxMatrixCells = 1 << 28

// Matrix is a dense, row-major similarity matrix. Read-only after construction.
type Matrix struct {
	rows int
	cols int
	data []float32
}

// NewMatrix copies rows into a dense matrix. All rows must have equal length.
func NewMatrix(rows [][]float32) (*Matrix, error) {
	if len(rows) == 0 {
		return &Matrix{}, nil
	}

	cols := len(rows[0])
	m := &Matrix{
		rows: len(rows),
		cols: cols,
		data: make([]float32, 0, len(rows)*cols),
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidMatrix, i, len(row), cols)
		}
		m.data = append(m.data, row...)
	}
	if err := m.checkFinite(); err != nil {
		return nil, err
	}
	return m, nil
}

// checkFinite rejects NaN cells, which have no defined ordering.
func (m *Matrix) checkFinite() error {
	for k, v := range m.data {
		if math.IsNaN(float64(v)) {
			return fmt.Errorf("%w: NaN at (%d,%d)", ErrInvalidMatrix, k/m.cols, k%m.cols)
		}
	}
	return nil
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.cols }

// Row returns row i as a view into the matrix. Callers must not modify it.
func (m *Matrix) Row(i int) []float32 {
	if i < 0 || i >= m.rows {
		return nil
	}
	return m.data[i*m.cols : (i+1)*m.cols]
}

// ReadBinary decodes a matrix in the SIMM binary layout.
func ReadBinary(r io.Reader) (*Matrix, error) {
	br := bufio.NewReader(r)

	var header struct {
		Magic [4]byte
		Rows  uint32
		Cols  uint32
	}
	if err := binary.Read(br, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("%w: read header: %v", ErrInvalidMatrix, err)
	}
	if header.Magic != binaryMagic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrInvalidMatrix, header.Magic[:])
	}

	cells := uint64(header.Rows) * uint64(header.Cols)
	if cells > maxMatrixCells {
		return nil, fmt.Errorf("%w: %dx%d exceeds size limit", ErrInvalidMatrix, header.Rows, header.Cols)
	}

	m := &Matrix{
		rows: int(header.Rows),
		cols: int(header.Cols),
		data: make([]float32, cells),
	}
	if err := binary.Read(br, binary.LittleEndian, m.data); err != nil {
		return nil, fmt.Errorf("%w: read %d cells: %v", ErrInvalidMatrix, cells, err)
	}
	if err := m.checkFinite(); err != nil {
		return nil, err
	}
	return m, nil
}

// WriteBinary encodes m in the SIMM binary layout.
func WriteBinary(w io.Writer, m *Matrix) error {
	bw := bufio.NewWriter(w)

	header := struct {
		Magic [4]byte
		Rows  uint32
		Cols  uint32
	}{binaryMagic, uint32(m.rows), uint32(m.cols)} //nolint:gosec // dimensions bounded by maxMatrixCells on read
	if err := binary.Write(bw, binary.LittleEndian, header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, m.data); err != nil {
		return fmt.Errorf("write cells: %w", err)
	}
	return bw.Flush()
}
