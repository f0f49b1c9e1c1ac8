// Package matrix holds the numeric parameter matrices for the engine:
// flat float64 slices with explicit shape metadata, bounds-checked on
// every access.
package matrix

import (
	"fmt"
	"slices"
)

// Matrix is a dense rows x cols float64 matrix backed by a flat slice.
type Matrix struct {
	rows, cols int
	data       []float64
}

// NewMatrix creates a zero-filled rows x cols matrix.
func NewMatrix(rows, cols int) *Matrix {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("matrix: negative dimensions %dx%d", rows, cols))
	}
	return &Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// FromRows creates a matrix from row slices. All rows must have the
// same length.
func FromRows(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 {
		return &Matrix{}, nil
	}
	cols := len(rows[0])
	m := NewMatrix(len(rows), cols)
	for i, r := range rows {
		if len(r) != cols {
			return nil, fmt.Errorf("row %d has %d columns, want %d", i, len(r), cols)
		}
		copy(m.data[i*cols:(i+1)*cols], r)
	}
	return m, nil
}

// Dims returns the matrix shape.
func (m *Matrix) Dims() (rows, cols int) {
	return m.rows, m.cols
}

func (m *Matrix) check(r, c int) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		panic(fmt.Sprintf("matrix: index (%d, %d) out of %dx%d", r, c, m.rows, m.cols))
	}
}

// At returns the entry at (r, c).
func (m *Matrix) At(r, c int) float64 {
	m.check(r, c)
	return m.data[r*m.cols+c]
}

// Set writes the entry at (r, c) without a range guard. Callers that
// must preserve the probability invariant use SetProb.
func (m *Matrix) Set(r, c int, v float64) {
	m.check(r, c)
	m.data[r*m.cols+c] = v
}

// SetProb writes a probability entry, failing if v lies outside [0, 1].
func (m *Matrix) SetProb(r, c int, v float64) error {
	if v < 0 || v > 1 {
		return &InvalidProbabilityError{Value: v}
	}
	m.Set(r, c, v)
	return nil
}

// Row returns a copy of row r.
func (m *Matrix) Row(r int) []float64 {
	m.check(r, 0)
	return slices.Clone(m.data[r*m.cols : (r+1)*m.cols])
}

// Rows returns a copy of the full matrix as row slices.
func (m *Matrix) Rows() [][]float64 {
	out := make([][]float64, m.rows)
	for r := 0; r < m.rows; r++ {
		out[r] = m.Row(r)
	}
	return out
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{rows: m.rows, cols: m.cols, data: slices.Clone(m.data)}
}

// InUnitInterval reports whether every entry lies in [0, 1].
func (m *Matrix) InUnitInterval() bool {
	for _, v := range m.data {
		if v < 0 || v > 1 {
			return false
		}
	}
	return true
}
