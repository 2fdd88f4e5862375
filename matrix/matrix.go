// Package matrix manages matrices of symbolic integer polynomials.
package matrix

import (
	"fmt"
	"strings"

	"zappem.net/pub/math/symint/numeric"
	"zappem.net/pub/math/symint/shape"
	"zappem.net/pub/math/symint/terms"
)

type Matrix[I numeric.Identifier, C numeric.Coefficient, P numeric.Power] struct {
	// row count and col count
	rows, cols int
	// The matrix elements arranged, [r=0,c=0], [0,1], [0,2] ...
	data []terms.Polynomial[I, C, P]
}

// NewMatrix creates a rows x cols matrix of zeros.
func NewMatrix[I numeric.Identifier, C numeric.Coefficient, P numeric.Power](rows, cols int) (*Matrix[I, C, P], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("need positive dimensions, not %dx%d", rows, cols)
	}
	m := &Matrix[I, C, P]{
		rows: rows,
		cols: cols,
		data: make([]terms.Polynomial[I, C, P], rows*cols),
	}
	return m, nil
}

// Identity returns a square identity matrix of dimension n.
func Identity[I numeric.Identifier, C numeric.Coefficient, P numeric.Power](n int) (*Matrix[I, C, P], error) {
	if n <= 0 {
		return nil, fmt.Errorf("invalid identity matrix of dimension n=%d", n)
	}
	m, _ := NewMatrix[I, C, P](n, n)
	for i := 0; i < n; i++ {
		m.data[i*(n+1)] = terms.Constant[I, C, P](1)
	}
	return m, nil
}

// String serializes a matrix for displaying.
func (m *Matrix[I, C, P]) String() string {
	var rs []string
	for r := 0; r < m.rows; r++ {
		var cs []string
		for c := 0; c < m.cols; c++ {
			cs = append(cs, m.data[c+m.cols*r].String())
		}
		rs = append(rs, "["+strings.Join(cs, ", ")+"]")
	}
	return "[" + strings.Join(rs, ", ") + "]"
}

// Shape returns the constant shape of m.
func (m *Matrix[I, C, P]) Shape() *shape.Shape[I, C, P] {
	return shape.New(terms.Constant[I, C, P](C(m.rows)), terms.Constant[I, C, P](C(m.cols)))
}

// Set sets the value of a matrix element.
func (m *Matrix[I, C, P]) Set(row, col int, p terms.Polynomial[I, C, P]) error {
	if row < 0 || col < 0 || row >= m.rows || col >= m.cols {
		return fmt.Errorf("bad cell: [%d,%d] in %dx%d matrix", row, col, m.rows, m.cols)
	}
	m.data[col+m.cols*row] = p
	return nil
}

// El returns the row,col element of the matrix.
func (m *Matrix[I, C, P]) El(row, col int) terms.Polynomial[I, C, P] {
	return m.data[col+m.cols*row]
}

// Transpose returns the transpose of a specified matrix.
func (m *Matrix[I, C, P]) Transpose() *Matrix[I, C, P] {
	n, _ := NewMatrix[I, C, P](m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			n.Set(j, i, m.El(i, j))
		}
	}
	return n
}

// Mul multiplies m x n with conventional matrix multiplication.
func (m *Matrix[I, C, P]) Mul(n *Matrix[I, C, P]) (*Matrix[I, C, P], error) {
	if _, err := m.Shape().MatMul(n.Shape()); err != nil {
		return nil, err
	}
	a, _ := NewMatrix[I, C, P](m.rows, n.cols)
	for r := 0; r < a.rows; r++ {
		for c := 0; c < a.cols; c++ {
			var e terms.Polynomial[I, C, P]
			for i := 0; i < m.cols; i++ {
				e = e.Add(m.El(r, i).Mul(n.El(i, c)))
			}
			a.Set(r, c, e)
		}
	}
	return a, nil
}

// Mx multiplies two matrices and panics on error.
func (m *Matrix[I, C, P]) Mx(n *Matrix[I, C, P]) *Matrix[I, C, P] {
	a, err := m.Mul(n)
	if err != nil {
		panic(err)
	}
	return a
}

// Sum returns m + scale*n.
func (m *Matrix[I, C, P]) Sum(n *Matrix[I, C, P], scale terms.Polynomial[I, C, P]) (*Matrix[I, C, P], error) {
	if m.rows != n.rows || m.cols != n.cols {
		return nil, fmt.Errorf("inequivalent dimensions %dx%d != %dx%d", m.rows, m.cols, n.rows, n.cols)
	}
	a, _ := NewMatrix[I, C, P](m.rows, m.cols)
	for i, p := range m.data {
		a.data[i] = p.Add(n.data[i].Mul(scale))
	}
	return a, nil
}

// Add adds two matrices, and panics on error.
func (m *Matrix[I, C, P]) Add(n *Matrix[I, C, P], scale terms.Polynomial[I, C, P]) *Matrix[I, C, P] {
	a, err := m.Sum(n, scale)
	if err != nil {
		panic(err)
	}
	return a
}

// Replace substitutes the polynomial q for the identifier id in all
// elements of a matrix.
func (m *Matrix[I, C, P]) Replace(id I, q terms.Polynomial[I, C, P]) *Matrix[I, C, P] {
	n, _ := NewMatrix[I, C, P](m.rows, m.cols)
	for i, p := range m.data {
		n.data[i] = p.Replace(id, q)
	}
	return n
}

// Eval evaluates every element, returning the values row by row.
func (m *Matrix[I, C, P]) Eval(values terms.Values[I, C]) ([][]C, error) {
	vs := make([][]C, m.rows)
	for r := range vs {
		vs[r] = make([]C, m.cols)
		for c := range vs[r] {
			v, err := m.El(r, c).Eval(values)
			if err != nil {
				return nil, fmt.Errorf("cell [%d,%d]: %w", r, c, err)
			}
			vs[r][c] = v
		}
	}
	return vs, nil
}
