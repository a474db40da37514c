package linalg

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// SymMatrix is a square symmetric matrix. Only the upper triangle is stored,
// so At(i, j) and At(j, i) always return the same value.
type SymMatrix struct {
	sym *mat.SymDense
}

// NewSymMatrix returns an n×n zero matrix.
func NewSymMatrix(n int) SymMatrix {
	if n == 0 {
		return SymMatrix{}
	}
	return SymMatrix{sym: mat.NewSymDense(n, nil)}
}

// FromSymDense wraps an existing gonum symmetric matrix without copying.
func FromSymDense(s *mat.SymDense) SymMatrix {
	return SymMatrix{sym: s}
}

// FromRows builds a SymMatrix from a square row-major table. Off-diagonal
// pairs must agree within tol, otherwise an error is returned.
func FromRows(rows [][]float64, tol float64) (SymMatrix, error) {
	n := len(rows)
	m := NewSymMatrix(n)
	for i := 0; i < n; i++ {
		if len(rows[i]) != n {
			return SymMatrix{}, fmt.Errorf("row %d has %d columns, expected %d", i, len(rows[i]), n)
		}
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if math.Abs(rows[i][j]-rows[j][i]) > tol {
				return SymMatrix{}, fmt.Errorf("matrix is not symmetric at (%d,%d): %v != %v", i, j, rows[i][j], rows[j][i])
			}
			m.SetSym(i, j, rows[i][j])
		}
	}
	return m, nil
}

func (m SymMatrix) Dim() int {
	if m.sym == nil {
		return 0
	}
	return m.sym.SymmetricDim()
}

func (m SymMatrix) At(i, j int) float64 {
	return m.sym.At(i, j)
}

// SetSym sets both (i,j) and (j,i).
func (m SymMatrix) SetSym(i, j int, v float64) {
	m.sym.SetSym(i, j, v)
}

// Scale returns a copy of m multiplied by c.
func (m SymMatrix) Scale(c float64) SymMatrix {
	n := m.Dim()
	if n == 0 {
		return SymMatrix{}
	}
	out := mat.NewSymDense(n, nil)
	out.ScaleSym(c, m.sym)
	return SymMatrix{sym: out}
}

// QuadForm returns wᵀ·M·w.
func (m SymMatrix) QuadForm(w Vector) float64 {
	if len(w) != m.Dim() {
		panic(fmt.Sprintf("linalg: vector length %d does not match matrix dimension %d", len(w), m.Dim()))
	}
	if len(w) == 0 {
		return 0
	}
	x := mat.NewVecDense(len(w), w)
	return mat.Inner(x, m.sym, x)
}

// Diag returns the diagonal as a Vector.
func (m SymMatrix) Diag() Vector {
	n := m.Dim()
	d := make(Vector, n)
	for i := 0; i < n; i++ {
		d[i] = m.sym.At(i, i)
	}
	return d
}

// IsSymmetric reports whether every mirrored pair agrees within tol.
func (m SymMatrix) IsSymmetric(tol float64) bool {
	n := m.Dim()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(m.At(i, j)-m.At(j, i)) > tol {
				return false
			}
		}
	}
	return true
}

// Rows returns a row-major copy of the matrix.
func (m SymMatrix) Rows() [][]float64 {
	n := m.Dim()
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
		for j := range out[i] {
			out[i][j] = m.At(i, j)
		}
	}
	return out
}

// SymDense exposes the underlying gonum matrix.
func (m SymMatrix) SymDense() *mat.SymDense {
	return m.sym
}
