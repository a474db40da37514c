package linalg

import (
	"gonum.org/v1/gonum/floats"
)

// Vector is a dense column of float64 values indexed by instrument.
type Vector []float64

// NewVector copies x into a new Vector.
func NewVector(x []float64) Vector {
	v := make(Vector, len(x))
	copy(v, x)
	return v
}

func (v Vector) Len() int {
	return len(v)
}

// Dot returns the inner product of v and u. It panics if the lengths differ.
func (v Vector) Dot(u Vector) float64 {
	return floats.Dot(v, u)
}

func (v Vector) Sum() float64 {
	return floats.Sum(v)
}

// Scale returns a copy of v multiplied by c.
func (v Vector) Scale(c float64) Vector {
	out := NewVector(v)
	floats.Scale(c, out)
	return out
}

// Normalize divides every element by the sum of the vector in place.
// A zero sum leaves the vector untouched and returns false.
func (v Vector) Normalize() bool {
	s := v.Sum()
	if s == 0 {
		return false
	}
	for i := range v {
		v[i] /= s
	}
	return true
}
