package linalg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVectorDotAndNormalize(t *testing.T) {
	v := NewVector([]float64{1, 2, 3})
	require.InDelta(t, 14.0, v.Dot(v), 1e-12)

	ok := v.Normalize()
	require.True(t, ok)
	require.InDelta(t, 1.0, v.Sum(), 1e-12)
	require.InDelta(t, 1.0/6.0, v[0], 1e-12)

	zero := Vector{0, 0}
	require.False(t, zero.Normalize())
	require.Equal(t, Vector{0, 0}, zero)
}

func TestVectorScaleCopies(t *testing.T) {
	v := Vector{1, -2}
	s := v.Scale(3)
	require.Equal(t, Vector{3, -6}, s)
	require.Equal(t, Vector{1, -2}, v)
}

func TestFromRows(t *testing.T) {
	for _, test := range []struct {
		name    string
		rows    [][]float64
		wantErr bool
	}{
		{name: "SYMMETRIC", rows: [][]float64{{2, 1}, {1, 3}}},
		{name: "ASYMMETRIC", rows: [][]float64{{2, 1}, {0.5, 3}}, wantErr: true},
		{name: "RAGGED", rows: [][]float64{{2, 1}, {1}}, wantErr: true},
	} {
		t.Run(test.name, func(t *testing.T) {
			m, err := FromRows(test.rows, 1e-12)
			if test.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, 2, m.Dim())
			require.True(t, m.IsSymmetric(0))
			require.Equal(t, test.rows, m.Rows())
		})
	}
}

func TestQuadForm(t *testing.T) {
	m, err := FromRows([][]float64{{0.04, 0.01}, {0.01, 0.09}}, 0)
	require.NoError(t, err)

	w := Vector{0.5, 0.5}
	want := 0.25*0.04 + 2*0.25*0.01 + 0.25*0.09
	require.InDelta(t, want, m.QuadForm(w), 1e-15)

	require.Panics(t, func() { m.QuadForm(Vector{1}) })
}

func TestScaleAndDiag(t *testing.T) {
	m, err := FromRows([][]float64{{1, 2}, {2, 5}}, 0)
	require.NoError(t, err)

	s := m.Scale(252)
	require.Equal(t, Vector{252, 1260}, s.Diag())
	require.Equal(t, 504.0, s.At(1, 0))
	require.Equal(t, 1.0, m.At(0, 0))
	require.False(t, math.IsNaN(s.At(0, 1)))
}

func TestEmptyMatrix(t *testing.T) {
	m := NewSymMatrix(0)
	require.Equal(t, 0, m.Dim())
	require.Equal(t, 0.0, m.QuadForm(Vector{}))
	require.True(t, m.IsSymmetric(0))
}
