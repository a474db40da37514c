package mc

import (
	"github.com/banachtech/frontier/linalg"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/distuv"
)

// drawer fills w with a point on the unit simplex.
type drawer interface {
	draw(w linalg.Vector)
}

type uniformDrawer struct {
	u distuv.Uniform
}

func (d uniformDrawer) draw(w linalg.Vector) {
	for {
		for i := range w {
			w[i] = d.u.Rand()
		}
		// all-zero draw, try again
		if w.Normalize() {
			return
		}
	}
}

type dirichletDrawer struct {
	d *distmv.Dirichlet
}

func (d dirichletDrawer) draw(w linalg.Vector) {
	for {
		d.d.Rand(w)
		if w.Normalize() {
			return
		}
	}
}

func newDrawer(method Method, n int, src rand.Source) drawer {
	if method == MethodDirichlet {
		alpha := make([]float64, n)
		for i := range alpha {
			alpha[i] = 1
		}
		return dirichletDrawer{d: distmv.NewDirichlet(alpha, src)}
	}
	return uniformDrawer{u: distuv.Uniform{Min: 0, Max: 1, Src: src}}
}
