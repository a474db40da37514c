package mc

import (
	"context"
	"fmt"
	"time"

	"github.com/banachtech/frontier/linalg"

	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

// samples are drawn in fixed-size blocks, each from its own source, so a
// seeded run gives the same output whatever the worker count
const blockSize = 256

// golden-ratio increment used to spread block seeds
const seedStride = 0x9e3779b97f4a7c15

// Sampler runs the Monte Carlo search over long-only portfolios.
type Sampler struct {
	cfg Config
}

func NewSampler(cfg Config) *Sampler {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.Method == "" {
		cfg.Method = MethodUniform
	}
	return &Sampler{cfg: cfg}
}

func (s *Sampler) Config() Config {
	return s.cfg
}

// Sample draws iterations random weight vectors and evaluates each against
// the annualized returns and covariance. Samples come back in draw order.
// Zero iterations yield an empty, non-nil slice.
func (s *Sampler) Sample(ctx context.Context, returns linalg.Vector, cov linalg.SymMatrix, symbols []string, iterations int) ([]PortfolioSample, error) {
	n := len(symbols)
	if iterations < 0 {
		return nil, fmt.Errorf("iterations must be non-negative, got %d", iterations)
	}
	if s.cfg.Method != MethodUniform && s.cfg.Method != MethodDirichlet {
		return nil, fmt.Errorf("unknown sampling method %q", s.cfg.Method)
	}
	if returns.Len() != n || cov.Dim() != n {
		return nil, fmt.Errorf("dimension mismatch: %d symbols, %d returns, %dx%d covariance", n, returns.Len(), cov.Dim(), cov.Dim())
	}
	out := make([]PortfolioSample, iterations)
	if iterations == 0 {
		return out, nil
	}
	if n == 0 {
		return nil, fmt.Errorf("no instruments to sample")
	}

	seed := s.cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	var bar interface{ Add(int) error }
	if s.cfg.Progress {
		pb := progressBar(iterations)
		defer pb.Finish()
		bar = pb
	}

	blocks := (iterations + blockSize - 1) / blockSize
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Workers)
	for b := 0; b < blocks; b++ {
		b := b
		g.Go(func() error {
			lo := b * blockSize
			hi := lo + blockSize
			if hi > iterations {
				hi = iterations
			}
			d := newDrawer(s.cfg.Method, n, rand.NewSource(seed+uint64(b)*seedStride))
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				w := make(linalg.Vector, n)
				d.draw(w)
				out[i] = evaluate(w, returns, cov, s.cfg.RiskFreeRate, symbols)
			}
			if bar != nil {
				_ = bar.Add(hi - lo)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
