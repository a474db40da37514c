package util

import (
	"math"
	"strings"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Random produces reproducible synthetic market data.
type Random struct {
	src rand.Source
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	src := rand.NewSource(seed)
	return &Random{src: src, rng: rand.New(src)}
}

// RandomString generates a random string of length n
func (r *Random) RandomString(n int) string {
	var sb strings.Builder
	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[r.rng.Intn(k)]
		sb.WriteByte(c)
	}

	return sb.String()
}

// RandomStock generates a random four letter ticker
func (r *Random) RandomStock() string {
	return strings.ToUpper(r.RandomString(4))
}

// RandomWalk simulates n daily closes of a geometric Brownian motion
// starting at p0 with annual drift mu and volatility sigma.
func (r *Random) RandomWalk(n int, p0, mu, sigma float64) []float64 {
	if n <= 0 {
		return nil
	}
	dt := 1.0 / 252
	z := distuv.Normal{Mu: 0, Sigma: 1, Src: r.src}
	px := make([]float64, n)
	px[0] = p0
	for i := 1; i < n; i++ {
		px[i] = px[i-1] * math.Exp((mu-0.5*sigma*sigma)*dt+sigma*math.Sqrt(dt)*z.Rand())
	}
	return px
}

// BusinessDays returns n consecutive weekdays starting on or after start.
func BusinessDays(start time.Time, n int) []time.Time {
	out := make([]time.Time, 0, n)
	for d := start; len(out) < n; d = d.AddDate(0, 0, 1) {
		if d.Weekday() != time.Saturday && d.Weekday() != time.Sunday {
			out = append(out, d)
		}
	}
	return out
}
