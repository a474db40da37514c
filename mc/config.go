package mc

// Method selects how random weight vectors are drawn from the simplex.
type Method string

const (
	// normalized independent Uniform[0,1) draws
	MethodUniform Method = "uniform"
	// Dirichlet(1,…,1)
	MethodDirichlet Method = "dirichlet"
)

const DefaultIterations = 5000

// Config controls a Sampler. The zero value is usable: Workers below 1 run
// on a single goroutine and an empty Method means MethodUniform.
type Config struct {
	Iterations   int     `yaml:"iterations" default:"5000" validate:"gte=0"`
	Seed         uint64  `yaml:"seed"`
	Workers      int     `yaml:"workers" default:"1" validate:"gte=1,lte=256"`
	Method       Method  `yaml:"method" default:"uniform" validate:"oneof=uniform dirichlet"`
	RiskFreeRate float64 `yaml:"risk_free_rate"`
	Progress     bool    `yaml:"progress"`
}
