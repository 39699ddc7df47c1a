package mines

import (
	"hash/maphash"
	"math/rand/v2"
)

// Bernoulli draws true with probability num/den, 0 <= num <= den, den >= 1.
type Bernoulli interface {
	Bernoulli(num, den int) bool
}

type randSource struct {
	r *rand.Rand
}

func NewRand(r *rand.Rand) Bernoulli {
	return randSource{r}
}

func (s randSource) Bernoulli(num, den int) bool {
	if num <= 0 {
		return false
	}
	if num >= den {
		return true
	}
	return s.r.IntN(den) < num
}

// CreateRand returns a PCG generator seeded from the runtime hash seed.
func CreateRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}
