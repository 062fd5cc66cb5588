package game

import "math/rand/v2"

// Random is the engine's source of randomness. IntRange is inclusive on both ends;
// Float64Range returns values within [min, max].
type Random interface {
	IntRange(min, max int) int
	Float64Range(min, max float64) float64
}

type pcgRandom struct {
	r *rand.Rand
}

// NewRandom returns a deterministic Random seeded with seed.
func NewRandom(seed uint64) Random {
	return &pcgRandom{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (p *pcgRandom) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + p.r.IntN(max-min+1)
}

func (p *pcgRandom) Float64Range(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + p.r.Float64()*(max-min)
}
