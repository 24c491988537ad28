package sim

import (
	"math/rand/v2"

	"github.com/plus3/blockfall/game"
)

type weightedInput struct {
	input  game.Input
	weight int
}

// The autoplayer mostly shuffles pieces sideways and turns them, letting
// gravity do the rest.
var inputWeights = []weightedInput{
	{game.Left, 30},
	{game.Right, 30},
	{game.Rotate, 20},
	{game.SoftDrop, 15},
	{game.HardDrop, 5},
}

// Autoplayer picks random gameplay inputs from a seeded generator.
type Autoplayer struct {
	rng   *rand.Rand
	total int
}

func NewAutoplayer(seed uint64) *Autoplayer {
	total := 0
	for _, w := range inputWeights {
		total += w.weight
	}
	return &Autoplayer{
		rng:   rand.New(rand.NewPCG(seed, 0x5eed)),
		total: total,
	}
}

// Next returns the next input to deliver.
func (a *Autoplayer) Next() game.Input {
	n := a.rng.IntN(a.total)
	for _, w := range inputWeights {
		if n < w.weight {
			return w.input
		}
		n -= w.weight
	}
	return game.SoftDrop
}
