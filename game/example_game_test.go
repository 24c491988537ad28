package game_test

import (
	"fmt"

	"github.com/plus3/blockfall/game"
)

// declarationOrder deals pieces as I, O, T, J, L, S, Z without shuffling.
type declarationOrder struct{}

func (declarationOrder) Shuffle(n int, swap func(i, j int)) {}

// ExampleGame shows the shell's view of a game: deliver inputs and ticks,
// then read the state back once per frame.
func ExampleGame() {
	g, err := game.New(game.DefaultConfig(), game.WithSource(declarationOrder{}))
	if err != nil {
		panic(err)
	}

	g.Subscribe(func(e game.Event) {
		if e.Kind == game.EventLocked {
			fmt.Printf("locked %s\n", e.Piece.Kind)
		}
	})

	g.OnInput(game.Left)
	g.OnInput(game.HardDrop)
	g.OnTick(2)

	active, _ := g.Active()
	fmt.Printf("state=%s score=%d active=%s y=%d next=%s\n",
		g.State(), g.Score(), active.Kind, active.Y, g.Preview().Kind)

	// Output:
	// locked I
	// state=Moving score=0 active=O y=2 next=T
}
