package agent

import (
	"slices"

	"negamax/game"
	"negamax/searcher"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	side game.Side
	rng  *rand.Rand
}

// NewRandomAgent returns an agent that plays a uniformly random allowed move. It serves as a
// baseline opponent in self-play experiments.
func NewRandomAgent(side game.Side, seed uint64) Agent {
	return &randomAgent{side: side, rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) Side() game.Side {
	return a.side
}

func (a *randomAgent) FindMove(state game.State) (game.Move, searcher.SearchMetric, bool) {
	moves := slices.Collect(state.AllowedMoves(a.side))
	if len(moves) == 0 {
		return nil, searcher.SearchMetric{}, false
	}
	return moves[a.rng.Intn(len(moves))], searcher.SearchMetric{}, true
}
