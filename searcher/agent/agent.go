package agent

import (
	"negamax/game"
	"negamax/searcher"
)

type Agent interface {
	Side() game.Side
	// FindMove returns the chosen move and the search metrics (if collected). It reports false
	// when the side has no move, which forfeits the game.
	FindMove(state game.State) (game.Move, searcher.SearchMetric, bool)
}
