package searcher

import "negamax/game"

// Search window bounds. Any real score lies strictly inside them.
const (
	Loss = -1000.0
	Win  = -Loss
)

// MaxCutoff is the default recursion depth past which states are scored without expansion.
const MaxCutoff = 10

type Searcher interface {
	Search(state game.State)
	BestMove() (game.Move, bool)
}
