package agent

import (
	"negamax/game"
	"negamax/searcher"
)

type negamaxAgent struct {
	negamax *searcher.Negamax
}

// NewNegamaxAgent returns an agent that plays the best move found by a full negamax search.
func NewNegamaxAgent(negamax *searcher.Negamax) Agent {
	return negamaxAgent{negamax: negamax}
}

func (a negamaxAgent) Side() game.Side {
	return a.negamax.Side()
}

func (a negamaxAgent) FindMove(state game.State) (game.Move, searcher.SearchMetric, bool) {
	a.negamax.Search(state)
	move, ok := a.negamax.BestMove()
	return move, a.negamax.Metrics(), ok
}
