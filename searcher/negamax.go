package searcher

import (
	"time"

	"negamax/game"

	"github.com/rs/zerolog/log"
)

type Option func(n *Negamax)

var _ Searcher = (*Negamax)(nil)

// Negamax is a depth-limited negamax search with alpha-beta pruning. It explores a state in place
// through Move/Undo and records the value of every root move it evaluates. An instance holds the
// results of its last search, so it must not run two searches at once.
type Negamax struct {
	side    game.Side
	cutoff  int
	prune   bool
	best    *valuations
	metrics MetricsCollector
	last    SearchMetric
}

func WithCutoff(depth int) Option {
	return func(n *Negamax) {
		if depth > 0 {
			n.cutoff = depth
		}
	}
}

// WithOpponentWinPruning values a move at Loss, without recursing, whenever the opponent can win
// on the very next move. States that do not implement game.WinChecker are searched normally.
func WithOpponentWinPruning() Option {
	return func(n *Negamax) {
		n.prune = true
	}
}

func WithMetrics() Option {
	return func(n *Negamax) {
		n.metrics = NewMetricsCollector()
	}
}

func NewNegamax(side game.Side, options ...Option) *Negamax {
	if side != game.Plus && side != game.Minus {
		panic("searcher must play a non-neutral side")
	}
	n := &Negamax{ // Default values
		side:    side,
		cutoff:  MaxCutoff,
		best:    newValuations(),
		metrics: NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(n)
	}
	return n
}

func (n *Negamax) Side() game.Side {
	return n.side
}

// Search evaluates every move available to the searcher's side from the current state. The state
// is left as it was found.
func (n *Negamax) Search(state game.State) {
	start := time.Now()
	n.best = newValuations()
	n.metrics.Start()

	value := n.negamax(state, 0, Loss, Win, n.side)

	n.last = n.metrics.Complete(n.best.len())
	event := log.Debug().
		Int("side", n.side.Weight()).
		Int("root_moves", n.best.len()).
		Float64("value", value).
		Dur("took", time.Since(start))
	if move, ok := n.best.best(); ok {
		event = event.Stringer("best", move)
	}
	event.Msg("negamax search complete")
}

func (n *Negamax) negamax(state game.State, depth int, alpha, beta float64, side game.Side) float64 {
	if depth > n.cutoff || state.IsOver() {
		n.metrics.AddLeaf()
		return n.perspective(side) * state.Score(n.side, depth+1)
	}
	n.metrics.AddNode()

	value := Loss
	for move := range state.AllowedMoves(side) {
		branch := n.branch(state, move, depth, alpha, beta, side)
		value = max(value, branch)
		if depth == 0 {
			n.best.record(move, branch)
		}
		alpha = max(alpha, branch)
		if alpha >= beta {
			n.metrics.AddCutoff()
			return alpha
		}
	}
	return value
}

// branch plays move for side and returns its value for side. The move is undone on every path.
func (n *Negamax) branch(state game.State, move game.Move, depth int, alpha, beta float64, side game.Side) float64 {
	state.Move(side, move, true)
	defer state.Undo()

	next := state.Other(side)
	if n.prune && canWin(state, next) {
		n.metrics.AddPruned()
		return Loss
	}
	return -n.negamax(state, depth+1, -beta, -alpha, next)
}

// perspective turns a score for the searcher's side into a score for side.
func (n *Negamax) perspective(side game.Side) float64 {
	return float64(side.Weight() * n.side.Weight())
}

func canWin(state game.State, side game.Side) bool {
	checker, ok := state.(game.WinChecker)
	return ok && checker.CanWin(side)
}

// BestMove returns the root move with the greatest value from the last search, the earliest
// offered move on ties. It reports false when there was no move to make.
func (n *Negamax) BestMove() (game.Move, bool) {
	return n.best.best()
}

// Valuations returns the root moves of the last search in the order they were offered.
func (n *Negamax) Valuations() []Valuation {
	return n.best.snapshot()
}

// Metrics returns the counters of the last search. They are zero unless WithMetrics was given.
func (n *Negamax) Metrics() SearchMetric {
	return n.last
}
