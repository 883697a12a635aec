package searcher

import "negamax/game"

// Valuation is the negamax value recorded for a root move.
type Valuation struct {
	Move  game.Move
	Value float64
}

// valuations maps root moves to values and remembers the order of first insertion.
type valuations struct {
	index map[game.Move]int
	list  []Valuation
}

func newValuations() *valuations {
	return &valuations{index: make(map[game.Move]int)}
}

// record overwrites any earlier value for move.
func (v *valuations) record(move game.Move, value float64) {
	if i, ok := v.index[move]; ok {
		v.list[i].Value = value
		return
	}
	v.index[move] = len(v.list)
	v.list = append(v.list, Valuation{Move: move, Value: value})
}

func (v *valuations) len() int {
	return len(v.list)
}

// best returns the first move holding the strictly greatest value.
func (v *valuations) best() (game.Move, bool) {
	if len(v.list) == 0 {
		return nil, false
	}
	best := v.list[0]
	for _, entry := range v.list[1:] {
		if entry.Value > best.Value {
			best = entry
		}
	}
	return best.Move, true
}

func (v *valuations) snapshot() []Valuation {
	return append([]Valuation(nil), v.list...)
}
