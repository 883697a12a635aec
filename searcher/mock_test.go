package searcher

import (
	"fmt"
	"iter"

	"negamax/game"
)

type mockMove struct {
	id int
}

func (m mockMove) String() string {
	return fmt.Sprintf("m%d", m.id)
}

// mockNode is a game tree node. Leaves carry a score from Plus's perspective.
type mockNode struct {
	score    float64
	children []*mockNode
}

func leaf(score float64) *mockNode {
	return &mockNode{score: score}
}

func node(children ...*mockNode) *mockNode {
	return &mockNode{children: children}
}

func leaves(scores ...float64) *mockNode {
	n := &mockNode{}
	for _, s := range scores {
		n.children = append(n.children, leaf(s))
	}
	return n
}

// mockState walks a fixed tree. It records every mutation and the depths handed to Score.
type mockState struct {
	path        []*mockNode
	moves       int
	undos       int
	scoreDepths []int
	winners     map[*mockNode]bool // Nodes where the side to move can win at once
}

func newMockState(root *mockNode) *mockState {
	return &mockState{path: []*mockNode{root}}
}

func (m *mockState) current() *mockNode {
	return m.path[len(m.path)-1]
}

func (m *mockState) AllowedMoves(side game.Side) iter.Seq[game.Move] {
	return func(yield func(game.Move) bool) {
		for i := range m.current().children {
			if !yield(mockMove{id: i}) {
				return
			}
		}
	}
}

func (m *mockState) Move(side game.Side, move game.Move, enqueue bool) {
	m.moves++
	m.path = append(m.path, m.current().children[move.(mockMove).id])
}

func (m *mockState) Undo() {
	if len(m.path) == 1 {
		return
	}
	m.undos++
	m.path = m.path[:len(m.path)-1]
}

func (m *mockState) Other(side game.Side) game.Side {
	return side.Other()
}

func (m *mockState) Score(side game.Side, depth int) float64 {
	m.scoreDepths = append(m.scoreDepths, depth)
	return m.current().score * float64(side.Weight())
}

func (m *mockState) IsOver() bool {
	return len(m.current().children) == 0
}

func (m *mockState) IsWinner(side game.Side) bool {
	return false
}

// mockWinState adds the optional WinChecker capability.
type mockWinState struct {
	*mockState
}

func (m mockWinState) CanWin(side game.Side) bool {
	return m.winners[m.current()]
}
