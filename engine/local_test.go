package engine

import (
	"iter"
	"testing"

	"negamax/game"
	"negamax/game/tictactoe"
	"negamax/searcher"
	"negamax/searcher/agent"

	"github.com/stretchr/testify/require"
)

const (
	X = tictactoe.X
	O = tictactoe.O
)

func negamaxPlayer(name string, side game.Side, options ...searcher.Option) Player {
	return Player{Name: name, Agent: agent.NewNegamaxAgent(searcher.NewNegamax(side, options...))}
}

func TestLocal(t *testing.T) {
	t.Run("panics when both players share a side", func(t *testing.T) {
		require.Panics(t, func() {
			Local(tictactoe.New(), [2]Player{negamaxPlayer("a", X), negamaxPlayer("b", X)})
		})
	})

	t.Run("panics without an agent", func(t *testing.T) {
		require.Panics(t, func() {
			Local(tictactoe.New(), [2]Player{negamaxPlayer("a", X), {Name: "b"}})
		})
	})
}

func TestLocalRun(t *testing.T) {
	t.Run("negamax against itself draws", func(t *testing.T) {
		g := tictactoe.New()
		e := Local(g, [2]Player{
			negamaxPlayer("X", X, searcher.WithMetrics()),
			negamaxPlayer("O", O, searcher.WithOpponentWinPruning()),
		})

		gameMetric, moveMetrics := e.Run()

		require.Empty(t, gameMetric.Winner, "Optimal play should end in a draw")
		require.Empty(t, gameMetric.Forfeit)
		require.Equal(t, "X", gameMetric.StartingPlayer)
		require.Equal(t, 9, gameMetric.TotalMoves)
		require.Len(t, moveMetrics, 9)
		require.Equal(t, "X", moveMetrics[0].Player)
		require.Equal(t, "O", moveMetrics[1].Player)
		require.Equal(t, 9, moveMetrics[0].RootMoves, "First search should see the whole board")
		require.Equal(t, 0, g.History(), "Applied moves should not be enqueued")
		require.True(t, g.IsOver())
	})

	t.Run("negamax never loses to a random player", func(t *testing.T) {
		for seed := uint64(0); seed < 10; seed++ {
			for _, negamaxFirst := range []bool{true, false} {
				players := [2]Player{
					negamaxPlayer("negamax", O),
					{Name: "random", Agent: agent.NewRandomAgent(X, seed)},
				}
				if !negamaxFirst {
					players[0], players[1] = players[1], players[0]
				}

				gameMetric, _ := Local(tictactoe.New(), players).Run()

				require.NotEqual(t, "random", gameMetric.Winner, "seed %d", seed)
			}
		}
	})

	t.Run("stops at the first winning move", func(t *testing.T) {
		g := tictactoe.FromRows([3][3]game.Side{{X, X, tictactoe.Empty}, {O, O, tictactoe.Empty}, {tictactoe.Empty, tictactoe.Empty, tictactoe.Empty}})
		gameMetric, moveMetrics := Local(g, [2]Player{negamaxPlayer("X", X), negamaxPlayer("O", O)}).Run()

		require.Equal(t, "X", gameMetric.Winner)
		require.Len(t, moveMetrics, 1)
		require.Equal(t, "(0, 2)", moveMetrics[0].Move)
	})

	t.Run("a player without moves forfeits", func(t *testing.T) {
		state := &stuckState{}
		gameMetric, moveMetrics := Local(state, [2]Player{negamaxPlayer("X", X), negamaxPlayer("O", O)}).Run()

		require.Equal(t, "X", gameMetric.Forfeit)
		require.Empty(t, gameMetric.Winner)
		require.Empty(t, moveMetrics)
	})
}

// stuckState is never over but offers no moves.
type stuckState struct{}

func (s *stuckState) AllowedMoves(side game.Side) iter.Seq[game.Move] {
	return func(yield func(game.Move) bool) {}
}
func (s *stuckState) Move(game.Side, game.Move, bool) {}
func (s *stuckState) Undo()                           {}
func (s *stuckState) Other(side game.Side) game.Side  { return side.Other() }
func (s *stuckState) Score(game.Side, int) float64    { return 0 }
func (s *stuckState) IsOver() bool                    { return false }
func (s *stuckState) IsWinner(game.Side) bool         { return false }
