package engine

import (
	"time"

	"negamax/experiments/metrics"
	"negamax/game"
	"negamax/searcher/agent"

	"github.com/rs/zerolog/log"
)

type Player struct {
	Name  string
	Agent agent.Agent
}

type LocalEngine struct {
	State   game.State
	Players [2]Player
}

// Local returns an engine that alternates the two players on state, players[0] first.
func Local(state game.State, players [2]Player) *LocalEngine {
	if players[0].Agent == nil || players[1].Agent == nil {
		panic("both players need an agent")
	}
	if players[0].Agent.Side() == players[1].Agent.Side() {
		panic("players must play opposite sides")
	}
	return &LocalEngine{
		State:   state,
		Players: players,
	}
}

// Run executes the game loop. Moves are applied without enqueueing, so the state's undo history
// is left to the agents' searches.
func (e *LocalEngine) Run() (metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.Players[0].Name,
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("%s is starting", e.Players[0].Name)

	for step := 1; !e.State.IsOver() && step <= MaxMoves; step++ {
		player := e.Players[(step-1)%2]
		side := player.Agent.Side()

		move, searchMetric, ok := player.Agent.FindMove(e.State)
		if !ok {
			log.Debug().Msgf("%s forfeits at step %d", player.Name, step)
			gameMetric.Forfeit = player.Name
			break
		}
		e.State.Move(side, move, false)
		gameMetric.TotalMoves = step
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player.Name,
			Move:         move.String(),
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("step %d: %s played %v", step, player.Name, move)

		if e.State.IsWinner(side) {
			gameMetric.Winner = player.Name
			break
		}
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	if gameMetric.Winner != "" {
		log.Debug().Msgf("game ended due to a winner: %s", gameMetric.Winner)
	} else {
		log.Debug().Msgf("game ended without a winner after %d moves", gameMetric.TotalMoves)
	}
	return gameMetric, moveMetrics
}
