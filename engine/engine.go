package engine

import "negamax/experiments/metrics"

// MaxMoves bounds a game in case a state never reports it is over
const MaxMoves = 1000

type Engine interface {
	// Run plays a game till it is over, a player forfeits or MaxMoves is reached
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
