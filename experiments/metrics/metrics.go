package metrics

import (
	"time"

	"negamax/searcher"
)

type AgentConfig struct {
	ID      int
	Kind    string // negamax or random
	Cutoff  int    // 0 for the searcher's default
	Pruning bool   // Opponent-win pruning
	Seed    uint64 // Random agents only
}

const (
	NegamaxAgent = "negamax"
	RandomAgent  = "random"
)

type MoveMetric struct {
	Step   int
	Player string
	Move   string
	searcher.SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // "" for a draw
	Forfeit        string // Player that had no move, if any
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID
	Agent2 int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}
