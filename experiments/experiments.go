package experiments

import (
	"context"
	"fmt"

	"negamax/engine"
	"negamax/experiments/metrics"
	"negamax/game"
	"negamax/game/tictactoe"
	"negamax/searcher"
	"negamax/searcher/agent"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

const Name = "selfplay"

type Config struct {
	Games     int    // Per match up
	OutputDir string // Root folder for CSV records, none written when empty
	Seed      uint64 // Base seed for random agents
	Cutoff    int    // Search cutoff for negamax agents, 0 for the default
}

type MatchUpSummary struct {
	Agent1     metrics.AgentConfig
	Agent2     metrics.AgentConfig
	Agent1Wins int
	Agent2Wins int
	Draws      int
	Forfeits   int
}

// Configs lists the agents taking part in the self-play experiment.
func Configs(cfg Config) []metrics.AgentConfig {
	return []metrics.AgentConfig{
		{ID: 1, Kind: metrics.NegamaxAgent, Cutoff: cfg.Cutoff},
		{ID: 2, Kind: metrics.NegamaxAgent, Cutoff: cfg.Cutoff, Pruning: true},
		{ID: 3, Kind: metrics.RandomAgent, Seed: cfg.Seed},
	}
}

// MatchUps pairs both negamax policies with each other and with the random baseline.
func MatchUps(configs []metrics.AgentConfig) [][2]metrics.AgentConfig {
	plain, pruning, random := configs[0], configs[1], configs[2]
	return [][2]metrics.AgentConfig{
		{plain, pruning},
		{plain, random},
		{pruning, random},
	}
}

// Run plays every match up cfg.Games times, alternating who starts, and stores the records under
// cfg.OutputDir.
func Run(ctx context.Context, cfg Config) ([]MatchUpSummary, error) {
	configs := Configs(cfg)
	matchUps := MatchUps(configs)

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	summaries := make([]MatchUpSummary, 0, len(matchUps))

	log.Info().Msgf("starting %s experiment...", Name)

	for mi, matchUp := range matchUps {
		config1, config2 := matchUp[0], matchUp[1]
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		first := len(gameRecords)
		for i := 0; i < cfg.Games; i++ {
			if err := ctx.Err(); err != nil {
				return summaries, fmt.Errorf("experiment interrupted: %w", err)
			}

			count++
			gameMetric, moveMetrics := runGame(config1, config2, i)
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}
			log.Debug().Msgf("completed matchup %d game %d with winner: %q", mi+1, i+1, gameMetric.Winner)
		}

		summary := summarize(config1, config2, gameRecords[first:])
		summaries = append(summaries, summary)
		log.Info().Msgf("completed matchup %d of %d: %d-%d with %d draws", mi+1, len(matchUps), summary.Agent1Wins, summary.Agent2Wins, summary.Draws)
	}

	log.Info().Msgf("completed %s experiment", Name)

	if cfg.OutputDir == "" {
		return summaries, nil
	}
	return summaries, store(cfg.OutputDir, configs, gameRecords, moveRecords)
}

func store(root string, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(root, Name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored records in %s", writer.Dir())
	return nil
}

func summarize(config1, config2 metrics.AgentConfig, records []metrics.GameRecord) MatchUpSummary {
	return MatchUpSummary{
		Agent1: config1,
		Agent2: config2,
		Agent1Wins: lo.CountBy(records, func(r metrics.GameRecord) bool {
			return r.Winner == playerName(config1, 1)
		}),
		Agent2Wins: lo.CountBy(records, func(r metrics.GameRecord) bool {
			return r.Winner == playerName(config2, 2)
		}),
		Draws: lo.CountBy(records, func(r metrics.GameRecord) bool {
			return r.Winner == "" && r.Forfeit == ""
		}),
		Forfeits: lo.CountBy(records, func(r metrics.GameRecord) bool {
			return r.Forfeit != ""
		}),
	}
}

func playerName(config metrics.AgentConfig, slot int) string {
	return fmt.Sprintf("agent%d:%s#%d", slot, config.Kind, config.ID)
}

// runGame plays one game of tic-tac-toe. Agent 1 starts, as X, on even games.
func runGame(config1, config2 metrics.AgentConfig, i int) (metrics.GameMetric, []metrics.MoveMetric) {
	side1, side2 := tictactoe.X, tictactoe.O
	if i%2 == 1 {
		side1, side2 = side2, side1
	}
	players := [2]engine.Player{
		{Name: playerName(config1, 1), Agent: createAgent(config1, side1, i)},
		{Name: playerName(config2, 2), Agent: createAgent(config2, side2, i)},
	}
	if side1 != tictactoe.X {
		players[0], players[1] = players[1], players[0]
	}

	return engine.Local(tictactoe.New(), players).Run()
}

func createAgent(config metrics.AgentConfig, side game.Side, i int) agent.Agent {
	if config.Kind == metrics.RandomAgent {
		return agent.NewRandomAgent(side, config.Seed+uint64(i))
	}

	options := []searcher.Option{searcher.WithMetrics()}
	if config.Cutoff > 0 {
		options = append(options, searcher.WithCutoff(config.Cutoff))
	}
	if config.Pruning {
		options = append(options, searcher.WithOpponentWinPruning())
	}
	return agent.NewNegamaxAgent(searcher.NewNegamax(side, options...))
}
