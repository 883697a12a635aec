package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"negamax/searcher"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "selfplay")
	require.NoError(t, err)
	require.DirExists(t, w.Dir())
	require.Equal(t, filepath.Join(root, "selfplay"), filepath.Dir(w.Dir()))

	t.Run("agent configs", func(t *testing.T) {
		err := w.WriteAgentConfigs([]AgentConfig{
			{ID: 1, Kind: NegamaxAgent, Pruning: true},
			{ID: 2, Kind: RandomAgent, Seed: 9},
		})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Equal(t, [][]string{
			{"id", "kind", "cutoff", "pruning", "seed"},
			{"1", "negamax", "0", "true", "0"},
			{"2", "random", "0", "false", "9"},
		}, rows)
	})

	t.Run("game records", func(t *testing.T) {
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		err := w.WriteGameRecords([]GameRecord{{
			ID: 1, Agent1: 1, Agent2: 2,
			GameMetric: GameMetric{
				StartingPlayer: "X",
				Winner:         "O",
				StartTime:      start,
				EndTime:        start.Add(time.Second),
				Duration:       time.Second,
				TotalMoves:     7,
			},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "1", "2", "X", "O", "", "2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s", "7"}, rows[1])
	})

	t.Run("move records", func(t *testing.T) {
		err := w.WriteMoveRecords([]MoveRecord{{
			Game: 1,
			MoveMetric: MoveMetric{
				Step:         1,
				Player:       "X",
				Move:         "(0, 0)",
				SearchMetric: searcher.SearchMetric{Nodes: 10, Leaves: 20, Cutoffs: 3, RootMoves: 9},
			},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Equal(t, []string{"1", "1", "X", "(0, 0)", "0s", "10", "20", "3", "0", "9"}, rows[1])
	})
}
