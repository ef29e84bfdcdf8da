package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"draughts/experiments/metrics"
	"draughts/game"

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

func TestRun(t *testing.T) {
	base := t.TempDir()
	configs := []metrics.AgentConfig{
		{ID: 1, Kind: metrics.RandomAgent, Seed: 3},
		{ID: 2, Kind: metrics.SearchAgent, Depth: 1},
	}
	matchUps := [][2]metrics.AgentConfig{{configs[0], configs[1]}}

	dir, err := Run(base, "smoke", configs, matchUps, 2, game.WithWidth(6), game.WithPiecesPerPlayer(6))

	require.NoError(t, err)
	require.Equal(t, base, filepath.Dir(filepath.Dir(dir)), "Results should live under base/name/timestamp")

	agents := readCSV(t, filepath.Join(dir, "agent_configs.csv"))
	require.Equal(t, []string{"id", "kind", "depth", "seed"}, agents[0])
	require.Equal(t, []string{"2", "search", "1", "0"}, agents[2])

	games := readCSV(t, filepath.Join(dir, "game_records.csv"))
	require.Len(t, games, 3, "Header and one row per game")
	require.Equal(t, "id", games[0][0])
	require.Equal(t, []string{"1", "2"}, []string{games[1][2], games[1][3]}, "Config 1 should play first in game 1")
	require.Equal(t, []string{"2", "1"}, []string{games[2][2], games[2][3]}, "Sides should alternate")

	turns := readCSV(t, filepath.Join(dir, "turn_records.csv"))
	require.Equal(t, []string{"game", "turn", "player", "steps", "score", "depth", "duration", "nodes", "leaves", "cutoffs"}, turns[0])
	require.Greater(t, len(turns), 1)
}

func TestCreateAgentPanicsOnUnknownKind(t *testing.T) {
	require.Panics(t, func() { createAgent(metrics.AgentConfig{Kind: "oracle"}, 0) })
}
