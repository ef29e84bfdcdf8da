package experiments

import (
	"draughts/experiments/metrics"
	"draughts/game"
)

// RunThroughputExperiment plays each search depth against itself to measure
// how many positions a turn costs. Both sides share a config for the same
// playing strength and similar game length.
func RunThroughputExperiment(baseDir string, options ...game.Option) (string, error) {
	const numGames = 2
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{config, config})
	}
	return Run(baseDir, "depth_to_throughput", depthConfigs, matchUps, numGames, options...)
}
