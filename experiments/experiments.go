package experiments

import (
	"fmt"

	"draughts/agent"
	"draughts/engine"
	"draughts/experiments/metrics"
	"draughts/game"
	"draughts/searcher"

	"github.com/rs/zerolog/log"
)

const NumGames = 10 // Per match up

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: metrics.SearchAgent, Depth: 1},
	{ID: 2, Kind: metrics.SearchAgent, Depth: 2},
	{ID: 3, Kind: metrics.SearchAgent, Depth: 3},
	{ID: 4, Kind: metrics.SearchAgent, Depth: 4},
}

// RunDepthExperiment pairs every search depth against a random baseline.
func RunDepthExperiment(baseDir string, options ...game.Option) (string, error) {
	baseline := metrics.AgentConfig{ID: 0, Kind: metrics.RandomAgent, Seed: 1}
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}

	return Run(baseDir, "depth_to_strength", append(depthConfigs, baseline), matchUps, NumGames, options...)
}

// Run plays games for each match up and stores the agent configs, the game
// records and the turn records as CSV files. Sides alternate between games so
// that each config starts half of them. It returns the directory written to.
func Run(baseDir, name string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig, games int, options ...game.Option) (string, error) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	turnRecords := []metrics.TurnRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchUp := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchUp[0], matchUp[1])

		for i := 0; i < games; i++ {
			config1, config2 := matchUp[0], matchUp[1]
			if i%2 == 1 {
				config1, config2 = config2, config1
			}

			result, err := runGame(config1, config2, uint64(i), options...)
			if err != nil {
				return "", fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: result.Game,
			})
			for _, r := range result.Records {
				turnRecords = append(turnRecords, metrics.TurnRecord{
					Game:       count,
					TurnMetric: r.TurnMetric(),
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %q", mi+1, len(matchUps), i+1, result.Winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(baseDir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", err
	}
	if err := writer.WriteTurnRecords(turnRecords); err != nil {
		return "", err
	}
	log.Info().Msgf("stored experiment results in %s", writer.Dir())
	return writer.Dir(), nil
}

// runGame plays a single game where config1 plays player 1.
func runGame(config1, config2 metrics.AgentConfig, round uint64, options ...game.Option) (engine.MatchResult, error) {
	names := game.WithPlayerNames(fmt.Sprintf("agent%d", config1.ID), fmt.Sprintf("agent%d", config2.ID))
	g := game.NewGame(append([]game.Option{names}, options...)...)
	var e engine.Engine = engine.New(g, [2]agent.Agent{
		createAgent(config1, round),
		createAgent(config2, round),
	})
	return e.Run()
}

func createAgent(config metrics.AgentConfig, round uint64) agent.Agent {
	switch config.Kind {
	case metrics.RandomAgent:
		return agent.NewRandomAgent(config.Seed + round)
	case metrics.SearchAgent:
		return agent.NewSearchAgent(searcher.NewSearcher(searcher.WithDepth(config.Depth), searcher.WithMetrics()))
	default:
		panic(fmt.Sprintf("unknown agent kind %q", config.Kind))
	}
}
