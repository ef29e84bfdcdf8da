package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"draughts/agent"
	"draughts/config"
	"draughts/engine"
	"draughts/experiments"
	"draughts/game"
	"draughts/notation"
	"draughts/render"
	"draughts/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfgPath := flag.String("config", "", "Path to a yaml, toml or json config file")
	mode := flag.String("mode", "", "Overrides the config mode: human or self")
	depth := flag.Int("depth", 0, "Overrides the config search depth")
	experiment := flag.String("experiment", "", "Runs an experiment instead of a game: depth or throughput")
	outDir := flag.String("out", "results", "Directory for experiment results")
	svgPath := flag.String("svg", "", "Writes the final board as SVG to this file")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if *mode != "" {
		cfg.Mode = *mode
	}
	if *depth > 0 {
		cfg.AIDepth = *depth
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid flags")
	}
	zerolog.SetGlobalLevel(cfg.Level())

	if *experiment != "" {
		runExperiment(*experiment, *outDir, cfg)
		return
	}

	g := game.NewGame(cfg.GameOptions()...)
	result, err := play(g, cfg)
	if errors.Is(err, agent.ErrQuit) {
		fmt.Println("Bye!")
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("game stopped")
	}

	fmt.Print(render.Text(g))
	switch {
	case result.IsDraw:
		fmt.Printf("Draw after %d turns.\n", result.Turns)
	case result.Winner != "":
		fmt.Printf("The winner is %s after %d turns.\n", result.Winner, result.Turns)
	default:
		fmt.Printf("No winner after %d turns.\n", result.Turns)
	}

	if *svgPath != "" {
		if err := writeSVG(*svgPath, g); err != nil {
			log.Fatal().Err(err).Msg("failed to write board")
		}
	}
}

func play(g *game.Game, cfg *config.Config) (engine.MatchResult, error) {
	ai := agent.NewSearchAgent(searcher.NewSearcher(searcher.WithDepth(cfg.AIDepth), searcher.WithMetrics()))
	printTurn := func(r engine.TurnRecord) {
		fmt.Printf("%s played %s\n", g.Player(r.Player), notation.FormatLine(r.Steps, g.Width()))
	}

	var agents [2]agent.Agent
	switch cfg.Mode {
	case config.ModeSelf:
		agents = [2]agent.Agent{ai, ai}
	default:
		hint := searcher.NewSearcher(searcher.WithDepth(cfg.HintDepth))
		agents = [2]agent.Agent{agent.NewConsoleAgent(os.Stdin, os.Stdout, hint), ai}
	}
	return engine.New(g, agents, engine.WithMaxTurns(cfg.MaxTurns), engine.WithTurnHook(printTurn)).Run()
}

func runExperiment(name, outDir string, cfg *config.Config) {
	var (
		dir string
		err error
	)
	options := []game.Option{game.WithWidth(cfg.Width), game.WithPiecesPerPlayer(cfg.PiecesPerPlayer), game.WithDrawAmount(cfg.DrawAmount)}
	switch name {
	case "depth":
		dir, err = experiments.RunDepthExperiment(outDir, options...)
	case "throughput":
		dir, err = experiments.RunThroughputExperiment(outDir, options...)
	default:
		log.Fatal().Msgf("unknown experiment %q", name)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s experiment failed", name)
	}
	fmt.Printf("Results written to %s\n", dir)
}

func writeSVG(path string, g *game.Game) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.SVG(f, g, 48); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
