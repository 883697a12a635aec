package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"negamax/config"
	"negamax/experiments"
	"negamax/shell"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file, negamax.yaml in the working directory by default")
	mode := flag.String("mode", "shell", "shell to play against the engine, experiments to run self-play")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	setupLogging(cfg.LogLevel)
	log.Debug().Msgf("loaded config: %+v", cfg)

	switch *mode {
	case "shell":
		err = runShell(cfg)
	case "experiments":
		err = runExperiments(cfg)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("exiting")
	}
}

func setupLogging(level zerolog.Level) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
}

func runShell(cfg *config.Config) error {
	sc, err := shell.NewShellController(cfg)
	if err != nil {
		return err
	}
	sc.Loop()
	return nil
}

func runExperiments(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	summaries, err := experiments.Run(ctx, experiments.Config{
		Games:     cfg.Experiments.Games,
		OutputDir: cfg.Experiments.OutputDir,
		Seed:      cfg.Experiments.Seed,
		Cutoff:    cfg.Cutoff,
	})
	for _, s := range summaries {
		fmt.Printf("%s#%d vs %s#%d: %d-%d, %d draws, %d forfeits\n",
			s.Agent1.Kind, s.Agent1.ID, s.Agent2.Kind, s.Agent2.ID, s.Agent1Wins, s.Agent2Wins, s.Draws, s.Forfeits)
	}
	return err
}
