package config

import (
	"errors"
	"fmt"
	"strings"

	"negamax/game"
	"negamax/game/tictactoe"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const EnvPrefix = "NEGAMAX"

var ErrInvalidSide = errors.New("invalid side")

type Config struct {
	LogLevel           zerolog.Level
	AISide             game.Side
	Cutoff             int
	OpponentWinPruning bool
	HistoryFile        string
	Experiments        Experiments
}

type Experiments struct {
	Games     int
	OutputDir string
	Seed      uint64
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("ai_side", "O")
	v.SetDefault("cutoff", 10)
	v.SetDefault("opponent_win_pruning", false)
	v.SetDefault("history_file", "/tmp/negamax.readline")
	v.SetDefault("experiments.games", 10)
	v.SetDefault("experiments.output_dir", "experiments")
	v.SetDefault("experiments.seed", 1)
}

// Load layers defaults, a YAML file and NEGAMAX_* environment variables. With an empty path,
// negamax.yaml is looked up in the working directory and may be absent.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("negamax")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	level, err := zerolog.ParseLevel(v.GetString("log_level"))
	if err != nil {
		return nil, fmt.Errorf("invalid log_level: %w", err)
	}
	side, err := ParseSide(v.GetString("ai_side"))
	if err != nil {
		return nil, err
	}

	return &Config{
		LogLevel:           level,
		AISide:             side,
		Cutoff:             v.GetInt("cutoff"),
		OpponentWinPruning: v.GetBool("opponent_win_pruning"),
		HistoryFile:        v.GetString("history_file"),
		Experiments: Experiments{
			Games:     v.GetInt("experiments.games"),
			OutputDir: v.GetString("experiments.output_dir"),
			Seed:      v.GetUint64("experiments.seed"),
		},
	}, nil
}

// ParseSide reads X or O, in either case.
func ParseSide(s string) (game.Side, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return tictactoe.X, nil
	case "O":
		return tictactoe.O, nil
	default:
		return game.Neutral, fmt.Errorf("%w: %q, expected X or O", ErrInvalidSide, s)
	}
}
