package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/dontclickthat/server/internal/game"
	"github.com/dontclickthat/server/internal/matchmaking"
)

// Config holds the runtime settings for the server.
type Config struct {
	Port       string
	Policy     matchmaking.Policy
	GridWidth  int
	GridHeight int
	MineCount  int
	Debug      bool
}

// Load reads an optional .env file, then the environment, applying
// defaults for anything unset. Board parameters are validated up
// front so a misconfigured server refuses to start instead of looping
// forever in the generator.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:       "3001",
		Policy:     matchmaking.PolicyBotImmediate,
		GridWidth:  game.DefaultGridWidth,
		GridHeight: game.DefaultGridHeight,
		MineCount:  game.DefaultMineCount,
		Debug:      os.Getenv("DEBUG") != "",
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("MATCHMAKING_POLICY"); v != "" {
		policy, err := matchmaking.ParsePolicy(v)
		if err != nil {
			return Config{}, err
		}
		cfg.Policy = policy
	}

	var err error
	if cfg.GridWidth, err = intEnv("GRID_WIDTH", cfg.GridWidth); err != nil {
		return Config{}, err
	}
	if cfg.GridHeight, err = intEnv("GRID_HEIGHT", cfg.GridHeight); err != nil {
		return Config{}, err
	}
	if cfg.MineCount, err = intEnv("MINE_COUNT", cfg.MineCount); err != nil {
		return Config{}, err
	}

	if cfg.GridWidth <= 0 || cfg.GridHeight <= 0 ||
		cfg.MineCount < 0 || cfg.MineCount >= cfg.GridWidth*cfg.GridHeight {
		return Config{}, fmt.Errorf("%w: %d mines on a %dx%d board",
			game.ErrInvalidConfiguration, cfg.MineCount, cfg.GridWidth, cfg.GridHeight)
	}

	return cfg, nil
}

func intEnv(name string, fallback int) (int, error) {
	v := os.Getenv(name)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", name, err)
	}
	return n, nil
}
