package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/minsweeper/minsweeper/internal/mines"
)

type App struct {
	Addr            string        `yaml:"addr" json:"addr" env:"MINSWEEPER_ADDR" env-default:":8080"`
	Size            int           `yaml:"size" json:"size" env:"MINSWEEPER_SIZE" env-default:"9"`
	MineCount       int           `yaml:"mine-count" json:"mine_count" env:"MINSWEEPER_MINE_COUNT"` // -1 unless set
	LogLevel        string        `yaml:"log-level" json:"log_level" env:"LOG_LEVEL" env-default:"info"`
	LogFile         string        `yaml:"log-file" json:"log_file" env:"LOG_FILE"`
	Development     bool          `yaml:"development" json:"development" env:"DEVELOPMENT"`
	ShutdownTimeout time.Duration `yaml:"shutdown-timeout" json:"shutdown_timeout" env:"MINSWEEPER_SHUTDOWN_TIMEOUT" env-default:"15s"`
}

// newApp presets MineCount to -1 (derive from size) outside of cleanenv's
// env-default, which would also replace an explicit 0 from a file.
func newApp() *App {
	return &App{MineCount: -1}
}

// Load reads the configuration from the environment only.
func Load() (*App, error) {
	cfg := newApp()
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("unable to read config from env: %w", err)
	}
	return cfg, nil
}

// LoadFile reads a YAML or JSON config file. Environment variables override
// values from the file.
func LoadFile(path string) (*App, error) {
	cfg := newApp()
	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return nil, fmt.Errorf("unable to load config file %s: %w", path, err)
	}
	return cfg, nil
}

// GameParams returns the default game params. A negative mine count derives
// the count from the board size.
func (a *App) GameParams() mines.GameParams {
	if a.MineCount < 0 {
		return mines.DefaultParams(a.Size)
	}
	return mines.GameParams{Size: a.Size, MineCount: a.MineCount}
}
