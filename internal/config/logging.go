package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/sirupsen/logrus"
)

// Level is the slog level for the process logger. Development always logs
// at debug.
func (a *App) Level() (slog.Level, error) {
	if a.Development {
		return slog.LevelDebug, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(a.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", a.LogLevel, err)
	}
	return level, nil
}

// EngineLevel is the logrus level for the game engine logger.
func (a *App) EngineLevel() (logrus.Level, error) {
	if a.Development {
		return logrus.DebugLevel, nil
	}
	level, err := logrus.ParseLevel(a.LogLevel)
	if err != nil {
		return logrus.InfoLevel, fmt.Errorf("invalid log level %q: %w", a.LogLevel, err)
	}
	return level, nil
}
