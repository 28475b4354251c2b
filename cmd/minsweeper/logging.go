package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/lmittmann/tint"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/minsweeper/minsweeper/internal/config"
	"github.com/minsweeper/minsweeper/internal/mines"
)

func newLogger(cfg *config.App, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	var handler slog.Handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	if cfg.Development {
		handler = tint.NewHandler(w, &tint.Options{
			Level: slog.LevelDebug,
		})
	}
	return slog.New(handler), nil
}

func setupEngineLogging(cfg *config.App, w io.Writer) error {
	level, err := cfg.EngineLevel()
	if err != nil {
		return err
	}
	mines.Log.SetLevel(level)
	mines.Log.SetOutput(w)
	mines.Log.SetFormatter(&logrus.TextFormatter{ForceColors: cfg.Development})

	if cfg.LogFile == "" {
		return nil
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.LogFile,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
		Level:      level,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return fmt.Errorf("unable to open log file %s: %w", cfg.LogFile, err)
	}
	mines.Log.AddHook(hook)
	return nil
}
