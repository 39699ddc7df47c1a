package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/minesweeper-tty/internal/config"
)

// New builds the application logger. The terminal belongs to the game, so
// console output is limited to warnings unless a log file is configured,
// in which case everything goes to the rotated file instead.
func New(cfg *config.Config) (*logrus.Logger, error) {
	return newLogger(cfg, os.Stderr)
}

func newLogger(cfg *config.Config, console io.Writer) (*logrus.Logger, error) {
	log := logrus.New()

	level := logrus.InfoLevel
	if cfg.Development() {
		level = logrus.DebugLevel
	}
	if cfg.LogLevel != "" {
		var err error
		level, err = logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("invalid log level: %w", err)
		}
	}

	if cfg.LogFile == "" {
		log.SetOutput(console)
		log.SetFormatter(&logrus.TextFormatter{})
		log.SetLevel(min(level, logrus.WarnLevel))
		return log, nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.LogFile,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      level,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return nil, fmt.Errorf("unable to create log file hook: %w", err)
	}
	log.AddHook(hook)
	log.SetOutput(io.Discard)
	log.SetLevel(level)

	return log, nil
}
