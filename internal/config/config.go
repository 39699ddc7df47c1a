package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/vancomm/minesweeper-tty/internal/mines"
)

type Config struct {
	Mode        string            `json:"mode" yaml:"mode"`
	Debug       bool              `json:"debug" yaml:"debug"`
	LogFile     string            `json:"log_file" yaml:"log_file"`
	LogLevel    string            `json:"log_level" yaml:"log_level"`
	MetricsFile string            `json:"metrics_file" yaml:"metrics_file"`
	Game        *mines.GameParams `json:"game,omitempty" yaml:"game,omitempty"`
}

func Default() *Config {
	return &Config{Mode: "production"}
}

func (c Config) Fields() logrus.Fields {
	fields := logrus.Fields{
		"mode":         c.Mode,
		"debug":        c.Debug,
		"log_file":     c.LogFile,
		"log_level":    c.LogLevel,
		"metrics_file": c.MetricsFile,
	}
	if c.Game != nil {
		fields["game"] = c.Game.Seed()
	}
	return fields
}

func (c Config) Production() bool {
	return c.Mode == "production"
}

func (c Config) Development() bool {
	return c.Mode != "production"
}

// ReadConfig decodes a JSON or YAML file, picked by extension, on top of
// the values already in config.
func ReadConfig(path string, config *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, config)
	default:
		err = json.Unmarshal(b, config)
	}
	if err != nil {
		return fmt.Errorf("unable to parse config %s: %w", path, err)
	}
	return nil
}

// LoadEnv loads dotenv files (default ".env"; missing files are fine) and
// then applies MINES_* variables to config.
func LoadEnv(config *Config, files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("unable to load env file: %w", err)
	}

	if mode, ok := os.LookupEnv("MINES_MODE"); ok {
		config.Mode = mode
	}
	if debugStr, ok := os.LookupEnv("MINES_DEBUG"); ok {
		debug, err := strconv.ParseBool(debugStr)
		if err != nil {
			return fmt.Errorf("unable to parse MINES_DEBUG: %w", err)
		}
		config.Debug = debug
	}
	if logFile, ok := os.LookupEnv("MINES_LOG_FILE"); ok {
		config.LogFile = logFile
	}
	if logLevel, ok := os.LookupEnv("MINES_LOG_LEVEL"); ok {
		config.LogLevel = logLevel
	}
	if metricsFile, ok := os.LookupEnv("MINES_METRICS_FILE"); ok {
		config.MetricsFile = metricsFile
	}
	if seed, ok := os.LookupEnv("MINES_GAME"); ok {
		params, err := mines.ParseSeed(seed)
		if err != nil {
			return fmt.Errorf("unable to parse MINES_GAME: %w", err)
		}
		config.Game = params
	}
	return nil
}

// Load builds the configuration from defaults, the optional file at path
// and the environment, in that order.
func Load(path string) (*Config, error) {
	config := Default()
	if path != "" {
		if err := ReadConfig(path, config); err != nil {
			return nil, err
		}
	}
	if err := LoadEnv(config); err != nil {
		return nil, err
	}
	if config.Game != nil {
		if err := config.Game.Validate(); err != nil {
			return nil, err
		}
	}
	return config, nil
}
