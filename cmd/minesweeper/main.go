package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-tty/internal/config"
	"github.com/vancomm/minesweeper-tty/internal/game"
	"github.com/vancomm/minesweeper-tty/internal/logging"
	"github.com/vancomm/minesweeper-tty/internal/metrics"
	"github.com/vancomm/minesweeper-tty/internal/mines"
	"github.com/vancomm/minesweeper-tty/internal/tty"
)

var (
	log = logrus.StandardLogger()

	configPath string
	debug      bool
	samples    int
	workers    int
)

func init() {
	const usage = "config file path (.json, .yaml)"
	flag.StringVar(&configPath, "config", "", usage)
	flag.StringVar(&configPath, "c", "", usage+" (shorthand)")
	flag.BoolVar(&debug, "debug", false, "show concealed mines")
	flag.IntVar(&samples, "sample", 0, "build this many boards and print per-cell mine frequencies instead of playing")
	flag.IntVar(&workers, "workers", 0, "sampling goroutines (default GOMAXPROCS)")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"usage: %s [flags] [width=W height=H mines=M]\n", os.Args[0])
		flag.PrintDefaults()
	}
}

func newSource() mines.Bernoulli {
	return mines.NewRand(mines.CreateRand())
}

func setupConfig() *config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal("unable to load config: ", err)
	}
	if debug {
		cfg.Debug = true
	}
	if flag.NArg() > 0 {
		params, err := tty.ParseParamArgs(flag.Args())
		if err != nil {
			log.Fatal(err)
		}
		cfg.Game = params
	}
	return cfg
}

func setupLogging(cfg *config.Config) {
	logger, err := logging.New(cfg)
	if err != nil {
		log.Fatal("unable to set up logging: ", err)
	}
	log = logger
	mines.Log = logger
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	cfg := setupConfig()
	setupLogging(cfg)

	log.WithFields(cfg.Fields()).Debug("config")

	if samples > 0 {
		if err := runSample(mainCtx, cfg); err != nil {
			log.Fatal(err)
		}
		return
	}

	m := metrics.New()
	session := game.NewSession(
		log,
		os.Stdout,
		tty.NewPrompter(mainCtx, os.Stdin, os.Stdout),
		tty.NewRenderer(os.Stdout, cfg.Debug),
		m,
		newSource,
	)

	err := session.Play(mainCtx, cfg.Game)

	if cfg.MetricsFile != "" {
		if err := m.WriteTextfile(cfg.MetricsFile); err != nil {
			log.Error(err)
		}
	}

	switch {
	case err == nil:
	case errors.Is(err, io.EOF):
		log.Info("input closed")
	case errors.Is(err, context.Canceled):
		log.Info("interrupted")
	default:
		log.Fatal(err)
	}
}
