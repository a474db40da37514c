package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/banachtech/frontier/config"
	"github.com/banachtech/frontier/logger"
	"github.com/banachtech/frontier/mainfuncs"

	"github.com/rs/zerolog"
)

// config file from FRONTIER_CONFIG, frontier.yaml otherwise
func configPath() string {
	if path := os.Getenv("FRONTIER_CONFIG"); path != "" {
		return path
	}
	return config.DefaultPath
}

func main() {
	boot := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	path := configPath()
	cfg, err := config.Load(path)
	if err != nil {
		boot.Fatal().Err(err).Str("path", path).Msg("load config")
	}

	log, closeLog, err := logger.New(cfg.Log)
	if err != nil {
		boot.Fatal().Err(err).Msg("init logger")
	}
	os.Exit(run(cfg, log, closeLog))
}

func run(cfg *config.Config, log zerolog.Logger, closeLog func() error) int {
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p, err := mainfuncs.NewProvider(cfg.Data)
	if err != nil {
		log.Error().Err(err).Msg("init provider")
		return 1
	}

	res, err := mainfuncs.Run(ctx, *cfg, p, log)
	if err != nil {
		log.Error().Err(err).Msg("run failed")
		return 1
	}

	paths, err := mainfuncs.Write(res, cfg.Display, cfg.Output)
	if err != nil {
		log.Error().Err(err).Msg("write charts")
		return 1
	}
	log.Info().Strs("files", paths).Msg("done")
	return 0
}
