package main

import (
	"testing"

	"github.com/banachtech/frontier/config"
	"github.com/banachtech/frontier/mc"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestConfigPath(t *testing.T) {
	t.Setenv("FRONTIER_CONFIG", "")
	require.Equal(t, config.DefaultPath, configPath())

	t.Setenv("FRONTIER_CONFIG", "/etc/frontier/prod.yaml")
	require.Equal(t, "/etc/frontier/prod.yaml", configPath())
}

func TestRunFailsOnUnknownProvider(t *testing.T) {
	closed := false
	cfg := &config.Config{
		Symbols: []string{"AAPL"},
		Data:    config.Data{Provider: "bloomberg"},
		Sampler: mc.Config{Iterations: 10},
	}
	code := run(cfg, zerolog.Nop(), func() error { closed = true; return nil })
	require.Equal(t, 1, code)
	require.True(t, closed)
}
