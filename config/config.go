package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/banachtech/frontier/logger"
	"github.com/banachtech/frontier/mc"
	"github.com/banachtech/frontier/render"
	"github.com/banachtech/frontier/utils"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "frontier.yaml"

var validate *validator.Validate

func init() {
	validate = validator.New()
}

type Data struct {
	Provider string        `yaml:"provider" default:"yahoo" validate:"oneof=yahoo alphavantage"`
	APIKey   string        `yaml:"api_key" validate:"required_if=Provider alphavantage"`
	Start    string        `yaml:"start" default:"2016-05-02" validate:"datetime=2006-01-02"`
	End      string        `yaml:"end" validate:"omitempty,datetime=2006-01-02"`
	Timeout  time.Duration `yaml:"timeout" default:"30s" validate:"gt=0"`
	CacheTTL time.Duration `yaml:"cache_ttl" default:"1h"`
}

type Config struct {
	Symbols []string             `yaml:"symbols" validate:"required,min=1,dive,required"`
	Data    Data                 `yaml:"data"`
	Sampler mc.Config            `yaml:"sampler"`
	Display render.DisplayConfig `yaml:"display"`
	Output  string               `yaml:"output" default:"out" validate:"required"`
	Log     logger.Config        `yaml:"log"`
}

// Load builds the configuration: struct defaults, then the YAML file at
// path, then .env and the process environment. A missing file is only an
// error when path is not DefaultPath.
func Load(path string) (*Config, error) {
	var c Config
	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("set defaults: %w", err)
	}

	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist) && path == DefaultPath:
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	if err := c.applyEnv(); err != nil {
		return nil, err
	}
	c.Symbols = utils.Format(c.Symbols)

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &c, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("FRONTIER_SYMBOLS"); v != "" {
		c.Symbols = strings.Split(v, ",")
	}
	if v := os.Getenv("FRONTIER_PROVIDER"); v != "" {
		c.Data.Provider = v
	}
	if v := os.Getenv("ALPHAVANTAGE_API_KEY"); v != "" {
		c.Data.APIKey = v
	}
	if v := os.Getenv("FRONTIER_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("FRONTIER_SEED: %w", err)
		}
		c.Sampler.Seed = seed
	}
	return nil
}

// Validate checks struct tags and the date window.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	_, _, err := c.Window(time.Now())
	return err
}

// Window resolves the inclusive history range. An empty End means the last
// NYSE trading day on or before now.
func (c *Config) Window(now time.Time) (time.Time, time.Time, error) {
	start, err := time.Parse(utils.Layout, c.Data.Start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("data.start: %w", err)
	}
	var end time.Time
	if c.Data.End == "" {
		hols, err := utils.Hols(utils.NYSE)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end = utils.AdjustPreceding(utils.Day(now), hols)
	} else if end, err = time.Parse(utils.Layout, c.Data.End); err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("data.end: %w", err)
	}
	if !start.Before(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("data.start %s must be before data.end %s", start.Format(utils.Layout), end.Format(utils.Layout))
	}
	return start, end, nil
}
