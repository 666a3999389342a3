// Package config loads cvsite settings: defaults, then an optional YAML file,
// then environment variables. Flags are applied by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/Zachkp/cvsite/internal/logger"
	"github.com/Zachkp/cvsite/internal/render"
)

const DefaultFile = "cvsite.yaml"

type Config struct {
	Site      SiteConfig        `yaml:"site"`
	Data      DataConfig        `yaml:"data"`
	Output    OutputConfig      `yaml:"output"`
	Assets    AssetsConfig      `yaml:"assets"`
	Templates string            `yaml:"templates"`
	Server    ServerConfig      `yaml:"server"`
	Logger    logger.Config     `yaml:"logger"`
	Logos     []render.LogoRule `yaml:"logos" validate:"dive"`
}

type SiteConfig struct {
	Title        string `yaml:"title"`
	DownloadName string `yaml:"download_name"`
}

type DataConfig struct {
	// Source is a path or an http(s) URL.
	Source  string        `yaml:"source" validate:"required"`
	Timeout time.Duration `yaml:"timeout" validate:"gte=0"`
}

type OutputConfig struct {
	Dir string `yaml:"dir" validate:"required"`
}

type AssetsConfig struct {
	Dir     string   `yaml:"dir"`
	Exclude []string `yaml:"exclude"`
}

type ServerConfig struct {
	Port string `yaml:"port" validate:"required,numeric"`
	Mode string `yaml:"mode" validate:"omitempty,oneof=debug release test"`
}

func Default() *Config {
	return &Config{
		Site: SiteConfig{Title: "Curriculum Vitae"},
		Data: DataConfig{Source: "./cv.json", Timeout: 10 * time.Second},
		Output: OutputConfig{
			Dir: "./public",
		},
		Assets: AssetsConfig{
			Dir:     "./assets",
			Exclude: []string{"**/.DS_Store", "**/*.psd"},
		},
		Server: ServerConfig{Port: "8080", Mode: "release"},
		Logger: logger.Config{Level: "info", Format: "pretty"},
		Logos:  append([]render.LogoRule(nil), render.DefaultLogos...),
	}
}

// Load reads path when it exists and applies the environment on top. A
// missing file is only an error when it was asked for explicitly.
func Load(path string, explicit bool) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	applyEnv(cfg)
	return cfg, nil
}

// applyEnv overrides settings from the environment. PORT and GIN_MODE keep
// their conventional names.
func applyEnv(cfg *Config) {
	set := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	set(&cfg.Server.Port, "PORT")
	set(&cfg.Server.Mode, "GIN_MODE")
	set(&cfg.Data.Source, "CVSITE_DATA")
	set(&cfg.Output.Dir, "CVSITE_OUT")
	set(&cfg.Assets.Dir, "CVSITE_ASSETS")
	set(&cfg.Templates, "CVSITE_TEMPLATES")
	set(&cfg.Logger.Level, "LOG_LEVEL")
	set(&cfg.Logger.Format, "LOG_FORMAT")
}

// Validate checks the final configuration, after flags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
