package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/Zuo-Peng/chat-analyzer/internal/parse"
	"github.com/Zuo-Peng/chat-analyzer/internal/report"
	"github.com/Zuo-Peng/chat-analyzer/internal/scan"
)

type Config struct {
	TopN           int    `toml:"top_n"`
	OnBadTimestamp string `toml:"on_bad_timestamp"` // "fail" or "skip"
	TranscriptExt  string `toml:"transcript_ext"`
	LogLevel       string `toml:"log_level"`
	Color          bool   `toml:"color"`
	ExportDir      string `toml:"export_dir"` // default root for `wca batch`

	// Path is the config file that was read, empty when none exists.
	Path string `toml:"-"`
}

func Default() *Config {
	return &Config{
		TopN:           report.DefaultTopN,
		OnBadTimestamp: "fail",
		TranscriptExt:  scan.DefaultExt,
		LogLevel:       "info",
		Color:          true,
		ExportDir:      ".",
	}
}

// DefaultPath is ~/.config/wca/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "wca", "config.toml"), nil
}

func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads cfgPath on top of the defaults. A missing file is not an error.
func LoadFrom(cfgPath string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(cfgPath); err == nil {
		if _, err := toml.DecodeFile(cfgPath, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
		cfg.Path = cfgPath
	}

	if _, err := parse.ParsePolicy(cfg.OnBadTimestamp); err != nil {
		return nil, fmt.Errorf("config %s: %w", cfgPath, err)
	}
	if cfg.TopN <= 0 {
		cfg.TopN = report.DefaultTopN
	}

	if home, err := os.UserHomeDir(); err == nil {
		cfg.ExportDir = expandHome(cfg.ExportDir, home)
	}

	return cfg, nil
}

// ParseOptions converts the config into parser options.
func (c *Config) ParseOptions() parse.Options {
	policy, _ := parse.ParsePolicy(c.OnBadTimestamp)
	return parse.Options{OnBadTimestamp: policy}
}

func expandHome(path, home string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
