package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ChristopherBilg/crisp"
)

const (
	configFile  = ".crisp.yml"
	historyFile = ".crisp_history"
	promptMain  = "crisp => "
	promptCont  = "   ... "
)

// Config holds the shell settings read from crisp.yml.
type Config struct {
	Path               string
	Prompt             string
	ContinuationPrompt string
	HistoryFile        string
	Color              bool
	LogLevel           slog.Level
	MaxCallDepth       int
}

// ValidationError aggregates config validation failures.
type ValidationError struct {
	Path   string
	Issues []string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "config: %s is invalid:", e.Path)
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

type configDisk struct {
	Prompt             *string `yaml:"prompt"`
	ContinuationPrompt *string `yaml:"continuation_prompt"`
	HistoryFile        *string `yaml:"history_file"`
	Color              *bool   `yaml:"color"`
	LogLevel           *string `yaml:"log_level"`
	MaxCallDepth       *int    `yaml:"max_call_depth"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		Prompt:             promptMain,
		ContinuationPrompt: promptCont,
		HistoryFile:        filepath.Join(home, historyFile),
		Color:              true,
		LogLevel:           slog.LevelWarn,
		MaxCallDepth:       crisp.DefaultMaxCallDepth,
	}
}

// LoadConfig reads path, or $HOME/.crisp.yml when path is empty. An explicit
// path must exist; the default location is optional.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, configFile)
	}
	file, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()
	if err := cfg.decode(file, path); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(r io.Reader, path string) error {
	var raw configDisk
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	c.Path = path

	var issues []string
	if raw.Prompt != nil {
		c.Prompt = *raw.Prompt
	}
	if raw.ContinuationPrompt != nil {
		c.ContinuationPrompt = *raw.ContinuationPrompt
	}
	if raw.HistoryFile != nil {
		c.HistoryFile = expandHome(*raw.HistoryFile)
	}
	if raw.Color != nil {
		c.Color = *raw.Color
	}
	if raw.LogLevel != nil {
		lvl, err := parseLevel(*raw.LogLevel)
		if err != nil {
			issues = append(issues, err.Error())
		} else {
			c.LogLevel = lvl
		}
	}
	if raw.MaxCallDepth != nil {
		if *raw.MaxCallDepth < 0 {
			issues = append(issues, fmt.Sprintf("max_call_depth must be >= 0, got %d", *raw.MaxCallDepth))
		} else {
			c.MaxCallDepth = *raw.MaxCallDepth
		}
	}
	if len(issues) > 0 {
		return &ValidationError{Path: path, Issues: issues}
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("log_level %q: want debug, info, warn or error", s)
	}
	return lvl, nil
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}
