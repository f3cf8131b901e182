package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	MinCourts = 1
	MaxCourts = 10

	DefaultStrategy = "balanced"
)

// Strategies lists the round-scheduling strategies a config may name.
var Strategies = []string{"balanced", "simple"}

// ValidationError reports input that cannot produce a schedule.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func invalid(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

type Players struct {
	Male   []string `yaml:"male" toml:"male"`
	Female []string `yaml:"female" toml:"female"`
}

type Config struct {
	Players     Players    `yaml:"players" toml:"players"`
	FixedGroups [][]string `yaml:"fixed_groups" toml:"fixed_groups"`
	Courts      int        `yaml:"courts" toml:"courts"`
	Strategy    string     `yaml:"strategy" toml:"strategy"`
}

// Format selects the decoder used by LoadFromBytes.
type Format int

const (
	YAML Format = iota
	TOML
)

// FormatForPath picks TOML for .toml files and YAML for everything else.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return TOML
	}
	return YAML
}

// LoadFromBytes parses config bytes, normalizes names and validates the result.
func LoadFromBytes(data []byte, format Format) (*Config, error) {
	var cfg Config
	switch format {
	case TOML:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromFile reads and parses a YAML or TOML config file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadFromBytes(data, FormatForPath(path))
}

// Normalize trims every name, drops empty names and empty fixed groups,
// and fills in the default strategy. A name is kept only at its first
// appearance across both pools, and once per fixed group.
func (c *Config) Normalize() {
	seen := make(map[string]bool)
	c.Players.Male = uniqueNames(cleanNames(c.Players.Male), seen)
	c.Players.Female = uniqueNames(cleanNames(c.Players.Female), seen)

	var groups [][]string
	for _, g := range c.FixedGroups {
		if names := uniqueNames(cleanNames(g), make(map[string]bool)); len(names) > 0 {
			groups = append(groups, names)
		}
	}
	c.FixedGroups = groups

	c.Strategy = strings.TrimSpace(c.Strategy)
	if c.Strategy == "" {
		c.Strategy = DefaultStrategy
	}
}

// Validate checks the config before any schedule state is built.
func (c *Config) Validate() error {
	if len(c.Players.Male) == 0 && len(c.Players.Female) == 0 {
		return invalid("at least one male or female player is required")
	}

	if c.Courts < MinCourts || c.Courts > MaxCourts {
		return invalid("court count must be between %d and %d, got %d", MinCourts, MaxCourts, c.Courts)
	}

	known := false
	for _, s := range Strategies {
		if c.Strategy == s {
			known = true
			break
		}
	}
	if !known {
		return invalid("unknown strategy %q (want one of %s)", c.Strategy, strings.Join(Strategies, ", "))
	}

	return nil
}

// PlayerCount returns the number of names in both pools.
func (c *Config) PlayerCount() int {
	return len(c.Players.Male) + len(c.Players.Female)
}

func cleanNames(names []string) []string {
	var out []string
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return out
}

func uniqueNames(names []string, seen map[string]bool) []string {
	var out []string
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}
