package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/pelletier/go-toml/v2"
)

// DefaultTicketPattern matches ids like ABC-123 or proj_x-42
const DefaultTicketPattern = `[A-Za-z_]{3,}-[0-9]+`

// LocalFileName is looked up from the working directory upwards
const LocalFileName = ".attcm.toml"

type Config struct {
	ChangeTypes OptionList    `toml:"change_types"`
	Scopes      OptionList    `toml:"scopes"`
	Tickets     TicketsConfig `toml:"tickets"`
	Editor      EditorConfig  `toml:"editor"`

	// Where the config was read from, empty for built-in defaults
	path string

	// Compiled regex from Tickets.Pattern (not serialized)
	ticketRegex *regexp.Regexp
}

// OptionList is an ordered list of labels offered in a menu. Index 0 is the default.
type OptionList struct {
	Items []string `toml:"items"`
}

type TicketsConfig struct {
	Pattern string `toml:"pattern"`
}

type EditorConfig struct {
	// Command overrides $VISUAL and $EDITOR when set
	Command string `toml:"command"`
}

func DefaultConfig() *Config {
	return &Config{
		ChangeTypes: OptionList{Items: []string{
			"feat", "fix", "docs", "style", "refactor", "perf", "test", "build", "ci", "chore", "revert",
		}},
		Scopes: OptionList{Items: []string{
			"none", "api", "cli", "config", "deps", "docs", "ui",
		}},
		Tickets: TicketsConfig{
			Pattern: DefaultTicketPattern,
		},
	}
}

// Path returns the user-level config file location
func Path() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "attcm.toml"), nil
}

// Load resolves the config file: explicit path, then a .attcm.toml found
// walking up from the working directory, then the user config file. When none
// exists the defaults are returned and written to the user config path.
func Load(explicit string) (*Config, error) {
	if explicit != "" {
		return LoadFile(explicit)
	}

	if local, ok := findLocal(); ok {
		return LoadFile(local)
	}

	path, err := Path()
	if err != nil {
		cfg := DefaultConfig()
		if err := cfg.compileRegex(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	cfg, err := LoadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := DefaultConfig()
			if err := cfg.compileRegex(); err != nil {
				return nil, err
			}
			// Best effort save
			if err := cfg.SaveTo(path); err == nil {
				cfg.path = path
			}
			return cfg, nil
		}
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads a single TOML file on top of the defaults
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	cfg.path = path

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// findLocal walks up from the working directory looking for LocalFileName
func findLocal() (string, bool) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", false
	}

	path := cwd
	for {
		candidate := filepath.Join(path, LocalFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(path)
		if parent == path {
			return "", false
		}
		path = parent
	}
}

// Validate checks the option lists and compiles the ticket pattern
func (c *Config) Validate() error {
	if err := c.ChangeTypes.validate("change_types"); err != nil {
		return err
	}
	if err := c.Scopes.validate("scopes"); err != nil {
		return err
	}
	return c.compileRegex()
}

func (l OptionList) validate(section string) error {
	if len(l.Items) == 0 {
		return fmt.Errorf("%s.items must not be empty", section)
	}
	for i, item := range l.Items {
		if item == "" {
			return fmt.Errorf("%s.items[%d] is empty", section, i)
		}
	}
	return nil
}

func (c *Config) compileRegex() error {
	// Empty pattern = ticket pre-fill disabled
	if c.Tickets.Pattern == "" {
		c.ticketRegex = nil
		return nil
	}
	re, err := regexp.Compile(c.Tickets.Pattern)
	if err != nil {
		return fmt.Errorf("invalid tickets.pattern %q: %w", c.Tickets.Pattern, err)
	}
	c.ticketRegex = re
	return nil
}

// TicketRegex returns the compiled ticket pattern regex (nil if disabled)
func (c *Config) TicketRegex() *regexp.Regexp {
	return c.ticketRegex
}

// Source returns the file backing this config, or "" for unsaved defaults
func (c *Config) Source() string {
	return c.path
}

// Marshal encodes the config as TOML
func (c *Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}

// SaveTo writes the config to path, creating parent directories
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
