package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/OpenTraceLab/vhdlwrap/pkg/vhdl"
	"github.com/OpenTraceLab/vhdlwrap/pkg/wrapper"
)

// FileName is the project-local configuration file name.
const FileName = "vhdlwrap.json"

// Config stores vhdlwrap settings.
type Config struct {
	Parser    ParserConfig    `json:"parser"`
	Generator GeneratorConfig `json:"generator"`

	// Flatten lists default flatten requests ("name=bits" or "name=NxB").
	Flatten []string `json:"flatten,omitempty"`
}

// ParserConfig selects the entity parser front end.
type ParserConfig struct {
	// Mode is "scan" or "strict".
	Mode string `json:"mode"`
}

// GeneratorConfig controls naming and layout of generated VHDL.
type GeneratorConfig struct {
	Architecture  string `json:"architecture"`
	Library       string `json:"library"`
	PackageSuffix string `json:"packageSuffix"`
	Indent        int    `json:"indent"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Parser: ParserConfig{
			Mode: vhdl.ModeScan.String(),
		},
		Generator: GeneratorConfig{
			Architecture:  "Behavioral",
			Library:       "work",
			PackageSuffix: "_types_pkg",
			Indent:        4,
		},
	}
}

// userConfigPath returns the per-user config file path.
func userConfigPath() (string, error) {
	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "vhdlwrap", "config.json"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "vhdlwrap", "config.json"), nil
}

// Load finds and loads the configuration file.
// Search order:
//  1. <dir>/vhdlwrap.json
//  2. <dir>/.vhdlwrap.json
//  3. the per-user config (~/.config/vhdlwrap/config.json)
//
// Returns DefaultConfig if no config file is found.
func Load(dir string) (*Config, error) {
	searchPaths := []string{
		filepath.Join(dir, FileName),
		filepath.Join(dir, "."+FileName),
	}
	if path, err := userConfigPath(); err == nil {
		searchPaths = append(searchPaths, path)
	}

	for _, path := range searchPaths {
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}

	return DefaultConfig(), nil
}

// LoadFile loads configuration from a specific file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	return &cfg, nil
}

// applyDefaults fills in missing fields.
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Parser.Mode == "" {
		c.Parser.Mode = def.Parser.Mode
	}
	if c.Generator.Architecture == "" {
		c.Generator.Architecture = def.Generator.Architecture
	}
	if c.Generator.Library == "" {
		c.Generator.Library = def.Generator.Library
	}
	if c.Generator.PackageSuffix == "" {
		c.Generator.PackageSuffix = def.Generator.PackageSuffix
	}
	if c.Generator.Indent <= 0 {
		c.Generator.Indent = def.Generator.Indent
	}
}

// Validate checks values that cannot be defaulted.
func (c *Config) Validate() error {
	if _, err := vhdl.ParseMode(c.Parser.Mode); err != nil {
		return err
	}
	return nil
}

// Save writes the configuration to a file.
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// ParserMode returns the configured parser front end.
func (c *Config) ParserMode() vhdl.Mode {
	mode, _ := vhdl.ParseMode(c.Parser.Mode)
	return mode
}

// WrapperOptions converts the generator settings for an entity.
func (c *Config) WrapperOptions(entityName string) wrapper.Options {
	return wrapper.Options{
		Architecture: c.Generator.Architecture,
		Library:      c.Generator.Library,
		PackageName:  entityName + c.Generator.PackageSuffix,
		Indent:       strings.Repeat(" ", c.Generator.Indent),
	}
}
