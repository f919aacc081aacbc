package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

// RoleConfig defines one role available for volunteer signups
type RoleConfig struct {
	Label         string `yaml:"label" validate:"required"`
	MinVolunteers int    `yaml:"minVolunteers" validate:"min=0"`
}

// EventTemplate defines a recurring fundraising event that seedWeek
// can materialize onto the displayed week
type EventTemplate struct {
	Name    string `yaml:"name" validate:"required"`
	Details string `yaml:"details" validate:"required"`
	RRule   string `yaml:"rrule" validate:"required"`
}

// Config represents the application configuration. Everything here is
// fixed at initialization; nothing is reloaded mid-session.
type Config struct {
	OrganizationName string          `yaml:"organizationName,omitempty"`
	DefaultRoles     []RoleConfig    `yaml:"defaultRoles,omitempty" validate:"dive"`
	WeeksBack        int             `yaml:"weeksBack,omitempty" validate:"min=0"`
	WeeksAhead       int             `yaml:"weeksAhead,omitempty" validate:"min=1"`
	EventTemplates   []EventTemplate `yaml:"eventTemplates,omitempty" validate:"dive"`
	ExportDir        string          `yaml:"exportDir,omitempty"`
}

const configFileName = "fundraiser_config.yaml"

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Default returns the built-in configuration used when no config file
// exists: the four default roles, a two-week lookback and a roughly
// three-month lookahead.
func Default() *Config {
	return &Config{
		OrganizationName: "Huda Centre",
		DefaultRoles: []RoleConfig{
			{Label: "Volunteers list", MinVolunteers: 8},
			{Label: "Setup crew", MinVolunteers: 3},
			{Label: "Greeters", MinVolunteers: 2},
			{Label: "Cleanup crew", MinVolunteers: 3},
		},
		WeeksBack:  2,
		WeeksAhead: 12,
		ExportDir:  "exports",
	}
}

// Load loads and validates the configuration from fundraiser_config.yaml,
// looking in the current directory first and then in the user's home
// directory. A missing config file is not an error: the built-in
// defaults are used.
func Load() (*Config, error) {
	return LoadWithEnv("")
}

// LoadWithEnv behaves like Load but prefers an environment-specific
// file (fundraiser_config.<env>.yaml) when env is non-empty
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findConfigFile(env)
	if err != nil {
		return Default(), nil
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	// Validate rrule syntax for each event template
	for i, tmpl := range cfg.EventTemplates {
		if _, err := rrule.StrToRRule(tmpl.RRule); err != nil {
			return fmt.Errorf("invalid rrule in eventTemplates[%d] (%s): %w", i, tmpl.Name, err)
		}
	}

	return nil
}

// applyDefaults fills fields that a partial config file left zeroed
func applyDefaults(cfg *Config) {
	fallback := Default()
	if len(cfg.DefaultRoles) == 0 {
		cfg.DefaultRoles = fallback.DefaultRoles
	}
	if cfg.WeeksAhead == 0 {
		cfg.WeeksAhead = fallback.WeeksAhead
	}
	if cfg.ExportDir == "" {
		cfg.ExportDir = fallback.ExportDir
	}
}

// findConfigFile searches for the config file in the current directory
// and then the home directory, preferring the env-specific name
func findConfigFile(env string) (string, error) {
	names := []string{configFileName}
	if env != "" {
		names = []string{fmt.Sprintf("fundraiser_config.%s.yaml", env), configFileName}
	}

	dirs := []string{"."}
	if homeDir, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, homeDir)
	}

	for _, name := range names {
		for _, dir := range dirs {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
