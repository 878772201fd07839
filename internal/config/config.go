package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultTemplateScript is the template script newsite delegates to.
const DefaultTemplateScript = "create-project-from-template.sh"

// ThemeConfig selects the UI color scheme
type ThemeConfig struct {
	Name string `toml:"name"` // preset family: none, default, dracula, nord
	Mode string `toml:"mode"` // auto, light, dark
}

// Config holds the newsite configuration
type Config struct {
	TemplateScript string      `toml:"template_script"`
	LogFile        string      `toml:"log_file"`
	Theme          ThemeConfig `toml:"theme"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		TemplateScript: DefaultTemplateScript,
	}
}

type ctxKey struct{}

// WithConfig attaches the config to the context.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext retrieves the config from context, or nil if none is attached.
func FromContext(ctx context.Context) *Config {
	cfg, _ := ctx.Value(ctxKey{}).(*Config)
	return cfg
}

// ValidatePath checks that the path is absolute or starts with ~
// Returns error if path is relative (like "." or "..")
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return nil // Empty is allowed (means not configured)
	}
	if path[0] == '~' {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// expandPath expands ~ to the user's home directory
func expandPath(path string) (string, error) {
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

// Path returns the path to the config file
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "newsite", "config.toml"), nil
}

// Load reads config from ~/.config/newsite/config.toml
// Returns Default() if file doesn't exist (no error)
// Returns error only if file exists but is invalid
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads config from path. A missing file yields Default().
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.TemplateScript == "" {
		cfg.TemplateScript = DefaultTemplateScript
	}

	if err := ValidatePath(cfg.LogFile, "log_file"); err != nil {
		return Default(), err
	}
	if cfg.LogFile != "" {
		expanded, err := expandPath(cfg.LogFile)
		if err != nil {
			return Default(), fmt.Errorf("expand log_file: %w", err)
		}
		cfg.LogFile = expanded
	}

	if err := validateEnum(cfg.Theme.Name, "theme.name", ValidThemeNames); err != nil {
		return Default(), err
	}
	if err := validateEnum(cfg.Theme.Mode, "theme.mode", ValidThemeModes); err != nil {
		return Default(), err
	}

	return cfg, nil
}
