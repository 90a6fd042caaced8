// Package config loads and persists the uniterm configuration file.
package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/uniterm/assets"
	"github.com/doeshing/uniterm/internal/domain"
	"github.com/doeshing/uniterm/internal/pkg/filesystem"
	"github.com/doeshing/uniterm/internal/ports"
)

// FileLoader loads YAML configuration from ~/.uniterm/config.yaml
// (overridable via UNITERM_CONFIG or an explicit path).
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider. On first run the embedded default
// config and guardrail templates are written next to each other so the user
// has commented files to edit.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.resolvePath()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := provisionDefaults(path); err != nil {
			return domain.Config{}, err
		}
		data = assets.DefaultConfigYAML
	} else if err != nil {
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, err
	}

	return hydrateDefaults(cfg), nil
}

// Path reports where Load will look without touching the filesystem.
func (l *FileLoader) Path() string {
	return l.resolvePath()
}

// Default returns the configuration a first run produces.
func Default() (domain.Config, error) {
	var cfg domain.Config
	if err := yaml.Unmarshal(assets.DefaultConfigYAML, &cfg); err != nil {
		return domain.Config{}, err
	}
	return hydrateDefaults(cfg), nil
}

func (l *FileLoader) resolvePath() string {
	if l.overridePath != "" {
		return expandPath(l.overridePath)
	}
	if custom := os.Getenv("UNITERM_CONFIG"); custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(filesystem.UserHomeDir(), ".uniterm", "config.yaml")
}

func provisionDefaults(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirectoryPermissions); err != nil {
		return err
	}
	if err := os.WriteFile(path, assets.DefaultConfigYAML, domain.SecureFilePermissions); err != nil {
		return err
	}

	guardrailPath := filepath.Join(dir, "guardrail.yaml")
	if _, err := os.Stat(guardrailPath); errors.Is(err, fs.ErrNotExist) {
		return os.WriteFile(guardrailPath, assets.DefaultGuardrailYAML, domain.SecureFilePermissions)
	}
	return nil
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.History.Capacity <= 0 {
		cfg.History.Capacity = domain.DefaultHistoryCapacity
	}
	if cfg.History.ListLimit <= 0 {
		cfg.History.ListLimit = domain.DefaultHistoryListLimit
	}
	if cfg.Execution.TimeoutSeconds <= 0 {
		cfg.Execution.TimeoutSeconds = domain.DefaultTimeoutSeconds
	}
	if cfg.Advisor.Model == "" && len(cfg.Advisor.Models) > 0 {
		cfg.Advisor.Model = cfg.Advisor.Models[0].Name
	}
	return cfg
}

func expandPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if len(path) > 1 && path[:2] == "~/" {
		return filepath.Join(filesystem.UserHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
