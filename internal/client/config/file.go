package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/pocketbank/internal/flagx"
	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk form. Absent keys leave the current value alone.
type fileConfig struct {
	DatabasePath    string `json:"database_path" yaml:"database_path"`
	CreateMode      string `json:"create_mode" yaml:"create_mode"`
	PasswordStorage string `json:"password_storage" yaml:"password_storage"`
	LogLevel        string `json:"log_level" yaml:"log_level"`
}

// parseFile overlays cfg with the config file named by -c or -config, if
// any. Files ending in .yaml or .yml are read as YAML, anything else as JSON.
func parseFile(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	fc.apply(cfg)
	return nil
}

func (fc fileConfig) apply(cfg *Config) {
	if fc.DatabasePath != "" {
		cfg.DatabasePath = fc.DatabasePath
	}
	if fc.CreateMode != "" {
		cfg.CreateMode = CreateMode(fc.CreateMode)
	}
	if fc.PasswordStorage != "" {
		cfg.PasswordStorage = PasswordStorage(fc.PasswordStorage)
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
}
