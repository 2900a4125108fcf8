package config

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/pocketbank/internal/logging"
)

// CreateMode selects what registration does when an account already exists
// at the same email.
type CreateMode string

const (
	// CreateStrict refuses to replace an existing account.
	CreateStrict CreateMode = "strict"
	// CreateOverwrite replaces it silently.
	CreateOverwrite CreateMode = "overwrite"
)

// PasswordStorage selects how passwords are written to the store.
type PasswordStorage string

const (
	PasswordArgon2    PasswordStorage = "argon2"
	PasswordPlaintext PasswordStorage = "plaintext"
)

// Config holds runtime settings for the PocketBank CLI.
type Config struct {
	DatabasePath    string
	CreateMode      CreateMode
	PasswordStorage PasswordStorage
	LogLevel        string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "bank.db"
	c.CreateMode = CreateStrict
	c.PasswordStorage = PasswordArgon2
	c.LogLevel = "info"
}

// Validate rejects unknown modes and levels and an empty database path.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DatabasePath) == "" {
		return fmt.Errorf("database path is empty")
	}
	switch c.CreateMode {
	case CreateStrict, CreateOverwrite:
	default:
		return fmt.Errorf("unknown create mode %q", c.CreateMode)
	}
	switch c.PasswordStorage {
	case PasswordArgon2, PasswordPlaintext:
	default:
		return fmt.Errorf("unknown password storage %q", c.PasswordStorage)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// LoadConfig builds a Config from defaults, then the optional config file
// named by -c/-config, then command-line flags. Later sources take
// precedence. args excludes the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseFile(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
