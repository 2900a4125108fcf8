package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/pocketbank/internal/flagx"
)

// parseFlags overlays cfg with command-line flags:
//
//	-d string   path to the SQLite database file
//	-m string   create mode: strict or overwrite
//	-p string   password storage: argon2 or plaintext
//	-l string   log level: debug, info, warn, error
//
// Only these flags are parsed; everything else in args is ignored.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-d", "-m", "-p", "-l"})

	fs := flag.NewFlagSet("pocketbank", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	createMode := string(cfg.CreateMode)
	passwordStorage := string(cfg.PasswordStorage)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the database file")
	fs.StringVar(&createMode, "m", createMode, "create mode (strict|overwrite)")
	fs.StringVar(&passwordStorage, "p", passwordStorage, "password storage (argon2|plaintext)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.CreateMode = CreateMode(createMode)
	cfg.PasswordStorage = PasswordStorage(passwordStorage)
	return nil
}
