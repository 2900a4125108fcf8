// Package config loads runtime configuration for the PocketBank CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-d string   SQLite database file (default "bank.db")
//	-m string   create mode: strict (default) or overwrite
//	-p string   password storage: argon2 (default) or plaintext
//	-l string   log level (default "info")
//
// # File format
//
// JSON, or YAML when the file name ends in .yaml or .yml:
//
//	{
//	  "database_path": "bank.db",
//	  "create_mode": "strict",
//	  "password_storage": "argon2",
//	  "log_level": "info"
//	}
//
// Note: This package does not read environment variables.
package config
