// Package config provides configuration management for the sqlforge CLI.
//
// Configuration is layered with koanf. Precedence (highest to lowest):
// flags > SQLFORGE_ environment variables > sqlforge.yaml > defaults.
package config

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/sqlforge/pkg/adapter"
	"github.com/leapstack-labs/sqlforge/pkg/dialect"
)

// ConnectionConfig is an alias for the adapter connection configuration.
type ConnectionConfig = adapter.Config

// Config holds all CLI configuration options.
type Config struct {
	Dialect      string               `koanf:"dialect"`
	Output       string               `koanf:"output"`
	Pretty       bool                 `koanf:"pretty"`
	Verbose      bool                 `koanf:"verbose"`
	LogFormat    string               `koanf:"log_format"`
	History      string               `koanf:"history"`
	Environment  string               `koanf:"environment"`
	Connection   *ConnectionConfig    `koanf:"connection"`
	Environments map[string]EnvConfig `koanf:"environments"`

	// File is the config file that was loaded, if any.
	File string `koanf:"-"`
}

// EnvConfig holds environment-specific overrides.
type EnvConfig struct {
	Dialect    string            `koanf:"dialect"`
	Connection *ConnectionConfig `koanf:"connection"`
}

// Output modes.
const (
	OutputAuto     = "auto" // TTY=table, non-TTY=plain
	OutputTable    = "table"
	OutputPlain    = "plain"
	OutputJSON     = "json"
	OutputMarkdown = "markdown"
)

// Default configuration values.
const (
	DefaultDialect   = "ansi"
	DefaultOutput    = OutputAuto
	DefaultLogFormat = "text"
	DefaultHistory   = ".sqlforge_history"
)

// AllDialects selects every registered dialect where a command accepts it.
const AllDialects = "all"

// Validate checks that the configured dialect and connection type exist.
func (c *Config) Validate() error {
	if c.Dialect == "" {
		return dialect.ErrDialectRequired
	}
	if c.Dialect != AllDialects {
		if _, err := dialect.Lookup(c.Dialect); err != nil {
			return err
		}
	}
	switch c.Output {
	case OutputAuto, OutputTable, OutputPlain, OutputJSON, OutputMarkdown:
	default:
		return fmt.Errorf("unknown output format %q\nHint: use one of auto, table, plain, json, markdown", c.Output)
	}
	return ValidateConnection(c.Connection)
}

// ValidateConnection checks if the connection configuration is usable.
// A nil connection is valid; commands that need one report it themselves.
func ValidateConnection(conn *ConnectionConfig) error {
	if conn == nil {
		return nil
	}
	if conn.Type == "" {
		return fmt.Errorf("connection type is required")
	}
	conn.Type = strings.ToLower(conn.Type)
	if !adapter.IsRegistered(conn.Type) {
		return &adapter.UnknownAdapterError{
			Type:      conn.Type,
			Available: adapter.List(),
		}
	}
	return nil
}

// MergeConnection merges two connection configs, with override taking precedence.
func MergeConnection(base, override *ConnectionConfig) *ConnectionConfig {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	merged := *base
	merged.Options = make(map[string]string, len(base.Options)+len(override.Options))
	for k, v := range base.Options {
		merged.Options[k] = v
	}

	if override.Type != "" {
		merged.Type = override.Type
	}
	if override.Path != "" {
		merged.Path = override.Path
	}
	if override.Host != "" {
		merged.Host = override.Host
	}
	if override.Port != 0 {
		merged.Port = override.Port
	}
	if override.Database != "" {
		merged.Database = override.Database
	}
	if override.Username != "" {
		merged.Username = override.Username
	}
	if override.Password != "" {
		merged.Password = override.Password
	}
	for k, v := range override.Options {
		merged.Options[k] = v
	}
	return &merged
}
