package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix is the prefix of environment variables read into the config.
// A double underscore separates nesting levels: SQLFORGE_CONNECTION__HOST.
const EnvPrefix = "SQLFORGE_"

// configFileNames are searched, in order, when no file is given.
var configFileNames = []string{"sqlforge.yaml", "sqlforge.yml", ".sqlforge.yaml"}

// maxUpwardSearchLevels limits how far up the directory tree to search for config files.
const maxUpwardSearchLevels = 10

type (
	configKey struct{}
	loggerKey struct{}
)

// Load loads configuration from file, environment variables, and flags.
// envName selects an entry of Environments whose values override the base
// config; an empty envName falls back to the environment key.
func Load(cfgFile, envName string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Load defaults
	if err := k.Load(confmap.Provider(map[string]any{
		"dialect":    DefaultDialect,
		"output":     DefaultOutput,
		"pretty":     false,
		"verbose":    false,
		"log_format": DefaultLogFormat,
		"history":    DefaultHistory,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Find and load config file
	if cfgFile == "" {
		if cwd, err := os.Getwd(); err == nil {
			cfgFile = findConfigFileUpward(cwd)
		}
	}
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	// 3. Load environment variables
	// Transform: SQLFORGE_CONNECTION__HOST -> connection.host
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Load flags (highest priority)
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}
			return flagKey(f.Name), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	// 5. Unmarshal into Config struct
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = cfgFile

	// 6. Apply environment-specific overrides
	if envName == "" {
		envName = cfg.Environment
	}
	if envName != "" {
		envCfg, ok := cfg.Environments[envName]
		if !ok {
			return nil, fmt.Errorf("unknown environment %q", envName)
		}
		if envCfg.Dialect != "" && !(flags != nil && flags.Changed("dialect")) {
			cfg.Dialect = envCfg.Dialect
		}
		cfg.Connection = MergeConnection(cfg.Connection, envCfg.Connection)
		cfg.Environment = envName
	}

	expandConnectionEnvVars(cfg.Connection)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// connectionFlags maps --db-* flags onto connection keys.
var connectionFlags = map[string]string{
	"db_type":     "connection.type",
	"db_path":     "connection.path",
	"db_host":     "connection.host",
	"db_port":     "connection.port",
	"db_name":     "connection.database",
	"db_user":     "connection.user",
	"db_password": "connection.password",
}

// flagKey maps a flag name onto its config key.
func flagKey(name string) string {
	key := strings.ReplaceAll(name, "-", "_")
	if mapped, ok := connectionFlags[key]; ok {
		return mapped
	}
	return key
}

// findConfigFileUpward searches startDir and its parents for a config file.
func findConfigFileUpward(startDir string) string {
	dir := startDir
	for range maxUpwardSearchLevels {
		for _, name := range configFileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars expands ${VAR} patterns in a string with environment variable values.
func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})
}

// expandConnectionEnvVars expands environment variables in sensitive connection fields.
func expandConnectionEnvVars(c *ConnectionConfig) {
	if c == nil {
		return
	}
	c.Password = expandEnvVars(c.Password)
	c.Username = expandEnvVars(c.Username)
	c.Host = expandEnvVars(c.Host)
	c.Database = expandEnvVars(c.Database)
	c.Path = expandEnvVars(c.Path)
}

// WithConfig stores cfg in ctx.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext retrieves the config from ctx, or defaults if none was stored.
func FromContext(ctx context.Context) *Config {
	if c, ok := ctx.Value(configKey{}).(*Config); ok {
		return c
	}
	return &Config{
		Dialect:   DefaultDialect,
		Output:    DefaultOutput,
		LogFormat: DefaultLogFormat,
		History:   DefaultHistory,
	}
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	// Return discard logger as safe fallback
	return slog.New(slog.DiscardHandler)
}
