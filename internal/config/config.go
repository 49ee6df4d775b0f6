// Package config loads runtime configuration from CLI flags and environment
// variables, flags taking precedence.
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"bibtui/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envDBPath     = "BIBTUI_DB"
	envTick       = "BIBTUI_TICK"
	envEditKey    = "BIBTUI_EDIT_KEY"
	envSaveKey    = "BIBTUI_SAVE_KEY"
	envDiscardKey = "BIBTUI_DISCARD_KEY"
	envTrace      = "BIBTUI_TRACE"
	envLogFile    = "BIBTUI_LOG_FILE"
)

const (
	defaultDBPath = "bibliographic_db/bib_data.db"
	defaultTick   = 200 * time.Millisecond
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("bibtui", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	db := fs.String("db", envOrDefault(env, envDBPath, defaultDBPath), "path to the sqlite catalog database (must already be initialized, see cmd/initdb)")
	tick := fs.Duration("tick", envOrDuration(env, envTick, defaultTick), "list refresh interval")
	editKey := fs.String("edit-key", envOrDefault(env, envEditKey, "f2"), "key that enters edit mode on a form screen")
	saveKey := fs.String("save-key", envOrDefault(env, envSaveKey, "f9"), "key that saves the form to the database")
	discardKey := fs.String("discard-key", envOrDefault(env, envDiscardKey, "f12"), "key that leaves edit mode without saving")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			DBPath:     *db,
			Tick:       *tick,
			EditKey:    *editKey,
			SaveKey:    *saveKey,
			DiscardKey: *discardKey,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"db":         *db,
			"tick":       tick.String(),
			"editKey":    *editKey,
			"saveKey":    *saveKey,
			"discardKey": *discardKey,
			"trace":      strconv.FormatBool(*trace),
			"logFile":    *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.DBPath) == "" {
		return fmt.Errorf("database path must not be empty")
	}
	if cfg.App.Tick <= 0 {
		return fmt.Errorf("tick interval must be positive (got %s)", cfg.App.Tick)
	}
	for name, key := range map[string]string{
		"edit-key":    cfg.App.EditKey,
		"save-key":    cfg.App.SaveKey,
		"discard-key": cfg.App.DiscardKey,
	} {
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("%s must not be empty", name)
		}
	}
	return nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}
