// Package config loads staffbook settings.
//
// Sources are layered, later ones winning:
//
//  1. built-in defaults
//  2. the YAML file (staffbook.yaml unless --config names another)
//  3. a .env file in the working directory
//  4. process environment variables (STAFFBOOK_*)
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultPath is read when no --config flag is given. It may be absent.
	DefaultPath = "staffbook.yaml"

	// DefaultEnvFile is read for STAFFBOOK_* overrides. It may be absent.
	DefaultEnvFile = ".env"

	envPrefix = "STAFFBOOK_"
)

// LogConfig controls the structured logger.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file,omitempty"`
}

// ShellConfig controls the interactive menu.
type ShellConfig struct {
	// ConfirmToken is the answer that accepts a confirmation, compared
	// case-insensitively.
	ConfirmToken string `yaml:"confirm_token"`

	// HeaderSpacing is added to the widest value of the id and name columns
	// when rendering the listing.
	HeaderSpacing int `yaml:"header_spacing"`

	// AllowDuplicateIDs restores the legacy behaviour of accepting
	// duplicate ids on add.
	AllowDuplicateIDs bool `yaml:"allow_duplicate_ids"`
}

// Config is the full staffbook configuration.
type Config struct {
	Log   LogConfig   `yaml:"log"`
	Shell ShellConfig `yaml:"shell"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level: "warn",
		},
		Shell: ShellConfig{
			ConfirmToken:  "yes",
			HeaderSpacing: 30,
		},
	}
}

// Load builds a Config from defaults, the YAML file at path, the env file
// and the process environment.
//
// An empty path means DefaultPath, which may be missing. An explicit path
// that does not exist is an error. An empty envFile means DefaultEnvFile.
func Load(path, envFile string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	if err := cfg.loadFile(path, explicit); err != nil {
		return nil, err
	}

	if envFile == "" {
		envFile = DefaultEnvFile
	}
	fileEnv, err := godotenv.Read(envFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: read env file %s: %w", envFile, err)
	}
	if err := cfg.applyEnv(lookupFunc(fileEnv)); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

// lookupFunc resolves a key from the process environment first, then from
// the values read out of the env file.
func lookupFunc(fileEnv map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileEnv[key]
		return v, ok
	}
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(envPrefix + "LOG_LEVEL"); ok && v != "" {
		c.Log.Level = v
	}
	if v, ok := lookup(envPrefix + "LOG_FILE"); ok {
		c.Log.File = v
	}
	if v, ok := lookup(envPrefix + "CONFIRM_TOKEN"); ok && v != "" {
		c.Shell.ConfirmToken = v
	}
	if v, ok := lookup(envPrefix + "HEADER_SPACING"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %sHEADER_SPACING: %w", envPrefix, err)
		}
		c.Shell.HeaderSpacing = n
	}
	if v, ok := lookup(envPrefix + "ALLOW_DUPLICATE_IDS"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %sALLOW_DUPLICATE_IDS: %w", envPrefix, err)
		}
		c.Shell.AllowDuplicateIDs = b
	}
	return nil
}

// ValidLogLevels lists the accepted log.level values.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// Validate checks field values.
func (c *Config) Validate() error {
	level := strings.ToLower(c.Log.Level)
	valid := false
	for _, l := range ValidLogLevels {
		if l == level {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("config: invalid log level %q: must be one of %v", c.Log.Level, ValidLogLevels)
	}
	if strings.TrimSpace(c.Shell.ConfirmToken) == "" {
		return errors.New("config: shell.confirm_token must not be empty")
	}
	if c.Shell.HeaderSpacing < 0 {
		return fmt.Errorf("config: shell.header_spacing must be >= 0, got %d", c.Shell.HeaderSpacing)
	}
	return nil
}
