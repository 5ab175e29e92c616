// Package config loads runtime configuration for the numwords commands.
//
// Values are resolved in order of increasing precedence: built-in defaults,
// an optional YAML file, the process environment, and an explicit env map.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tungbeier/number-to-word/internal/observability"
	"github.com/tungbeier/number-to-word/numwords"
)

const (
	defaultAddr            = ":8080"
	defaultReadTimeout     = 5 * time.Second
	defaultWriteTimeout    = 10 * time.Second
	defaultShutdownTimeout = 15 * time.Second
	defaultSignWord        = "minus"
	defaultLogLevel        = "info"

	envAddr            = "NUMWORDS_ADDR"
	envReadTimeout     = "NUMWORDS_READ_TIMEOUT"
	envWriteTimeout    = "NUMWORDS_WRITE_TIMEOUT"
	envShutdownTimeout = "NUMWORDS_SHUTDOWN_TIMEOUT"
	envLimit           = "NUMWORDS_LIMIT"
	envSignWord        = "NUMWORDS_SIGN_WORD"
	envLogLevel        = "LOG_LEVEL"
)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Speller SpellerConfig `yaml:"speller"`
	Log     LogConfig     `yaml:"log"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// SpellerConfig selects the numwords limit and the word used for negatives.
type SpellerConfig struct {
	LimitName string `yaml:"limit"`
	SignWord  string `yaml:"sign_word"`

	// Limit is resolved from LimitName by Load.
	Limit numwords.Limit `yaml:"-"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level string `yaml:"level"`
}

// ValidationError is returned when configuration fields are invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	file         string
	envMap       map[string]string
	useSystemEnv bool
}

// WithFile reads a YAML configuration file before applying the environment.
// An empty path disables file loading.
func WithFile(path string) Option {
	return func(o *loaderOptions) {
		o.file = path
	}
}

// WithEnvMap injects an explicit key/value map for environment lookups. Values
// in the map take precedence over system environment variables.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv disables reading from os.Getenv, relying only on provided
// maps and files.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:            defaultAddr,
			ReadTimeout:     defaultReadTimeout,
			WriteTimeout:    defaultWriteTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
		},
		Speller: SpellerConfig{
			LimitName: numwords.Unbounded.String(),
			SignWord:  defaultSignWord,
			Limit:     numwords.Unbounded,
		},
		Log: LogConfig{Level: defaultLogLevel},
	}
}

// Load resolves the configuration from defaults, the optional file and the
// environment, then validates it.
func Load(opts ...Option) (Config, error) {
	options := loaderOptions{useSystemEnv: true}
	for _, opt := range opts {
		opt(&options)
	}

	cfg := Default()
	if options.file != "" {
		if err := loadFile(options.file, &cfg); err != nil {
			return Config{}, err
		}
	}

	var invalid []string
	env := options.environment()

	if v, ok := env[envAddr]; ok {
		cfg.Server.Addr = strings.TrimSpace(v)
	}
	parseDuration(env, envReadTimeout, "Server.ReadTimeout", &cfg.Server.ReadTimeout, &invalid)
	parseDuration(env, envWriteTimeout, "Server.WriteTimeout", &cfg.Server.WriteTimeout, &invalid)
	parseDuration(env, envShutdownTimeout, "Server.ShutdownTimeout", &cfg.Server.ShutdownTimeout, &invalid)
	if v, ok := env[envLimit]; ok {
		cfg.Speller.LimitName = v
	}
	if v, ok := env[envSignWord]; ok {
		cfg.Speller.SignWord = strings.TrimSpace(v)
	}
	if v, ok := env[envLogLevel]; ok {
		cfg.Log.Level = v
	}

	if err := validate(&cfg, invalid); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func (o loaderOptions) environment() map[string]string {
	values := make(map[string]string)
	if o.useSystemEnv {
		for _, key := range []string{
			envAddr, envReadTimeout, envWriteTimeout, envShutdownTimeout,
			envLimit, envSignWord, envLogLevel,
		} {
			if v, ok := os.LookupEnv(key); ok {
				values[key] = v
			}
		}
	}
	for key, value := range o.envMap {
		values[key] = value
	}
	return values
}

func parseDuration(env map[string]string, key, field string, dst *time.Duration, invalid *[]string) {
	raw, ok := env[key]
	if !ok || strings.TrimSpace(raw) == "" {
		return
	}
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		*invalid = append(*invalid, field)
		return
	}
	*dst = d
}

// validate checks cfg, resolves Speller.Limit and reports every invalid
// field, including those already rejected while parsing.
func validate(cfg *Config, invalid []string) error {
	if strings.TrimSpace(cfg.Server.Addr) == "" {
		invalid = append(invalid, "Server.Addr")
	}
	if cfg.Server.ReadTimeout <= 0 {
		invalid = append(invalid, "Server.ReadTimeout")
	}
	if cfg.Server.WriteTimeout <= 0 {
		invalid = append(invalid, "Server.WriteTimeout")
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		invalid = append(invalid, "Server.ShutdownTimeout")
	}

	limit, err := numwords.ParseLimit(cfg.Speller.LimitName)
	if err != nil {
		invalid = append(invalid, "Speller.Limit")
	}
	cfg.Speller.Limit = limit

	if _, err := observability.ParseLevel(cfg.Log.Level); err != nil {
		invalid = append(invalid, "Log.Level")
	}

	if len(invalid) > 0 {
		return &ValidationError{fields: invalid}
	}
	return nil
}

// IsValidationError reports whether err is or wraps a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
